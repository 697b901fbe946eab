package repository

import (
	"errors"

	"github.com/namosistemos/namosite/app/models"
	"gorm.io/gorm"
)

// featureRepository implements the FeatureRepository interface
type featureRepository struct {
	db *gorm.DB
}

// NewFeatureRepository creates a new feature repository instance
func NewFeatureRepository(db *gorm.DB) FeatureRepository {
	return &featureRepository{db: db}
}

// CreateGroup creates a new feature group
func (r *featureRepository) CreateGroup(group *models.FeatureGroup) error {
	return r.db.Create(group).Error
}

// GetGroupByID retrieves a feature group by its ID
func (r *featureRepository) GetGroupByID(id uint) (*models.FeatureGroup, error) {
	var group models.FeatureGroup
	err := r.db.First(&group, id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetGroups retrieves all feature groups ordered for display
func (r *featureRepository) GetGroups() ([]models.FeatureGroup, error) {
	var groups []models.FeatureGroup
	err := r.db.Order("sort_order ASC, id ASC").Find(&groups).Error
	return groups, err
}

// UpdateGroup updates an existing feature group
func (r *featureRepository) UpdateGroup(group *models.FeatureGroup) error {
	return r.db.Save(group).Error
}

// DeleteGroup removes a feature group with its features and their plan values
func (r *featureRepository) DeleteGroup(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var featureIDs []uint
		if err := tx.Model(&models.Feature{}).Where("group_id = ?", id).Pluck("id", &featureIDs).Error; err != nil {
			return err
		}
		if len(featureIDs) > 0 {
			if err := tx.Where("feature_id IN ?", featureIDs).Delete(&models.PlanFeature{}).Error; err != nil {
				return err
			}
			if err := tx.Where("group_id = ?", id).Delete(&models.Feature{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.FeatureGroup{}, id).Error
	})
}

// CreateFeature creates a new feature
func (r *featureRepository) CreateFeature(feature *models.Feature) error {
	return r.db.Create(feature).Error
}

// GetFeatureByID retrieves a feature by its ID
func (r *featureRepository) GetFeatureByID(id uint) (*models.Feature, error) {
	var feature models.Feature
	err := r.db.First(&feature, id).Error
	if err != nil {
		return nil, err
	}
	return &feature, nil
}

// GetFeatures retrieves all features ordered for display
func (r *featureRepository) GetFeatures() ([]models.Feature, error) {
	var features []models.Feature
	err := r.db.Order("sort_order ASC, id ASC").Find(&features).Error
	return features, err
}

// UpdateFeature updates an existing feature
func (r *featureRepository) UpdateFeature(feature *models.Feature) error {
	return r.db.Save(feature).Error
}

// DeleteFeature removes a feature and its plan values
func (r *featureRepository) DeleteFeature(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("feature_id = ?", id).Delete(&models.PlanFeature{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Feature{}, id).Error
	})
}

// GetPlanFeatures retrieves every (feature, plan) value pair
func (r *featureRepository) GetPlanFeatures() ([]models.PlanFeature, error) {
	var values []models.PlanFeature
	err := r.db.Find(&values).Error
	return values, err
}

// UpsertPlanFeature writes the value for one (feature, plan) pair, keeping at
// most one row per pair.
func (r *featureRepository) UpsertPlanFeature(pf *models.PlanFeature) error {
	var existing models.PlanFeature
	err := r.db.Where("feature_id = ? AND plan_id = ?", pf.FeatureID, pf.PlanID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(pf).Error
	}
	if err != nil {
		return err
	}
	existing.ValueBoolean = pf.ValueBoolean
	existing.ValueText = pf.ValueText
	if err := r.db.Save(&existing).Error; err != nil {
		return err
	}
	*pf = existing
	return nil
}

// DeletePlanFeature removes the value for one (feature, plan) pair
func (r *featureRepository) DeletePlanFeature(featureID, planID uint) error {
	return r.db.Where("feature_id = ? AND plan_id = ?", featureID, planID).Delete(&models.PlanFeature{}).Error
}
