package repository

import (
	"github.com/namosistemos/namosite/app/models"
	"gorm.io/gorm"
)

// optionRepository implements the OptionRepository interface
type optionRepository struct {
	db *gorm.DB
}

// NewOptionRepository creates a new option repository instance
func NewOptionRepository(db *gorm.DB) OptionRepository {
	return &optionRepository{db: db}
}

// CreateGroup creates a new option group
func (r *optionRepository) CreateGroup(group *models.OptionGroup) error {
	return r.db.Create(group).Error
}

// GetGroupByID retrieves an option group by its ID
func (r *optionRepository) GetGroupByID(id uint) (*models.OptionGroup, error) {
	var group models.OptionGroup
	err := r.db.First(&group, id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetGroups retrieves all option groups ordered for display
func (r *optionRepository) GetGroups() ([]models.OptionGroup, error) {
	var groups []models.OptionGroup
	err := r.db.Order("sort_order ASC, id ASC").Find(&groups).Error
	return groups, err
}

// UpdateGroup updates an existing option group
func (r *optionRepository) UpdateGroup(group *models.OptionGroup) error {
	return r.db.Save(group).Error
}

// DeleteGroup removes an option group together with its options and any
// plan visibility links pointing at it.
func (r *optionRepository) DeleteGroup(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&models.Option{}).Error; err != nil {
			return err
		}
		if err := tx.Where("option_group_id = ?", id).Delete(&models.PlanOptionGroup{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.OptionGroup{}, id).Error
	})
}

// CreateOption creates a new option
func (r *optionRepository) CreateOption(option *models.Option) error {
	return r.db.Create(option).Error
}

// GetOptionByID retrieves an option by its ID
func (r *optionRepository) GetOptionByID(id uint) (*models.Option, error) {
	var option models.Option
	err := r.db.First(&option, id).Error
	if err != nil {
		return nil, err
	}
	return &option, nil
}

// GetOptions retrieves all options ordered for display
func (r *optionRepository) GetOptions() ([]models.Option, error) {
	var options []models.Option
	err := r.db.Order("sort_order ASC, id ASC").Find(&options).Error
	return options, err
}

// UpdateOption updates an existing option
func (r *optionRepository) UpdateOption(option *models.Option) error {
	return r.db.Save(option).Error
}

// DeleteOption removes an option
func (r *optionRepository) DeleteOption(id uint) error {
	return r.db.Delete(&models.Option{}, id).Error
}

// GetPlanLinks retrieves every plan/option-group visibility link
func (r *optionRepository) GetPlanLinks() ([]models.PlanOptionGroup, error) {
	var links []models.PlanOptionGroup
	err := r.db.Find(&links).Error
	return links, err
}

// GetPlanLinksByPlan retrieves the visibility links of one plan
func (r *optionRepository) GetPlanLinksByPlan(planID uint) ([]models.PlanOptionGroup, error) {
	var links []models.PlanOptionGroup
	err := r.db.Where("plan_id = ?", planID).Find(&links).Error
	return links, err
}

// ReplacePlanLinks swaps a plan's visible-group set for the given ids in one
// transaction (delete-then-insert, not incremental). Calling it twice with
// the same set is idempotent. An empty set removes all rows, which per the
// visibility rule means the plan shows every group again.
func (r *optionRepository) ReplacePlanLinks(planID uint, groupIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", planID).Delete(&models.PlanOptionGroup{}).Error; err != nil {
			return err
		}
		for _, groupID := range groupIDs {
			link := models.PlanOptionGroup{PlanID: planID, OptionGroupID: groupID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
