package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/namosistemos/namosite/app/models"
	"github.com/namosistemos/namosite/app/repository"
)

// HandleAdminGetFeatureGroups returns all feature groups in display order.
func HandleAdminGetFeatureGroups(c *fiber.Ctx) error {
	groups, err := repository.GetGlobalFactory().GetFeatureRepository().GetGroups()
	if err != nil {
		return internalError(c, "Failed to load feature groups")
	}
	return c.JSON(groups)
}

// HandleAdminCreateFeatureGroup creates a new comparison-table section.
func HandleAdminCreateFeatureGroup(c *fiber.Ctx) error {
	var group models.FeatureGroup
	if err := c.BodyParser(&group); err != nil {
		return badRequest(c, "Invalid request body")
	}
	group.ID = 0
	if err := group.Validate(); err != nil {
		return validationError(c, err)
	}

	if err := repository.GetGlobalFactory().GetFeatureRepository().CreateGroup(&group); err != nil {
		return internalError(c, "Failed to create feature group")
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

// FeatureGroupPatch carries the updatable feature group fields.
type FeatureGroupPatch struct {
	Title          *string `json:"title"`
	SortOrder      *int    `json:"sortOrder"`
	TooltipEnabled *bool   `json:"tooltipEnabled"`
	TooltipText    *string `json:"tooltipText"`
	TooltipLink    *string `json:"tooltipLink"`
	TooltipImage   *string `json:"tooltipImage"`
}

func (p FeatureGroupPatch) apply(group *models.FeatureGroup) {
	if p.Title != nil {
		group.Title = *p.Title
	}
	if p.SortOrder != nil {
		group.SortOrder = *p.SortOrder
	}
	if p.TooltipEnabled != nil {
		group.TooltipEnabled = *p.TooltipEnabled
	}
	if p.TooltipText != nil {
		group.TooltipText = *p.TooltipText
	}
	if p.TooltipLink != nil {
		group.TooltipLink = *p.TooltipLink
	}
	if p.TooltipImage != nil {
		group.TooltipImage = *p.TooltipImage
	}
}

// HandleAdminUpdateFeatureGroup applies a partial update to a feature group.
func HandleAdminUpdateFeatureGroup(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid feature group id")
	}

	repo := repository.GetGlobalFactory().GetFeatureRepository()
	existing, err := repo.GetGroupByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Feature group not found")
		}
		return internalError(c, "Failed to load feature group")
	}

	var patch FeatureGroupPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}
	patch.apply(existing)
	if err := existing.Validate(); err != nil {
		return validationError(c, err)
	}

	if err := repo.UpdateGroup(existing); err != nil {
		return internalError(c, "Failed to update feature group")
	}
	return c.JSON(existing)
}

// HandleAdminDeleteFeatureGroup removes a feature group with its features and
// the per-plan values hanging off them.
func HandleAdminDeleteFeatureGroup(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid feature group id")
	}

	repo := repository.GetGlobalFactory().GetFeatureRepository()
	if _, err := repo.GetGroupByID(id); err != nil {
		if isNotFound(err) {
			return notFound(c, "Feature group not found")
		}
		return internalError(c, "Failed to load feature group")
	}

	if err := repo.DeleteGroup(id); err != nil {
		return internalError(c, "Failed to delete feature group")
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleAdminGetFeatures returns all features in display order.
func HandleAdminGetFeatures(c *fiber.Ctx) error {
	features, err := repository.GetGlobalFactory().GetFeatureRepository().GetFeatures()
	if err != nil {
		return internalError(c, "Failed to load features")
	}
	return c.JSON(features)
}

// HandleAdminCreateFeature creates a new comparison-table row.
func HandleAdminCreateFeature(c *fiber.Ctx) error {
	var feature models.Feature
	if err := c.BodyParser(&feature); err != nil {
		return badRequest(c, "Invalid request body")
	}
	feature.ID = 0
	if err := feature.Validate(); err != nil {
		return validationError(c, err)
	}

	repo := repository.GetGlobalFactory().GetFeatureRepository()
	if _, err := repo.GetGroupByID(feature.GroupID); err != nil {
		if isNotFound(err) {
			return badRequest(c, "Unknown feature group")
		}
		return internalError(c, "Failed to load feature group")
	}

	if err := repo.CreateFeature(&feature); err != nil {
		return internalError(c, "Failed to create feature")
	}
	return c.Status(fiber.StatusCreated).JSON(feature)
}

// FeaturePatch carries the updatable feature fields.
type FeaturePatch struct {
	GroupID        *uint   `json:"groupId"`
	Label          *string `json:"label"`
	ValueType      *string `json:"valueType"`
	SortOrder      *int    `json:"sortOrder"`
	TooltipEnabled *bool   `json:"tooltipEnabled"`
	TooltipText    *string `json:"tooltipText"`
	TooltipLink    *string `json:"tooltipLink"`
	TooltipImage   *string `json:"tooltipImage"`
}

func (p FeaturePatch) apply(feature *models.Feature) {
	if p.GroupID != nil {
		feature.GroupID = *p.GroupID
	}
	if p.Label != nil {
		feature.Label = *p.Label
	}
	if p.ValueType != nil {
		feature.ValueType = *p.ValueType
	}
	if p.SortOrder != nil {
		feature.SortOrder = *p.SortOrder
	}
	if p.TooltipEnabled != nil {
		feature.TooltipEnabled = *p.TooltipEnabled
	}
	if p.TooltipText != nil {
		feature.TooltipText = *p.TooltipText
	}
	if p.TooltipLink != nil {
		feature.TooltipLink = *p.TooltipLink
	}
	if p.TooltipImage != nil {
		feature.TooltipImage = *p.TooltipImage
	}
}

// HandleAdminUpdateFeature applies a partial update to an existing feature.
func HandleAdminUpdateFeature(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid feature id")
	}

	repo := repository.GetGlobalFactory().GetFeatureRepository()
	existing, err := repo.GetFeatureByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Feature not found")
		}
		return internalError(c, "Failed to load feature")
	}

	var patch FeaturePatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}
	priorGroupID := existing.GroupID
	patch.apply(existing)
	if err := existing.Validate(); err != nil {
		return validationError(c, err)
	}

	if existing.GroupID != priorGroupID {
		if _, err := repo.GetGroupByID(existing.GroupID); err != nil {
			if isNotFound(err) {
				return badRequest(c, "Unknown feature group")
			}
			return internalError(c, "Failed to load feature group")
		}
	}

	if err := repo.UpdateFeature(existing); err != nil {
		return internalError(c, "Failed to update feature")
	}
	return c.JSON(existing)
}

// HandleAdminDeleteFeature removes a feature and its per-plan values.
func HandleAdminDeleteFeature(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid feature id")
	}

	repo := repository.GetGlobalFactory().GetFeatureRepository()
	if _, err := repo.GetFeatureByID(id); err != nil {
		if isNotFound(err) {
			return notFound(c, "Feature not found")
		}
		return internalError(c, "Failed to load feature")
	}

	if err := repo.DeleteFeature(id); err != nil {
		return internalError(c, "Failed to delete feature")
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleAdminGetPlanFeatures returns every (feature, plan) value pair.
func HandleAdminGetPlanFeatures(c *fiber.Ctx) error {
	values, err := repository.GetGlobalFactory().GetFeatureRepository().GetPlanFeatures()
	if err != nil {
		return internalError(c, "Failed to load plan features")
	}
	return c.JSON(values)
}

// PlanFeatureEntry is one cell of the comparison matrix in a batch save.
type PlanFeatureEntry struct {
	FeatureID    uint    `json:"featureId" validate:"required"`
	PlanID       uint    `json:"planId" validate:"required"`
	ValueBoolean *bool   `json:"valueBoolean"`
	ValueText    *string `json:"valueText"`
}

// HandleAdminBatchUpsertPlanFeatures saves a set of comparison-matrix cells in
// one request. Each entry upserts its (feature, plan) pair; the admin UI sends
// the whole edited matrix at once instead of one call per cell.
func HandleAdminBatchUpsertPlanFeatures(c *fiber.Ctx) error {
	var req struct {
		Entries []PlanFeatureEntry `json:"entries"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	repo := repository.GetGlobalFactory().GetFeatureRepository()

	saved := make([]models.PlanFeature, 0, len(req.Entries))
	for _, entry := range req.Entries {
		if entry.FeatureID == 0 || entry.PlanID == 0 {
			return badRequest(c, "Entry missing feature or plan id")
		}
		pf := models.PlanFeature{
			FeatureID:    entry.FeatureID,
			PlanID:       entry.PlanID,
			ValueBoolean: entry.ValueBoolean,
			ValueText:    entry.ValueText,
		}
		if err := repo.UpsertPlanFeature(&pf); err != nil {
			return internalError(c, "Failed to save plan features")
		}
		saved = append(saved, pf)
	}

	return c.JSON(saved)
}

// HandleAdminDeletePlanFeature clears one comparison-matrix cell.
func HandleAdminDeletePlanFeature(c *fiber.Ctx) error {
	featureID, err := parseIDParam(c, "featureId")
	if err != nil {
		return badRequest(c, "Invalid feature id")
	}
	planID, err := parseIDParam(c, "planId")
	if err != nil {
		return badRequest(c, "Invalid plan id")
	}

	repo := repository.GetGlobalFactory().GetFeatureRepository()
	if err := repo.DeletePlanFeature(featureID, planID); err != nil {
		return internalError(c, "Failed to delete plan feature")
	}
	return c.JSON(fiber.Map{"success": true})
}
