package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/namosistemos/namosite/app/models"
	"github.com/namosistemos/namosite/app/repository"
)

// HandleAdminGetPlans returns all plans, including ones hidden from display.
func HandleAdminGetPlans(c *fiber.Ctx) error {
	plans, err := repository.GetGlobalFactory().GetPlanRepository().GetAll()
	if err != nil {
		return internalError(c, "Failed to load plans")
	}
	return c.JSON(plans)
}

// HandleAdminCreatePlan creates a new pricing plan.
func HandleAdminCreatePlan(c *fiber.Ctx) error {
	var plan models.Plan
	if err := c.BodyParser(&plan); err != nil {
		return badRequest(c, "Invalid request body")
	}
	plan.ID = 0
	if err := plan.Validate(); err != nil {
		return validationError(c, err)
	}

	repo := repository.GetGlobalFactory().GetPlanRepository()
	exists, err := repo.SlugExists(plan.Slug)
	if err != nil {
		return internalError(c, "Failed to check slug")
	}
	if exists {
		return jsonError(c, fiber.StatusConflict, "conflict", "Slug already in use")
	}

	if err := repo.Create(&plan); err != nil {
		return internalError(c, "Failed to create plan")
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}

// PlanPatch carries the updatable plan fields. Pointer fields distinguish
// "not sent" from an explicit zero value, so a partial payload never resets
// what it does not mention.
type PlanPatch struct {
	Slug           *string `json:"slug"`
	Name           *string `json:"name"`
	Tagline        *string `json:"tagline"`
	Description    *string `json:"description"`
	BasePriceCents *int    `json:"basePriceCents"`
	IsHighlighted  *bool   `json:"isHighlighted"`
	SortOrder      *int    `json:"sortOrder"`
}

func (p PlanPatch) apply(plan *models.Plan) {
	if p.Slug != nil {
		plan.Slug = *p.Slug
	}
	if p.Name != nil {
		plan.Name = *p.Name
	}
	if p.Tagline != nil {
		plan.Tagline = *p.Tagline
	}
	if p.Description != nil {
		plan.Description = *p.Description
	}
	if p.BasePriceCents != nil {
		plan.BasePriceCents = *p.BasePriceCents
	}
	if p.IsHighlighted != nil {
		plan.IsHighlighted = *p.IsHighlighted
	}
	if p.SortOrder != nil {
		plan.SortOrder = *p.SortOrder
	}
}

// HandleAdminUpdatePlan applies a partial update to an existing pricing plan.
func HandleAdminUpdatePlan(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid plan id")
	}

	repo := repository.GetGlobalFactory().GetPlanRepository()
	existing, err := repo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Plan not found")
		}
		return internalError(c, "Failed to load plan")
	}

	var patch PlanPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}
	patch.apply(existing)
	if err := existing.Validate(); err != nil {
		return validationError(c, err)
	}

	taken, err := repo.SlugExistsExceptID(existing.Slug, existing.ID)
	if err != nil {
		return internalError(c, "Failed to check slug")
	}
	if taken {
		return jsonError(c, fiber.StatusConflict, "conflict", "Slug already in use")
	}

	if err := repo.Update(existing); err != nil {
		return internalError(c, "Failed to update plan")
	}
	return c.JSON(existing)
}

// HandleAdminDeletePlan removes a plan and its dependent rows.
func HandleAdminDeletePlan(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid plan id")
	}

	repo := repository.GetGlobalFactory().GetPlanRepository()
	if _, err := repo.GetByID(id); err != nil {
		if isNotFound(err) {
			return notFound(c, "Plan not found")
		}
		return internalError(c, "Failed to load plan")
	}

	if err := repo.Delete(id); err != nil {
		return internalError(c, "Failed to delete plan")
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleAdminGetPlanOptionGroups returns the visibility links of one plan.
// An empty list means the plan shows every option group.
func HandleAdminGetPlanOptionGroups(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "planId")
	if err != nil {
		return badRequest(c, "Invalid plan id")
	}

	links, err := repository.GetGlobalFactory().GetOptionRepository().GetPlanLinksByPlan(planID)
	if err != nil {
		return internalError(c, "Failed to load plan option groups")
	}
	return c.JSON(links)
}

// HandleAdminReplacePlanOptionGroups swaps a plan's visible-group set for the
// submitted list in one transaction. Submitting an empty list clears the
// restriction, which makes every group visible again.
func HandleAdminReplacePlanOptionGroups(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "planId")
	if err != nil {
		return badRequest(c, "Invalid plan id")
	}

	var req struct {
		OptionGroupIDs []uint `json:"optionGroupIds"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	repos := repository.GetGlobalFactory().GetRepositories()

	if _, err := repos.Plan.GetByID(planID); err != nil {
		if isNotFound(err) {
			return notFound(c, "Plan not found")
		}
		return internalError(c, "Failed to load plan")
	}

	for _, groupID := range req.OptionGroupIDs {
		if _, err := repos.Option.GetGroupByID(groupID); err != nil {
			if isNotFound(err) {
				return badRequest(c, "Unknown option group")
			}
			return internalError(c, "Failed to load option group")
		}
	}

	if err := repos.Option.ReplacePlanLinks(planID, req.OptionGroupIDs); err != nil {
		return internalError(c, "Failed to replace plan option groups")
	}

	links, err := repos.Option.GetPlanLinksByPlan(planID)
	if err != nil {
		return internalError(c, "Failed to load plan option groups")
	}
	return c.JSON(links)
}
