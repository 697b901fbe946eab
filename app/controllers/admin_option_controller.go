package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/namosistemos/namosite/app/models"
	"github.com/namosistemos/namosite/app/repository"
)

// HandleAdminGetOptionGroups returns all option groups in display order.
func HandleAdminGetOptionGroups(c *fiber.Ctx) error {
	groups, err := repository.GetGlobalFactory().GetOptionRepository().GetGroups()
	if err != nil {
		return internalError(c, "Failed to load option groups")
	}
	return c.JSON(groups)
}

// HandleAdminCreateOptionGroup creates a new option group. The kind is fixed
// from here on; changing it later would silently reprice stored leads' intent.
func HandleAdminCreateOptionGroup(c *fiber.Ctx) error {
	var group models.OptionGroup
	if err := c.BodyParser(&group); err != nil {
		return badRequest(c, "Invalid request body")
	}
	group.ID = 0
	if err := group.Validate(); err != nil {
		return validationError(c, err)
	}

	if err := repository.GetGlobalFactory().GetOptionRepository().CreateGroup(&group); err != nil {
		return internalError(c, "Failed to create option group")
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

// OptionGroupPatch carries the updatable presentation fields. The kind is
// deliberately absent: it keeps its stored value for the group's lifetime.
type OptionGroupPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sortOrder"`
}

func (p OptionGroupPatch) apply(group *models.OptionGroup) {
	if p.Title != nil {
		group.Title = *p.Title
	}
	if p.Description != nil {
		group.Description = *p.Description
	}
	if p.SortOrder != nil {
		group.SortOrder = *p.SortOrder
	}
}

// HandleAdminUpdateOptionGroup applies a partial update to an option group.
func HandleAdminUpdateOptionGroup(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid option group id")
	}

	repo := repository.GetGlobalFactory().GetOptionRepository()
	existing, err := repo.GetGroupByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Option group not found")
		}
		return internalError(c, "Failed to load option group")
	}

	var patch OptionGroupPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}
	patch.apply(existing)
	if err := existing.Validate(); err != nil {
		return validationError(c, err)
	}

	if err := repo.UpdateGroup(existing); err != nil {
		return internalError(c, "Failed to update option group")
	}
	return c.JSON(existing)
}

// HandleAdminDeleteOptionGroup removes an option group with its options and
// plan visibility links.
func HandleAdminDeleteOptionGroup(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid option group id")
	}

	repo := repository.GetGlobalFactory().GetOptionRepository()
	if _, err := repo.GetGroupByID(id); err != nil {
		if isNotFound(err) {
			return notFound(c, "Option group not found")
		}
		return internalError(c, "Failed to load option group")
	}

	if err := repo.DeleteGroup(id); err != nil {
		return internalError(c, "Failed to delete option group")
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleAdminGetOptions returns all options in display order.
func HandleAdminGetOptions(c *fiber.Ctx) error {
	options, err := repository.GetGlobalFactory().GetOptionRepository().GetOptions()
	if err != nil {
		return internalError(c, "Failed to load options")
	}
	return c.JSON(options)
}

// HandleAdminCreateOption creates a new option inside an existing group.
func HandleAdminCreateOption(c *fiber.Ctx) error {
	var option models.Option
	if err := c.BodyParser(&option); err != nil {
		return badRequest(c, "Invalid request body")
	}
	option.ID = 0
	if err := option.Validate(); err != nil {
		return validationError(c, err)
	}

	repo := repository.GetGlobalFactory().GetOptionRepository()
	if _, err := repo.GetGroupByID(option.GroupID); err != nil {
		if isNotFound(err) {
			return badRequest(c, "Unknown option group")
		}
		return internalError(c, "Failed to load option group")
	}

	if err := repo.CreateOption(&option); err != nil {
		return internalError(c, "Failed to create option")
	}
	return c.Status(fiber.StatusCreated).JSON(option)
}

// OptionPatch carries the updatable option fields.
type OptionPatch struct {
	GroupID        *uint   `json:"groupId"`
	Label          *string `json:"label"`
	Description    *string `json:"description"`
	UnitPriceCents *int    `json:"unitPriceCents"`
	MinQty         *int    `json:"minQty"`
	MaxQty         *int    `json:"maxQty"`
	DefaultQty     *int    `json:"defaultQty"`
	IsDefault      *bool   `json:"isDefault"`
	SortOrder      *int    `json:"sortOrder"`
	TooltipEnabled *bool   `json:"tooltipEnabled"`
	TooltipText    *string `json:"tooltipText"`
	TooltipLink    *string `json:"tooltipLink"`
	TooltipImage   *string `json:"tooltipImage"`
}

func (p OptionPatch) apply(option *models.Option) {
	if p.GroupID != nil {
		option.GroupID = *p.GroupID
	}
	if p.Label != nil {
		option.Label = *p.Label
	}
	if p.Description != nil {
		option.Description = *p.Description
	}
	if p.UnitPriceCents != nil {
		option.UnitPriceCents = *p.UnitPriceCents
	}
	if p.MinQty != nil {
		option.MinQty = *p.MinQty
	}
	if p.MaxQty != nil {
		option.MaxQty = *p.MaxQty
	}
	if p.DefaultQty != nil {
		option.DefaultQty = *p.DefaultQty
	}
	if p.IsDefault != nil {
		option.IsDefault = *p.IsDefault
	}
	if p.SortOrder != nil {
		option.SortOrder = *p.SortOrder
	}
	if p.TooltipEnabled != nil {
		option.TooltipEnabled = *p.TooltipEnabled
	}
	if p.TooltipText != nil {
		option.TooltipText = *p.TooltipText
	}
	if p.TooltipLink != nil {
		option.TooltipLink = *p.TooltipLink
	}
	if p.TooltipImage != nil {
		option.TooltipImage = *p.TooltipImage
	}
}

// HandleAdminUpdateOption applies a partial update to an existing option.
func HandleAdminUpdateOption(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid option id")
	}

	repo := repository.GetGlobalFactory().GetOptionRepository()
	existing, err := repo.GetOptionByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Option not found")
		}
		return internalError(c, "Failed to load option")
	}

	var patch OptionPatch
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
				return badRequest(c, "Unknown option group")
			}
			return internalError(c, "Failed to load option group")
		}
	}

	if err := repo.UpdateOption(existing); err != nil {
		return internalError(c, "Failed to update option")
	}
	return c.JSON(existing)
}

// HandleAdminDeleteOption removes an option.
func HandleAdminDeleteOption(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid option id")
	}

	repo := repository.GetGlobalFactory().GetOptionRepository()
	if _, err := repo.GetOptionByID(id); err != nil {
		if isNotFound(err) {
			return notFound(c, "Option not found")
		}
		return internalError(c, "Failed to load option")
	}

	if err := repo.DeleteOption(id); err != nil {
		return internalError(c, "Failed to delete option")
	}
	return c.JSON(fiber.Map{"success": true})
}
