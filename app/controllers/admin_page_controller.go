package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/namosistemos/namosite/app/models"
	"github.com/namosistemos/namosite/app/repository"
)

// HandleAdminGetPages returns all custom pages, newest first.
func HandleAdminGetPages(c *fiber.Ctx) error {
	pages, err := repository.GetGlobalFactory().GetPageRepository().GetAll()
	if err != nil {
		return internalError(c, "Failed to load pages")
	}
	return c.JSON(pages)
}

// HandleAdminGetPage returns one custom page, active or not.
func HandleAdminGetPage(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid page id")
	}

	page, err := repository.GetGlobalFactory().GetPageRepository().GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Page not found")
		}
		return internalError(c, "Failed to load page")
	}
	return c.JSON(page)
}

// HandleAdminCreatePage creates a custom page.
func HandleAdminCreatePage(c *fiber.Ctx) error {
	var page models.CustomPage
	if err := c.BodyParser(&page); err != nil {
		return badRequest(c, "Invalid request body")
	}
	page.ID = 0
	if err := page.Validate(); err != nil {
		return validationError(c, err)
	}

	repo := repository.GetGlobalFactory().GetPageRepository()
	exists, err := repo.SlugExists(page.Slug)
	if err != nil {
		return internalError(c, "Failed to check slug")
	}
	if exists {
		return jsonError(c, fiber.StatusConflict, "conflict", "Slug already in use")
	}

	if err := repo.Create(&page); err != nil {
		return internalError(c, "Failed to create page")
	}
	return c.Status(fiber.StatusCreated).JSON(page)
}

// CustomPagePatch carries the updatable custom page fields.
type CustomPagePatch struct {
	Title    *string `json:"title"`
	Slug     *string `json:"slug"`
	Content  *string `json:"content"`
	IsActive *bool   `json:"isActive"`
}

func (p CustomPagePatch) apply(page *models.CustomPage) {
	if p.Title != nil {
		page.Title = *p.Title
	}
	if p.Slug != nil {
		page.Slug = *p.Slug
	}
	if p.Content != nil {
		page.Content = *p.Content
	}
	if p.IsActive != nil {
		page.IsActive = *p.IsActive
	}
}

// HandleAdminUpdatePage applies a partial update to a custom page.
func HandleAdminUpdatePage(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid page id")
	}

	repo := repository.GetGlobalFactory().GetPageRepository()
	existing, err := repo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Page not found")
		}
		return internalError(c, "Failed to load page")
	}

	var patch CustomPagePatch
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
		return internalError(c, "Failed to update page")
	}
	return c.JSON(existing)
}

// HandleAdminDeletePage soft deletes a custom page.
func HandleAdminDeletePage(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid page id")
	}

	repo := repository.GetGlobalFactory().GetPageRepository()
	if _, err := repo.GetByID(id); err != nil {
		if isNotFound(err) {
			return notFound(c, "Page not found")
		}
		return internalError(c, "Failed to load page")
	}

	if err := repo.Delete(id); err != nil {
		return internalError(c, "Failed to delete page")
	}
	return c.JSON(fiber.Map{"success": true})
}
