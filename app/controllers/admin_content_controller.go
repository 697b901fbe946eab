package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/namosistemos/namosite/app/models"
	"github.com/namosistemos/namosite/app/repository"
	"github.com/namosistemos/namosite/internal/pkg/cache"
)

// HandleAdminGetSiteContent returns every keyed site content entry.
func HandleAdminGetSiteContent(c *fiber.Ctx) error {
	entries, err := repository.GetGlobalFactory().GetContentRepository().GetSiteContent()
	if err != nil {
		return internalError(c, "Failed to load site content")
	}
	return c.JSON(entries)
}

// HandleAdminUpsertSiteContent writes the entry for the key in the URL. The
// key comes from the route, not the body, so an entry can never be saved
// under the wrong key.
func HandleAdminUpsertSiteContent(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return badRequest(c, "Missing content key")
	}

	var content models.SiteContent
	if err := c.BodyParser(&content); err != nil {
		return badRequest(c, "Invalid request body")
	}
	content.Key = key
	if err := content.Validate(); err != nil {
		return validationError(c, err)
	}

	if err := repository.GetGlobalFactory().GetContentRepository().UpsertSiteContent(&content); err != nil {
		return internalError(c, "Failed to save site content")
	}
	return c.JSON(content)
}

// HandleAdminGetContentBlocks returns all content blocks, active or not.
func HandleAdminGetContentBlocks(c *fiber.Ctx) error {
	blocks, err := repository.GetGlobalFactory().GetContentRepository().GetContentBlocks()
	if err != nil {
		return internalError(c, "Failed to load content blocks")
	}
	return c.JSON(blocks)
}

// HandleAdminCreateContentBlock creates a content block, enforcing the total
// cap. Inactive blocks count against the cap too.
func HandleAdminCreateContentBlock(c *fiber.Ctx) error {
	var block models.ContentBlock
	if err := c.BodyParser(&block); err != nil {
		return badRequest(c, "Invalid request body")
	}
	block.ID = 0
	if err := block.Validate(); err != nil {
		return validationError(c, err)
	}

	repo := repository.GetGlobalFactory().GetContentRepository()
	count, err := repo.CountContentBlocks()
	if err != nil {
		return internalError(c, "Failed to count content blocks")
	}
	if count >= models.MaxContentBlocks {
		return jsonError(c, fiber.StatusConflict, "limit_reached",
			fmt.Sprintf("At most %d content blocks are allowed", models.MaxContentBlocks))
	}

	if err := repo.CreateContentBlock(&block); err != nil {
		return internalError(c, "Failed to create content block")
	}
	_ = cache.Delete(sitemapCacheKey)
	return c.Status(fiber.StatusCreated).JSON(block)
}

// ContentBlockPatch carries the updatable content block fields.
type ContentBlockPatch struct {
	Slug      *string `json:"slug"`
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	IsHTML    *bool   `json:"isHtml"`
	IsActive  *bool   `json:"isActive"`
	SortOrder *int    `json:"sortOrder"`
}

func (p ContentBlockPatch) apply(block *models.ContentBlock) {
	if p.Slug != nil {
		block.Slug = *p.Slug
	}
	if p.Title != nil {
		block.Title = *p.Title
	}
	if p.Content != nil {
		block.Content = *p.Content
	}
	if p.IsHTML != nil {
		block.IsHTML = *p.IsHTML
	}
	if p.IsActive != nil {
		block.IsActive = *p.IsActive
	}
	if p.SortOrder != nil {
		block.SortOrder = *p.SortOrder
	}
}

// HandleAdminUpdateContentBlock applies a partial update to a content block.
func HandleAdminUpdateContentBlock(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid content block id")
	}

	repo := repository.GetGlobalFactory().GetContentRepository()
	existing, err := repo.GetContentBlockByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Content block not found")
		}
		return internalError(c, "Failed to load content block")
	}

	var patch ContentBlockPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}
	patch.apply(existing)
	if err := existing.Validate(); err != nil {
		return validationError(c, err)
	}

	if err := repo.UpdateContentBlock(existing); err != nil {
		return internalError(c, "Failed to update content block")
	}
	_ = cache.Delete(sitemapCacheKey)
	return c.JSON(existing)
}

// HandleAdminDeleteContentBlock removes a content block, freeing a slot under
// the cap.
func HandleAdminDeleteContentBlock(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid content block id")
	}

	repo := repository.GetGlobalFactory().GetContentRepository()
	if _, err := repo.GetContentBlockByID(id); err != nil {
		if isNotFound(err) {
			return notFound(c, "Content block not found")
		}
		return internalError(c, "Failed to load content block")
	}

	if err := repo.DeleteContentBlock(id); err != nil {
		return internalError(c, "Failed to delete content block")
	}
	_ = cache.Delete(sitemapCacheKey)
	return c.JSON(fiber.Map{"success": true})
}

// HandleAdminGetMenuLinks returns all header links, active or not.
func HandleAdminGetMenuLinks(c *fiber.Ctx) error {
	links, err := repository.GetGlobalFactory().GetLinkRepository().GetMenuLinks()
	if err != nil {
		return internalError(c, "Failed to load menu links")
	}
	return c.JSON(links)
}

// HandleAdminCreateMenuLink creates a header link.
func HandleAdminCreateMenuLink(c *fiber.Ctx) error {
	var link models.MenuLink
	if err := c.BodyParser(&link); err != nil {
		return badRequest(c, "Invalid request body")
	}
	link.ID = 0
	if err := link.Validate(); err != nil {
		return validationError(c, err)
	}

	if err := repository.GetGlobalFactory().GetLinkRepository().CreateMenuLink(&link); err != nil {
		return internalError(c, "Failed to create menu link")
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

// NavLinkPatch carries the updatable fields shared by menu and footer links.
type NavLinkPatch struct {
	Label       *string `json:"label"`
	TargetType  *string `json:"targetType"`
	TargetValue *string `json:"targetValue"`
	IsActive    *bool   `json:"isActive"`
	SortOrder   *int    `json:"sortOrder"`
}

func (p NavLinkPatch) applyToMenuLink(link *models.MenuLink) {
	if p.Label != nil {
		link.Label = *p.Label
	}
	if p.TargetType != nil {
		link.TargetType = *p.TargetType
	}
	if p.TargetValue != nil {
		link.TargetValue = *p.TargetValue
	}
	if p.IsActive != nil {
		link.IsActive = *p.IsActive
	}
	if p.SortOrder != nil {
		link.SortOrder = *p.SortOrder
	}
}

func (p NavLinkPatch) applyToFooterLink(link *models.FooterLink) {
	if p.Label != nil {
		link.Label = *p.Label
	}
	if p.TargetType != nil {
		link.TargetType = *p.TargetType
	}
	if p.TargetValue != nil {
		link.TargetValue = *p.TargetValue
	}
	if p.IsActive != nil {
		link.IsActive = *p.IsActive
	}
	if p.SortOrder != nil {
		link.SortOrder = *p.SortOrder
	}
}

// HandleAdminUpdateMenuLink applies a partial update to a header link.
func HandleAdminUpdateMenuLink(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid menu link id")
	}

	repo := repository.GetGlobalFactory().GetLinkRepository()
	existing, err := repo.GetMenuLinkByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Menu link not found")
		}
		return internalError(c, "Failed to load menu link")
	}

	var patch NavLinkPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}
	patch.applyToMenuLink(existing)
	if err := existing.Validate(); err != nil {
		return validationError(c, err)
	}

	if err := repo.UpdateMenuLink(existing); err != nil {
		return internalError(c, "Failed to update menu link")
	}
	return c.JSON(existing)
}

// HandleAdminDeleteMenuLink removes a header link.
func HandleAdminDeleteMenuLink(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid menu link id")
	}

	repo := repository.GetGlobalFactory().GetLinkRepository()
	if _, err := repo.GetMenuLinkByID(id); err != nil {
		if isNotFound(err) {
			return notFound(c, "Menu link not found")
		}
		return internalError(c, "Failed to load menu link")
	}

	if err := repo.DeleteMenuLink(id); err != nil {
		return internalError(c, "Failed to delete menu link")
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleAdminGetFooterLinks returns all footer links, active or not.
func HandleAdminGetFooterLinks(c *fiber.Ctx) error {
	links, err := repository.GetGlobalFactory().GetLinkRepository().GetFooterLinks()
	if err != nil {
		return internalError(c, "Failed to load footer links")
	}
	return c.JSON(links)
}

// HandleAdminCreateFooterLink creates a footer link.
func HandleAdminCreateFooterLink(c *fiber.Ctx) error {
	var link models.FooterLink
	if err := c.BodyParser(&link); err != nil {
		return badRequest(c, "Invalid request body")
	}
	link.ID = 0
	if err := link.Validate(); err != nil {
		return validationError(c, err)
	}

	if err := repository.GetGlobalFactory().GetLinkRepository().CreateFooterLink(&link); err != nil {
		return internalError(c, "Failed to create footer link")
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

// HandleAdminUpdateFooterLink applies a partial update to a footer link.
func HandleAdminUpdateFooterLink(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid footer link id")
	}

	repo := repository.GetGlobalFactory().GetLinkRepository()
	existing, err := repo.GetFooterLinkByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Footer link not found")
		}
		return internalError(c, "Failed to load footer link")
	}

	var patch NavLinkPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}
	patch.applyToFooterLink(existing)
	if err := existing.Validate(); err != nil {
		return validationError(c, err)
	}

	if err := repo.UpdateFooterLink(existing); err != nil {
		return internalError(c, "Failed to update footer link")
	}
	return c.JSON(existing)
}

// HandleAdminDeleteFooterLink removes a footer link.
func HandleAdminDeleteFooterLink(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid footer link id")
	}

	repo := repository.GetGlobalFactory().GetLinkRepository()
	if _, err := repo.GetFooterLinkByID(id); err != nil {
		if isNotFound(err) {
			return notFound(c, "Footer link not found")
		}
		return internalError(c, "Failed to load footer link")
	}

	if err := repo.DeleteFooterLink(id); err != nil {
		return internalError(c, "Failed to delete footer link")
	}
	return c.JSON(fiber.Map{"success": true})
}
