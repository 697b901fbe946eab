package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/namosistemos/namosite/app/repository"
)

// HandleGetPlans returns all pricing plans in display order.
func HandleGetPlans(c *fiber.Ctx) error {
	plans, err := repository.GetGlobalFactory().GetPlanRepository().GetAll()
	if err != nil {
		return internalError(c, "Failed to load plans")
	}
	return c.JSON(plans)
}

// HandleGetOptions returns the full configurator catalog in one payload:
// option groups, options and the plan visibility links. The client resolves
// visibility with the same empty-set-means-all rule the server prices with.
func HandleGetOptions(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetOptionRepository()

	groups, err := repo.GetGroups()
	if err != nil {
		return internalError(c, "Failed to load option groups")
	}
	options, err := repo.GetOptions()
	if err != nil {
		return internalError(c, "Failed to load options")
	}
	links, err := repo.GetPlanLinks()
	if err != nil {
		return internalError(c, "Failed to load plan option groups")
	}

	return c.JSON(fiber.Map{
		"groups":           groups,
		"options":          options,
		"planOptionGroups": links,
	})
}

// HandleGetFeatures returns the comparison table: feature groups, features
// and the per-plan values.
func HandleGetFeatures(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetFeatureRepository()

	groups, err := repo.GetGroups()
	if err != nil {
		return internalError(c, "Failed to load feature groups")
	}
	features, err := repo.GetFeatures()
	if err != nil {
		return internalError(c, "Failed to load features")
	}
	values, err := repo.GetPlanFeatures()
	if err != nil {
		return internalError(c, "Failed to load plan features")
	}

	return c.JSON(fiber.Map{
		"groups":       groups,
		"features":     features,
		"planFeatures": values,
	})
}

// HandleGetSiteContent returns every keyed site content entry.
func HandleGetSiteContent(c *fiber.Ctx) error {
	entries, err := repository.GetGlobalFactory().GetContentRepository().GetSiteContent()
	if err != nil {
		return internalError(c, "Failed to load site content")
	}
	return c.JSON(entries)
}

// HandleGetContentBlocks returns the active content blocks in display order.
func HandleGetContentBlocks(c *fiber.Ctx) error {
	blocks, err := repository.GetGlobalFactory().GetContentRepository().GetActiveContentBlocks()
	if err != nil {
		return internalError(c, "Failed to load content blocks")
	}
	return c.JSON(blocks)
}

// HandleGetMenuLinks returns the active header links in display order.
func HandleGetMenuLinks(c *fiber.Ctx) error {
	links, err := repository.GetGlobalFactory().GetLinkRepository().GetActiveMenuLinks()
	if err != nil {
		return internalError(c, "Failed to load menu links")
	}
	return c.JSON(links)
}

// HandleGetFooterLinks returns the active footer links in display order.
func HandleGetFooterLinks(c *fiber.Ctx) error {
	links, err := repository.GetGlobalFactory().GetLinkRepository().GetActiveFooterLinks()
	if err != nil {
		return internalError(c, "Failed to load footer links")
	}
	return c.JSON(links)
}

// HandleGetSeoSettings returns the public SEO settings.
func HandleGetSeoSettings(c *fiber.Ctx) error {
	settings, err := repository.GetGlobalFactory().GetSettingsRepository().GetSeo()
	if err != nil {
		return internalError(c, "Failed to load SEO settings")
	}
	return c.JSON(settings)
}

// HandleGetParticlesSettings returns the particle animation settings, falling
// back to the defaults when none were saved yet.
func HandleGetParticlesSettings(c *fiber.Ctx) error {
	settings, err := repository.GetGlobalFactory().GetSettingsRepository().GetParticles()
	if err != nil {
		return internalError(c, "Failed to load particles settings")
	}
	return c.JSON(settings)
}

// HandleGetPageBySlug returns one active custom page.
func HandleGetPageBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return badRequest(c, "Missing page slug")
	}

	page, err := repository.GetGlobalFactory().GetPageRepository().GetBySlug(slug)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Page not found")
		}
		return internalError(c, "Failed to load page")
	}
	return c.JSON(page)
}
