package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/namosistemos/namosite/app/models"
	"github.com/namosistemos/namosite/app/repository"
	"github.com/namosistemos/namosite/internal/pkg/cache"
)

// HandleAdminGetSeoSettings returns the SEO settings row.
func HandleAdminGetSeoSettings(c *fiber.Ctx) error {
	settings, err := repository.GetGlobalFactory().GetSettingsRepository().GetSeo()
	if err != nil {
		return internalError(c, "Failed to load SEO settings")
	}
	return c.JSON(settings)
}

// HandleAdminUpdateSeoSettings saves the SEO settings and invalidates the
// cached robots.txt, which may embed the override text.
func HandleAdminUpdateSeoSettings(c *fiber.Ctx) error {
	var settings models.SeoSettings
	if err := c.BodyParser(&settings); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := settings.Validate(); err != nil {
		return validationError(c, err)
	}

	if err := repository.GetGlobalFactory().GetSettingsRepository().UpsertSeo(&settings); err != nil {
		return internalError(c, "Failed to save SEO settings")
	}

	// A stale cached robots.txt would otherwise serve the old override
	// until the TTL runs out.
	_ = cache.Delete(robotsCacheKey)

	return c.JSON(settings)
}

// HandleAdminGetParticlesSettings returns the particle animation settings.
func HandleAdminGetParticlesSettings(c *fiber.Ctx) error {
	settings, err := repository.GetGlobalFactory().GetSettingsRepository().GetParticles()
	if err != nil {
		return internalError(c, "Failed to load particles settings")
	}
	return c.JSON(settings)
}

// HandleAdminUpdateParticlesSettings saves the particle animation settings.
func HandleAdminUpdateParticlesSettings(c *fiber.Ctx) error {
	var settings models.ParticlesSettings
	if err := c.BodyParser(&settings); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := settings.Validate(); err != nil {
		return validationError(c, err)
	}

	if err := repository.GetGlobalFactory().GetSettingsRepository().UpsertParticles(&settings); err != nil {
		return internalError(c, "Failed to save particles settings")
	}
	return c.JSON(settings)
}
