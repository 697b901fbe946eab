package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/namosistemos/namosite/app/repository"
	"github.com/namosistemos/namosite/internal/pkg/cache"
	"github.com/namosistemos/namosite/internal/pkg/env"
	"github.com/namosistemos/namosite/internal/pkg/seo"
)

// Cache keys and TTL for the generated crawler documents. Admin mutations
// that change the output delete these keys eagerly; the TTL covers the rest.
const (
	sitemapCacheKey = "seo:sitemap"
	robotsCacheKey  = "seo:robots"
	seoCacheTTL     = 15 * time.Minute
)

// publicBaseURL is the absolute origin used in generated crawler documents.
func publicBaseURL() string {
	base := strings.TrimRight(env.GetEnv("PUBLIC_DOMAIN", ""), "/")
	if base == "" {
		base = "http://localhost:" + env.GetEnv("APP_PORT", "4000")
	}
	return base
}

// HandleSitemap serves the generated sitemap.xml.
func HandleSitemap(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")

	if cached, err := cache.Get(sitemapCacheKey); err == nil && cached != "" {
		return c.SendString(cached)
	}

	blocks, err := repository.GetGlobalFactory().GetContentRepository().GetActiveContentBlocks()
	if err != nil {
		return internalError(c, "Failed to load content blocks")
	}

	body := seo.BuildSitemap(publicBaseURL(), blocks)
	_ = cache.Set(sitemapCacheKey, body, seoCacheTTL)
	return c.SendString(body)
}

// HandleRobots serves robots.txt, honoring the admin override from the SEO
// settings when one is set.
func HandleRobots(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")

	if cached, err := cache.Get(robotsCacheKey); err == nil && cached != "" {
		return c.SendString(cached)
	}

	settings, err := repository.GetGlobalFactory().GetSettingsRepository().GetSeo()
	if err != nil {
		return internalError(c, "Failed to load SEO settings")
	}

	body := seo.BuildRobots(publicBaseURL(), settings.RobotsTxt)
	_ = cache.Set(robotsCacheKey, body, seoCacheTTL)
	return c.SendString(body)
}
