package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/namosistemos/namosite/app/models"
)

func TestBuildSitemap(t *testing.T) {
	blocks := []models.ContentBlock{
		{ID: 1, Slug: "apie-mus", IsActive: true},
		{ID: 2, Slug: "", IsActive: true},           // no slug, no anchor
		{ID: 3, Slug: "nuolaidos", IsActive: false}, // inactive, no anchor
	}

	xml := BuildSitemap("https://example.lt/", blocks)

	assert.True(t, strings.HasPrefix(xml, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>"))
	assert.Contains(t, xml, "<loc>https://example.lt/</loc>")
	assert.Contains(t, xml, "<loc>https://example.lt/#plans</loc>")
	assert.Contains(t, xml, "<loc>https://example.lt/#features</loc>")
	assert.Contains(t, xml, "<loc>https://example.lt/#apie-mus</loc>")
	assert.NotContains(t, xml, "nuolaidos")
	assert.Equal(t, 4, strings.Count(xml, "<url>"))
}

func TestBuildSitemapWithoutBlocks(t *testing.T) {
	xml := BuildSitemap("https://example.lt", nil)
	assert.Equal(t, 3, strings.Count(xml, "<url>"))
}

func TestBuildRobotsDefault(t *testing.T) {
	robots := BuildRobots("https://example.lt", "")

	assert.Contains(t, robots, "User-agent: *")
	assert.Contains(t, robots, "Allow: /")
	assert.Contains(t, robots, "Sitemap: https://example.lt/sitemap.xml")
}

func TestBuildRobotsOverride(t *testing.T) {
	override := "User-agent: *\nDisallow: /admin"
	assert.Equal(t, override, BuildRobots("https://example.lt", override))

	// Whitespace-only override falls back to the default.
	robots := BuildRobots("https://example.lt", "   \n")
	assert.Contains(t, robots, "Allow: /")
}
