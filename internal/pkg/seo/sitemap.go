package seo

import (
	"fmt"
	"strings"

	"github.com/namosistemos/namosite/app/models"
)

// The landing page is a single document; everything else is an anchor into it.
const (
	sectionPlans    = "plans"
	sectionFeatures = "features"
)

// BuildSitemap renders the sitemap.xml for the landing page: the home page,
// the two built-in section anchors, and one anchor per active content block
// that has a slug.
func BuildSitemap(baseURL string, blocks []models.ContentBlock) string {
	base := strings.TrimRight(baseURL, "/")

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n")

	writeURL(&b, base+"/", "weekly", "1.0")
	writeURL(&b, base+"/#"+sectionPlans, "weekly", "0.8")
	writeURL(&b, base+"/#"+sectionFeatures, "weekly", "0.8")

	for _, block := range blocks {
		if !block.IsActive || block.Slug == "" {
			continue
		}
		writeURL(&b, base+"/#"+block.Slug, "monthly", "0.6")
	}

	b.WriteString("</urlset>")
	return b.String()
}

func writeURL(b *strings.Builder, loc, changefreq, priority string) {
	fmt.Fprintf(b, "  <url>\n    <loc>%s</loc>\n    <changefreq>%s</changefreq>\n    <priority>%s</priority>\n  </url>\n",
		loc, changefreq, priority)
}
