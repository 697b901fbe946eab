package seo

import (
	"fmt"
	"strings"
)

// BuildRobots returns the robots.txt body. An admin-configured override wins;
// otherwise the default allows everything and points at the sitemap.
func BuildRobots(baseURL string, override string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	base := strings.TrimRight(baseURL, "/")
	return fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml", base)
}
