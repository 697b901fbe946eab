package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/namosistemos/namosite/internal/pkg/admincontext"
	"github.com/namosistemos/namosite/internal/pkg/auth"
)

// RequireAdminAPI gates the admin JSON routes. With no auth strategy
// configured at all it answers 503 for everything: the back office fails
// closed instead of silently opening up.
func RequireAdminAPI(c *fiber.Ctx) error {
	if !auth.Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":   "service_unavailable",
			"message": "authentication is not configured; admin features are disabled",
		})
	}
	if !admincontext.IsAuthenticated(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "login required",
		})
	}
	return c.Next()
}
