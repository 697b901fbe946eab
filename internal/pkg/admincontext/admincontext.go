package admincontext

import "github.com/gofiber/fiber/v2"

// ContextKey is the fiber.Ctx locals key the middleware stores the resolved
// admin context under.
const ContextKey = "ADMIN_CONTEXT"

// AdminContext represents the authenticated admin for a request, or the
// anonymous default.
type AdminContext struct {
	Authenticated bool   `json:"authenticated"`
	Strategy      string `json:"strategy,omitempty"`
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
}

// GetAdminContext retrieves the admin context from the fiber context.
// Returns an anonymous context if none is set.
func GetAdminContext(c *fiber.Ctx) AdminContext {
	if ctx := c.Locals(ContextKey); ctx != nil {
		if ac, ok := ctx.(AdminContext); ok {
			return ac
		}
	}
	return AdminContext{Authenticated: false}
}

// IsAuthenticated checks if the current request carries an admin session.
func IsAuthenticated(c *fiber.Ctx) bool {
	return GetAdminContext(c).Authenticated
}
