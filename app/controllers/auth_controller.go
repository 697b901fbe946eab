package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/namosistemos/namosite/internal/pkg/admincontext"
	"github.com/namosistemos/namosite/internal/pkg/auth"
	"github.com/namosistemos/namosite/internal/pkg/session"
)

// LoginRequest is the static credential login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin authenticates against the env-configured admin credentials and
// marks the session. When no auth strategy is configured at all the endpoint
// fails closed with 503 rather than letting anyone in.
func HandleLogin(c *fiber.Ctx) error {
	if !auth.Enabled() {
		return jsonError(c, fiber.StatusServiceUnavailable, "service_unavailable", "Admin authentication is not configured")
	}
	if !auth.StaticEnabled() {
		return badRequest(c, "Credential login is not configured; use the identity provider")
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if !auth.VerifyStaticCredentials(req.Username, req.Password) {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "Invalid credentials")
	}

	store := session.GetSessionStore()
	sess, err := store.Get(c)
	if err != nil {
		return internalError(c, "Failed to open session")
	}
	sess.Set(auth.SessionKeyAdminAuth, true)
	sess.Set(auth.SessionKeyAdminName, req.Username)
	if err := sess.Save(); err != nil {
		return internalError(c, "Failed to save session")
	}

	return c.JSON(fiber.Map{
		"authenticated": true,
		"strategy":      auth.StrategyStatic,
		"name":          req.Username,
	})
}

// HandleLogout destroys the admin session. Safe to call when not logged in.
func HandleLogout(c *fiber.Ctx) error {
	store := session.GetSessionStore()
	sess, err := store.Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleGetAuthUser reports the caller's admin context plus which login
// strategies the deployment has configured, so the admin UI knows whether to
// render a credential form, an identity-provider button, or an outage notice.
func HandleGetAuthUser(c *fiber.Ctx) error {
	ctx := admincontext.GetAdminContext(c)

	strategies := []string{}
	if auth.StaticEnabled() {
		strategies = append(strategies, auth.StrategyStatic)
	}
	if auth.OIDCEnabled() {
		strategies = append(strategies, auth.StrategyOIDC)
	}

	return c.JSON(fiber.Map{
		"authenticated": ctx.Authenticated,
		"strategy":      ctx.Strategy,
		"name":          ctx.Name,
		"email":         ctx.Email,
		"strategies":    strategies,
	})
}
