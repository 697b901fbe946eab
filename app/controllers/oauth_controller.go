package controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	gothfiber "github.com/shareed2k/goth_fiber"

	"github.com/namosistemos/namosite/internal/pkg/auth"
	"github.com/namosistemos/namosite/internal/pkg/session"
)

// HandleOAuthCallback completes the identity-provider flow and binds the
// token pair to the admin session. There is no user table lookup: anyone the
// configured provider authenticates is an admin, which is exactly the
// single-tenant deployment model.
func HandleOAuthCallback(c *fiber.Ctx) error {
	u, err := gothfiber.CompleteUserAuth(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(fmt.Sprintf("OAuth failed: %v", err))
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("session init failed")
	}

	sess.Set(auth.SessionKeyOIDCAccessToken, u.AccessToken)
	sess.Set(auth.SessionKeyOIDCRefreshToken, u.RefreshToken)
	sess.Set(auth.SessionKeyOIDCSubject, u.UserID)
	if !u.ExpiresAt.IsZero() {
		sess.Set(auth.SessionKeyOIDCExpiresAt, strconv.FormatInt(u.ExpiresAt.Unix(), 10))
	}
	sess.Set(auth.SessionKeyAdminName, auth.FirstNonEmpty(u.Name, u.NickName, u.Email))
	sess.Set(auth.SessionKeyAdminEmail, u.Email)

	if err := sess.Save(); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("session save failed")
	}

	return c.Redirect("/admin", fiber.StatusSeeOther)
}

// HandleOAuthLogout clears both the provider state and the admin session.
func HandleOAuthLogout(c *fiber.Ctx) error {
	_ = gothfiber.Logout(c)

	sess, err := session.GetSessionStore().Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
