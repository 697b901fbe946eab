package middleware

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/namosistemos/namosite/internal/pkg/admincontext"
	"github.com/namosistemos/namosite/internal/pkg/auth"
	"github.com/namosistemos/namosite/internal/pkg/oauth"
	"github.com/namosistemos/namosite/internal/pkg/session"
)

// AdminContextMiddleware resolves the admin session into an AdminContext for
// every request. Expired OIDC access tokens are refreshed transparently here;
// an unrecoverable refresh drops the session back to anonymous.
func AdminContextMiddleware(c *fiber.Ctx) error {
	// Goth uses its own fiber session store on the OAuth routes; skip our
	// app session there to prevent cross-store collisions.
	if strings.HasPrefix(c.Path(), "/auth/") {
		return c.Next()
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		c.Locals(admincontext.ContextKey, admincontext.AdminContext{})
		return c.Next()
	}

	// Static credential strategy: a boolean flag set at login time.
	if flag, ok := sess.Get(auth.SessionKeyAdminAuth).(bool); ok && flag && auth.StaticEnabled() {
		name, _ := sess.Get(auth.SessionKeyAdminName).(string)
		email, _ := sess.Get(auth.SessionKeyAdminEmail).(string)
		c.Locals(admincontext.ContextKey, admincontext.AdminContext{
			Authenticated: true,
			Strategy:      auth.StrategyStatic,
			Name:          name,
			Email:         email,
		})
		return c.Next()
	}

	// Delegated OIDC strategy: session-bound token pair with transparent refresh.
	if auth.OIDCEnabled() {
		accessToken, _ := sess.Get(auth.SessionKeyOIDCAccessToken).(string)
		if accessToken != "" {
			expiresAt := int64(0)
			if raw, ok := sess.Get(auth.SessionKeyOIDCExpiresAt).(string); ok {
				expiresAt, _ = strconv.ParseInt(raw, 10, 64)
			}
			if auth.TokenExpired(expiresAt, time.Now()) {
				if err := oauth.RefreshSession(sess); err != nil {
					log.Printf("OIDC token refresh failed, dropping session: %v", err)
					_ = sess.Destroy()
					c.Locals(admincontext.ContextKey, admincontext.AdminContext{})
					return c.Next()
				}
			}
			subject, _ := sess.Get(auth.SessionKeyOIDCSubject).(string)
			email, _ := sess.Get(auth.SessionKeyAdminEmail).(string)
			name, _ := sess.Get(auth.SessionKeyAdminName).(string)
			c.Locals(admincontext.ContextKey, admincontext.AdminContext{
				Authenticated: true,
				Strategy:      auth.StrategyOIDC,
				Name:          auth.FirstNonEmpty(name, subject),
				Email:         email,
			})
			return c.Next()
		}
	}

	c.Locals(admincontext.ContextKey, admincontext.AdminContext{})
	return c.Next()
}
