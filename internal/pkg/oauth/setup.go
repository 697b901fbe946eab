package oauth

import (
	"log"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	redisstorage "github.com/gofiber/storage/redis"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/openidConnect"
	gothfiber "github.com/shareed2k/goth_fiber"

	"github.com/namosistemos/namosite/internal/pkg/auth"
	"github.com/namosistemos/namosite/internal/pkg/cache"
	"github.com/namosistemos/namosite/internal/pkg/env"
)

// ProviderName is the goth provider key for the delegated admin login. It
// doubles as the :provider route segment, so /auth/oidc starts the flow.
const ProviderName = "oidc"

// Setup registers the OIDC provider and the goth session store based on
// environment variables. Safe to call multiple times; the provider is just
// re-registered. When OIDC is not configured this is a no-op and the static
// credential strategy (or the fail-closed default) applies.
func Setup() {
	if !auth.OIDCEnabled() {
		return
	}

	base := strings.TrimRight(env.GetEnv("PUBLIC_DOMAIN", ""), "/")
	if base == "" {
		base = "http://localhost:" + env.GetEnv("APP_PORT", "4000")
	}

	issuer := strings.TrimRight(env.GetEnv("OIDC_ISSUER", ""), "/")
	provider, err := openidConnect.New(
		env.GetEnv("OIDC_CLIENT_ID", ""),
		env.GetEnv("OIDC_CLIENT_SECRET", ""),
		base+"/auth/oidc/callback",
		issuer+"/.well-known/openid-configuration",
		"openid", "email", "profile", "offline_access",
	)
	if err != nil {
		log.Printf("OIDC provider setup failed: %v", err)
		return
	}
	provider.SetName(ProviderName)
	goth.UseProviders(provider)

	// OAuth state via Redis, using same connection as app sessions (separate DB)
	cacheOpts := cache.GetClient().Options()
	host, port := "127.0.0.1", 6379
	if cacheOpts != nil && cacheOpts.Addr != "" {
		if h, p, err := net.SplitHostPort(cacheOpts.Addr); err == nil {
			host = h
			if parsed, e := strconv.Atoi(p); e == nil {
				port = parsed
			}
		} else {
			host = cacheOpts.Addr
		}
	}

	gothfiber.SessionStore = session.New(session.Config{
		Storage: redisstorage.New(redisstorage.Config{
			Host:     host,
			Port:     port,
			Username: cacheOpts.Username,
			Password: cacheOpts.Password,
			Database: 2,
			Reset:    false,
		}),
		KeyLookup:      "cookie:" + gothic.SessionName,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		CookieSecure:   !env.IsDev(),
		Expiration:     time.Hour,
	})
}
