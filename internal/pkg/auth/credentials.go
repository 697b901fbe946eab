package auth

import (
	"crypto/subtle"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/namosistemos/namosite/internal/pkg/env"
)

// Session keys used by the admin auth layer.
const (
	SessionKeyAdminAuth  = "admin_authenticated"
	SessionKeyAdminName  = "admin_name"
	SessionKeyAdminEmail = "admin_email"

	SessionKeyOIDCAccessToken  = "oidc_access_token"
	SessionKeyOIDCRefreshToken = "oidc_refresh_token"
	SessionKeyOIDCExpiresAt    = "oidc_expires_at"
	SessionKeyOIDCSubject      = "oidc_subject"
)

// Credential strategy names, reported in the auth-user payload.
const (
	StrategyStatic = "static"
	StrategyOIDC   = "oidc"
)

// StaticEnabled reports whether env-configured admin credentials exist.
func StaticEnabled() bool {
	return env.GetEnv("ADMIN_USERNAME", "") != "" &&
		(env.GetEnv("ADMIN_PASSWORD", "") != "" || env.GetEnv("ADMIN_PASSWORD_HASH", "") != "")
}

// OIDCEnabled reports whether the delegated identity-provider flow is configured.
func OIDCEnabled() bool {
	return env.GetEnv("OIDC_ISSUER", "") != "" &&
		env.GetEnv("OIDC_CLIENT_ID", "") != "" &&
		env.GetEnv("OIDC_CLIENT_SECRET", "") != ""
}

// Enabled reports whether any admin auth strategy is configured. When false,
// every admin route fails closed with 503 instead of silently allowing access.
func Enabled() bool {
	return StaticEnabled() || OIDCEnabled()
}

// VerifyStaticCredentials checks a submitted username/password pair against
// the configured admin credentials.
func VerifyStaticCredentials(username, password string) bool {
	return verifyCredentials(
		username,
		password,
		env.GetEnv("ADMIN_USERNAME", ""),
		env.GetEnv("ADMIN_PASSWORD", ""),
		env.GetEnv("ADMIN_PASSWORD_HASH", ""),
	)
}

// verifyCredentials compares in constant time. When a bcrypt hash is
// configured it wins over the plaintext password.
func verifyCredentials(gotUser, gotPass, wantUser, wantPass, wantHash string) bool {
	if wantUser == "" || (wantPass == "" && wantHash == "") {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(gotUser), []byte(wantUser)) == 1
	if wantHash != "" {
		return userOK && bcrypt.CompareHashAndPassword([]byte(wantHash), []byte(gotPass)) == nil
	}
	passOK := subtle.ConstantTimeCompare([]byte(gotPass), []byte(wantPass)) == 1
	return userOK && passOK
}

// TokenExpired reports whether an access token with the given unix expiry is
// no longer usable at the given instant. A zero expiry counts as expired.
func TokenExpired(expiresAtUnix int64, now time.Time) bool {
	return expiresAtUnix == 0 || now.Unix() > expiresAtUnix
}

// FirstNonEmpty picks a display name from identity claims of varying
// completeness, e.g. name, nickname, email in order of preference.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
