package oauth

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/markbates/goth"
	"golang.org/x/oauth2"

	"github.com/namosistemos/namosite/internal/pkg/auth"
)

// ErrNoRefreshToken means the session carries no refresh token, so the
// expired access token cannot be renewed and the session must be treated as
// unauthenticated.
var ErrNoRefreshToken = errors.New("oauth: session has no refresh token")

// RefreshSession exchanges the session's refresh token for a fresh
// access/refresh token pair and stores it back. The caller handles failure by
// dropping the session (fail closed).
func RefreshSession(sess *session.Session) error {
	refreshToken, _ := sess.Get(auth.SessionKeyOIDCRefreshToken).(string)
	if refreshToken == "" {
		return ErrNoRefreshToken
	}

	provider, err := goth.GetProvider(ProviderName)
	if err != nil {
		return err
	}

	var token *oauth2.Token
	token, err = provider.RefreshToken(refreshToken)
	if err != nil {
		return err
	}

	sess.Set(auth.SessionKeyOIDCAccessToken, token.AccessToken)
	if token.RefreshToken != "" {
		// Some providers rotate the refresh token; keep the old one otherwise.
		sess.Set(auth.SessionKeyOIDCRefreshToken, token.RefreshToken)
	}
	if !token.Expiry.IsZero() {
		sess.Set(auth.SessionKeyOIDCExpiresAt, strconv.FormatInt(token.Expiry.Unix(), 10))
	}
	return sess.Save()
}
