package auth

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestVerifyCredentialsPlaintext(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		pass     string
		want     bool
	}{
		{name: "correct pair", user: "admin", pass: "s3cret", want: true},
		{name: "wrong password", user: "admin", pass: "nope", want: false},
		{name: "wrong username", user: "root", pass: "s3cret", want: false},
		{name: "both empty", user: "", pass: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := verifyCredentials(tt.user, tt.pass, "admin", "s3cret", ""); got != tt.want {
				t.Fatalf("verifyCredentials = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerifyCredentialsBcryptHashWinsOverPlaintext(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	if !verifyCredentials("admin", "hashed-pass", "admin", "ignored-plain", string(hash)) {
		t.Fatalf("expected hash match to authenticate")
	}
	if verifyCredentials("admin", "ignored-plain", "admin", "ignored-plain", string(hash)) {
		t.Fatalf("plaintext must be ignored once a hash is configured")
	}
}

func TestVerifyCredentialsFailsClosedWithoutConfig(t *testing.T) {
	if verifyCredentials("admin", "anything", "", "", "") {
		t.Fatalf("unconfigured credentials must never authenticate")
	}
	if verifyCredentials("", "", "admin", "", "") {
		t.Fatalf("username without password must never authenticate")
	}
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if TokenExpired(now.Add(time.Minute).Unix(), now) {
		t.Fatalf("future expiry must not count as expired")
	}
	if TokenExpired(now.Unix(), now) {
		t.Fatalf("expiry at the exact instant is still valid")
	}
	if !TokenExpired(now.Add(-time.Second).Unix(), now) {
		t.Fatalf("past expiry must count as expired")
	}
	if !TokenExpired(0, now) {
		t.Fatalf("missing expiry must count as expired")
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "nick", "mail@example.lt"); got != "nick" {
		t.Fatalf("expected first non-empty value, got %q", got)
	}
	if got := FirstNonEmpty("", ""); got != "" {
		t.Fatalf("expected empty fallback, got %q", got)
	}
}
