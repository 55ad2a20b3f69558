package utils

import (
	"errors"
	"os"
	"strings"
	"time"
)

const defaultTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// Config holds the process-wide auth settings, loaded once at startup.
type Config struct {
	SigningSecret      []byte
	AllowedEmailDomain string // bare domain, e.g. "klh.edu.in"
	OAuthClientID      string
	TokenInfoURL       string
	MaxFailedAttempts  int
	LockWindow         time.Duration
	TokenTTL           time.Duration
}

func LoadConfig() (Config, error) {
	secret := os.Getenv(JWT_SECRET_KEY)
	if secret == "" {
		return Config{}, errors.New("JWT_SECRET_KEY is not set")
	}
	domain := strings.ToLower(strings.TrimSpace(os.Getenv(ALLOWED_EMAIL_DOMAIN)))
	domain = strings.TrimPrefix(domain, "@")
	if domain == "" {
		return Config{}, errors.New("ALLOWED_EMAIL_DOMAIN is not set")
	}
	tokenInfoURL := os.Getenv(GOOGLE_TOKENINFO_URL)
	if tokenInfoURL == "" {
		tokenInfoURL = defaultTokenInfoURL
	}
	return Config{
		SigningSecret:      []byte(secret),
		AllowedEmailDomain: domain,
		OAuthClientID:      os.Getenv(GOOGLE_CLIENT_ID),
		TokenInfoURL:       tokenInfoURL,
		MaxFailedAttempts:  MAX_FAILED_LOGIN_ATTEMPTS,
		LockWindow:         time.Minute * LOCK_WINDOW_MINUTES,
		TokenTTL:           time.Hour * 24 * TOKEN_DURATION_DAYS,
	}, nil
}
