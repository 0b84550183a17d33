package config

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/crypto/hkdf"
)

// sessionKeyInfo binds derived signing keys to session tokens
const sessionKeyInfo = "career-compass session token v1"

// minSessionSecretLength is the shortest accepted SESSION_SECRET
const minSessionSecretLength = 16

// SessionConfig holds configuration for session token generation and validation.
type SessionConfig struct {
	Secret          string
	ExpirationHours int
}

// NewSessionConfig creates a session configuration from environment variables.
// It reads SESSION_SECRET (required) and SESSION_EXPIRATION_HOURS (default: 72).
func NewSessionConfig() (*SessionConfig, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required but not set")
	}

	expirationStr := os.Getenv("SESSION_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "72"
	}

	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_EXPIRATION_HOURS: %v", err)
	}

	cfg := &SessionConfig{
		Secret:          secret,
		ExpirationHours: expirationHours,
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SessionConfig) normalize() error {
	if len(c.Secret) < minSessionSecretLength {
		return fmt.Errorf("SESSION_SECRET must be at least %d characters", minSessionSecretLength)
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("SESSION_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	return nil
}

// SigningKey derives the 32-byte HMAC key used to sign session tokens from the secret
func (c *SessionConfig) SigningKey() ([]byte, error) {
	key := make([]byte, 32)
	r := hkdf.New(sha256.New, []byte(c.Secret), nil, []byte(sessionKeyInfo))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("failed to derive signing key: %w", err)
	}
	return key, nil
}
