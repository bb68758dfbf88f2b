package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DisplayClaims are hints decoded from the stored token for UI display.
// The token is parsed without signature verification and these values
// must never gate anything: routing stays presence-only and the backend
// enforces real authorization.
type DisplayClaims struct {
	Name      string
	Email     string
	ExpiresAt *time.Time
}

// ParseDisplayClaims decodes the token's claims without verifying it.
func ParseDisplayClaims(token string) (*DisplayClaims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("parse session token: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return &DisplayClaims{}, nil
	}

	out := &DisplayClaims{}
	if name, ok := claims["name"].(string); ok {
		out.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		out.ExpiresAt = &t
	}
	return out, nil
}
