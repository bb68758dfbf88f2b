package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"marocstar-shop/internal/backend"
	"marocstar-shop/internal/logger"
	"marocstar-shop/internal/storage"

	"go.uber.org/zap"
)

// Fixed storage keys for the token and the display profile.
const (
	TokenKey   = "adminToken"
	ProfileKey = "admin"
)

var ErrMissingCredentials = errors.New("email and password are required")

// API is the slice of the backend the session service needs.
type API interface {
	Login(ctx context.Context, email, password string) (*backend.LoginResult, error)
	Logout(ctx context.Context, token string) error
}

// Service owns the session lifecycle: it is the only code that reads or
// writes the token and profile keys.
type Service struct {
	api     API
	storage storage.Store
}

func NewService(api API, st storage.Store) *Service {
	return &Service{api: api, storage: st}
}

// Current derives the session state from local storage. Token presence
// alone decides the status; the profile is display-only and a malformed
// one is simply dropped.
func (s *Service) Current() State {
	token, err := s.storage.Get(TokenKey)
	if err != nil || len(token) == 0 {
		return State{Status: Unauthenticated}
	}

	state := State{Status: Authenticated, Token: string(token)}

	if raw, err := s.storage.Get(ProfileKey); err == nil {
		var profile backend.AdminProfile
		if json.Unmarshal(raw, &profile) == nil {
			state.Admin = &profile
		}
	}

	// Backend tokens are JWTs; their claims fill in whatever the stored
	// profile lacks. Hints only, the guard stays presence-based.
	if claims, err := ParseDisplayClaims(state.Token); err == nil {
		if state.Admin == nil && (claims.Name != "" || claims.Email != "") {
			state.Admin = &backend.AdminProfile{Name: claims.Name, Email: claims.Email}
		}
		state.Expiry = claims.ExpiresAt
	}
	return state
}

// Login exchanges credentials for a token and persists it, plus the
// admin profile when the backend includes one.
func (s *Service) Login(ctx context.Context, email, password string) (State, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return State{Status: Unauthenticated}, ErrMissingCredentials
	}

	result, err := s.api.Login(ctx, email, password)
	if err != nil {
		return State{Status: Unauthenticated}, err
	}

	if err := s.storage.Set(TokenKey, []byte(result.Token)); err != nil {
		return State{Status: Unauthenticated}, fmt.Errorf("persist session token: %w", err)
	}
	if result.Admin != nil {
		if raw, err := json.Marshal(result.Admin); err == nil {
			if err := s.storage.Set(ProfileKey, raw); err != nil {
				logger.FromCtx(ctx).Warn("admin profile not persisted", zap.Error(err))
			}
		}
	}

	return State{Status: Authenticated, Token: result.Token, Admin: result.Admin}, nil
}

// Logout tells the backend to invalidate the token, then wipes local
// state. The wipe happens even when the backend call fails: locally the
// session is over either way.
func (s *Service) Logout(ctx context.Context) error {
	state := s.Current()
	if state.IsAuthenticated() {
		if err := s.api.Logout(ctx, state.Token); err != nil {
			logger.FromCtx(ctx).Warn("backend logout failed, clearing local session anyway", zap.Error(err))
		}
	}

	if err := s.storage.Remove(TokenKey); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	if err := s.storage.Remove(ProfileKey); err != nil {
		return fmt.Errorf("clear admin profile: %w", err)
	}
	return nil
}
