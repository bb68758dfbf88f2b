package session

import (
	"time"

	"marocstar-shop/internal/backend"
)

// Status is the guard's two-state machine.
type Status int

const (
	Unauthenticated Status = iota
	Authenticated
)

func (s Status) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// State is the session as the guard sees it. Authenticated means only
// that a token is present locally; the guard is advisory and the
// backend remains the real authority on every admin call.
type State struct {
	Status Status
	Token  string
	Admin  *backend.AdminProfile
	// Expiry is the token's exp claim when the token is a readable JWT.
	// Display only; an expired token still counts as present.
	Expiry *time.Time
}

func (s State) IsAuthenticated() bool {
	return s.Status == Authenticated
}
