package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marocstar-shop/internal/backend"
)

var ErrMissingField = errors.New("missing required field")

// API is the slice of the backend the contact flow needs.
type API interface {
	SendContact(ctx context.Context, form backend.ContactForm) error
}

// Service is the stateless public contact flow: validate, submit, done.
type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

// Send validates the message locally and submits it. Validation failures
// never reach the network.
func (s *Service) Send(ctx context.Context, form backend.ContactForm) error {
	required := []struct {
		name  string
		value string
	}{
		{"name", form.Name},
		{"email", form.Email},
		{"object", form.Subject},
		{"description", form.Description},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}

	return s.api.SendContact(ctx, form)
}
