package checkout

import (
	"context"
	"fmt"
	"strings"

	"marocstar-shop/internal/backend"
	"marocstar-shop/internal/cart"
	"marocstar-shop/internal/logger"

	"go.uber.org/zap"
)

// CustomerForm is the contact/delivery information entered at checkout.
// All fields are required.
type CustomerForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"adresse"`
	City    string `json:"city"`
}

// API is the slice of the backend checkout needs.
type API interface {
	CreateOrder(ctx context.Context, draft backend.OrderDraft) error
}

// Service assembles an order draft from the current cart plus the
// customer form and submits it. The submission carries no idempotency
// key: resubmitting creates a duplicate order server-side.
type Service struct {
	api  API
	cart *cart.Store
}

func NewService(api API, cartStore *cart.Store) *Service {
	return &Service{api: api, cart: cartStore}
}

// BuildDraft validates the form and snapshots the cart into a draft.
// An empty cart or a missing field fails here, before any network call.
func (s *Service) BuildDraft(form CustomerForm) (backend.OrderDraft, error) {
	if err := validateForm(form); err != nil {
		return backend.OrderDraft{}, err
	}

	lines := s.cart.Load()
	if len(lines) == 0 {
		return backend.OrderDraft{}, ErrEmptyCart
	}

	items := make([]backend.DraftItem, 0, len(lines))
	var total float64
	for _, l := range lines {
		items = append(items, backend.DraftItem{ProductID: l.ProductID, Quantity: l.Quantity})
		total += l.Subtotal()
	}

	return backend.OrderDraft{
		Name:       form.Name,
		Email:      form.Email,
		Phone:      form.Phone,
		Address:    form.Address,
		City:       form.City,
		Products:   items,
		TotalPrice: total,
	}, nil
}

// Submit places the order. On success the cart is cleared and the draft
// discarded; on failure the cart is left untouched so the user can retry.
func (s *Service) Submit(ctx context.Context, form CustomerForm) (backend.OrderDraft, error) {
	draft, err := s.BuildDraft(form)
	if err != nil {
		return backend.OrderDraft{}, err
	}

	if err := s.api.CreateOrder(ctx, draft); err != nil {
		return backend.OrderDraft{}, err
	}

	if err := s.cart.Clear(); err != nil {
		// The order went through; a cart that failed to clear is only a
		// display problem.
		logger.FromCtx(ctx).Warn("order placed but cart not cleared", zap.Error(err))
	}
	return draft, nil
}

func validateForm(form CustomerForm) error {
	required := []struct {
		name  string
		value string
	}{
		{"name", form.Name},
		{"email", form.Email},
		{"phone", form.Phone},
		{"adresse", form.Address},
		{"city", form.City},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return nil
}
