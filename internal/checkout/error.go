package checkout

import "errors"

var (
	// -- Validation & Input --
	ErrEmptyCart    = errors.New("cart is empty")
	ErrMissingField = errors.New("missing required field")
)
