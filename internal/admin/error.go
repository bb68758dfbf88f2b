package admin

import "errors"

var (
	// -- Validation & Input --
	ErrNameRequired  = errors.New("product name is required")
	ErrNegativePrice = errors.New("product price must not be negative")
	ErrNegativeStock = errors.New("product stock must not be negative")
	ErrInvalidStatus = errors.New("unknown order status")
	ErrEmptyReply    = errors.New("reply message is empty")
)
