package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict on insert.
	ErrAlreadyExists = errors.New("already exists")
	// ErrEmptyCart rejects a checkout attempted with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrStockLimitExceeded rejects a cart mutation that would take a line
	// past the item's available stock. The cart is left unchanged.
	ErrStockLimitExceeded = errors.New("stock limit exceeded")
	// ErrInvalidCredentials covers both unknown users and bad passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError marks client input a service refused. Handlers map it to
// a 400 without inspecting the message.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Invalid builds a ValidationError.
func Invalid(msg string) error {
	return &ValidationError{msg: msg}
}

// InsufficientStockError is the commit-time counterpart of
// ErrStockLimitExceeded: the store rejected a decrement because another sale
// got to the stock first. The whole checkout rolls back.
type InsufficientStockError struct {
	ProductID string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s", e.ProductID)
}
