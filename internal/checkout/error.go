package checkout

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// -- Preconditions --
	ErrNotAuthenticated = errors.New("you need to be logged in to submit order")
	ErrMissingAddress   = errors.New("shipping address is required")
	ErrEmptyCart        = errors.New("cart is empty")

	// -- Operation failures --
	ErrStockCheckFailed = errors.New("failed to check product stock")
	ErrCheckoutFailed   = errors.New("checkout failed")
)

// Shortage is one cart line whose requested quantity exceeds the
// freshly fetched availability.
type Shortage struct {
	ProductID uint
	Name      string
	Requested int
	Available int
}

// InsufficientStockError aggregates every offending line into one
// report; checkout aborts before any order is created.
type InsufficientStockError struct {
	Shortages []Shortage
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("%s (requested: %d, available: %d)", s.Name, s.Requested, s.Available))
	}
	return "insufficient stock for: " + strings.Join(parts, ", ")
}
