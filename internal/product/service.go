package product

import (
	"context"
	"fmt"
)

type transport interface {
	Get(ctx context.Context, path string, out any) error
}

// Service fetches authoritative product state from the backend.
// Checkout uses it for the pre-submission stock check; the stock read
// is always fresh, never from the cart snapshot.
type Service interface {
	GetProduct(ctx context.Context, id uint) (*Product, error)
}

type service struct {
	api transport
}

func NewService(api transport) Service {
	return &service{api: api}
}

func (s *service) GetProduct(ctx context.Context, id uint) (*Product, error) {
	var p Product
	if err := s.api.Get(ctx, fmt.Sprintf("/products/%d", id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}
