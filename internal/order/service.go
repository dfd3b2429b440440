package order

import (
	"context"
	"fmt"
	"time"
)

type transport interface {
	Get(ctx context.Context, path string, out any) error
}

type Service interface {
	GetOrder(ctx context.Context, id uint) (*Order, error)
	GetMyOrders(ctx context.Context) ([]Order, error)
	GetAllOrders(ctx context.Context) ([]Order, error)
}

type service struct {
	api transport
}

func NewService(api transport) Service {
	return &service{api: api}
}

func (s *service) GetOrder(ctx context.Context, id uint) (*Order, error) {
	var o Order
	if err := s.api.Get(ctx, fmt.Sprintf("/orders/%d", id), &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *service) GetMyOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := s.api.Get(ctx, "/orders/user/current", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetAllOrders is the privileged listing; the backend enforces the
// ADMIN role.
func (s *service) GetAllOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := s.api.Get(ctx, "/orders/all", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// FormatPrice renders a price the way the storefront displays it.
func FormatPrice(price float64) string {
	return fmt.Sprintf("%.2f €", price)
}

// FormatDate renders the backend's order timestamp for display,
// falling back to the raw value when it does not parse.
func FormatDate(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format("02.01.2006 15:04")
}
