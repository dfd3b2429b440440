package payment

import (
	"context"
	"net/url"
)

type transport interface {
	Get(ctx context.Context, path string, out any) error
}

type Service interface {
	GetPaymentStatus(ctx context.Context, orderID string) (*PaymentStatus, error)
	ConfirmPayment(ctx context.Context, paymentID, payerID, orderID string) (*ConfirmResult, error)
}

type service struct {
	api transport
}

func NewService(api transport) Service {
	return &service{api: api}
}

func (s *service) GetPaymentStatus(ctx context.Context, orderID string) (*PaymentStatus, error) {
	var status PaymentStatus
	if err := s.api.Get(ctx, "/payment/status/"+url.PathEscape(orderID), &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (s *service) ConfirmPayment(ctx context.Context, paymentID, payerID, orderID string) (*ConfirmResult, error) {
	q := url.Values{}
	q.Set("paymentId", paymentID)
	q.Set("PayerID", payerID)
	q.Set("orderId", orderID)

	var result ConfirmResult
	if err := s.api.Get(ctx, "/payment/success?"+q.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
