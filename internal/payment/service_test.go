package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Get(ctx context.Context, path string, out any) error {
	args := m.Called(ctx, path, out)
	if fn, ok := args.Get(0).(func(any)); ok && fn != nil {
		fn(out)
	}
	return args.Error(1)
}

func TestService_GetPaymentStatus(t *testing.T) {
	ctx := context.Background()
	api := new(MockTransport)
	svc := NewService(api)

	api.On("Get", ctx, "/payment/status/42", mock.Anything).Return(func(out any) {
		*out.(*PaymentStatus) = PaymentStatus{Status: "CONFIRMED", IsConfirmed: true}
	}, nil).Once()

	status, err := svc.GetPaymentStatus(ctx, "42")

	assert.NoError(t, err)
	assert.True(t, status.IsConfirmed)
	api.AssertExpectations(t)
}

func TestService_ConfirmPayment(t *testing.T) {
	ctx := context.Background()
	api := new(MockTransport)
	svc := NewService(api)

	api.On("Get", ctx, "/payment/success?PayerID=PB-9&orderId=42&paymentId=PAY-1", mock.Anything).
		Return(func(out any) {
			*out.(*ConfirmResult) = ConfirmResult{Success: true}
		}, nil).Once()

	result, err := svc.ConfirmPayment(ctx, "PAY-1", "PB-9", "42")

	assert.NoError(t, err)
	assert.True(t, result.Success)
	api.AssertExpectations(t)
}
