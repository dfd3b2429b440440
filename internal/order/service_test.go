package order

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

func TestService_GetOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		api := new(MockTransport)
		svc := NewService(api)

		expected := Order{ID: 42, Status: StatusConfirmed, TotalPrice: 20}
		api.On("Get", ctx, "/orders/42", mock.Anything).Return(func(out any) {
			*out.(*Order) = expected
		}, nil).Once()

		o, err := svc.GetOrder(ctx, 42)

		assert.NoError(t, err)
		assert.Equal(t, expected, *o)
		api.AssertExpectations(t)
	})

	t.Run("Error", func(t *testing.T) {
		api := new(MockTransport)
		svc := NewService(api)

		api.On("Get", ctx, "/orders/42", mock.Anything).Return(nil, assert.AnError).Once()

		o, err := svc.GetOrder(ctx, 42)

		assert.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestService_Listings(t *testing.T) {
	ctx := context.Background()

	t.Run("GetMyOrders", func(t *testing.T) {
		api := new(MockTransport)
		svc := NewService(api)

		api.On("Get", ctx, "/orders/user/current", mock.Anything).Return(func(out any) {
			*out.(*[]Order) = []Order{{ID: 1}, {ID: 2}}
		}, nil).Once()

		orders, err := svc.GetMyOrders(ctx)

		assert.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("GetAllOrders", func(t *testing.T) {
		api := new(MockTransport)
		svc := NewService(api)

		api.On("Get", ctx, "/orders/all", mock.Anything).Return(func(out any) {
			*out.(*[]Order) = []Order{{ID: 1}}
		}, nil).Once()

		orders, err := svc.GetAllOrders(ctx)

		assert.NoError(t, err)
		assert.Len(t, orders, 1)
	})
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "12.50 €", FormatPrice(12.5))
	assert.Equal(t, "31.08.2026 14:05", FormatDate("2026-08-31T14:05:00Z"))
	// Unparseable dates pass through untouched
	assert.Equal(t, "soon", FormatDate("soon"))
}
