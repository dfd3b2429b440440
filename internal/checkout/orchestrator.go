// Package checkout drives order submission: stock validation against
// the current cart, one atomic submit, and the branch between the
// cash success path and the external payment redirect.
package checkout

import (
	"context"
	"errors"
	"strings"

	"webshop-client/internal/cart"
	"webshop-client/internal/gateway"
	"webshop-client/internal/logger"
	"webshop-client/internal/order"
	"webshop-client/internal/product"
	"webshop-client/internal/session"

	"go.uber.org/zap"
)

type transport interface {
	Post(ctx context.Context, path string, body, out any) error
}

// Request is the atomic checkout submission body.
type Request struct {
	PaymentMethod   order.PaymentMethod `json:"paymentMethod"`
	ShippingAddress string              `json:"shippingAddress"`
	CartItems       []cart.CartLine     `json:"cartItems"`
}

type response struct {
	Success     bool   `json:"success"`
	OrderID     uint   `json:"orderId"`
	ApprovalURL string `json:"approvalUrl"`
}

// Outcome distinguishes the two submission results by shape: an
// approval URL means the browser must be sent to the external payment
// page (cart kept), an order id means the cash path succeeded (cart
// cleared) and the shopper proceeds to the shared payment-result view.
type Outcome struct {
	RedirectURL string
	OrderID     uint
}

type Orchestrator struct {
	api      transport
	sessions *session.Store
	carts    *cart.Store
	products product.Service
}

func NewOrchestrator(api transport, sessions *session.Store, carts *cart.Store, products product.Service) *Orchestrator {
	return &Orchestrator{api: api, sessions: sessions, carts: carts, products: products}
}

// Checkout validates stock for every cart line and submits the order.
// The stock check is advisory but blocking: the authoritative
// decrement still happens server-side at submission, so a race
// between check and submit surfaces as a server rejection.
func (o *Orchestrator) Checkout(ctx context.Context, method order.PaymentMethod, shippingAddress string) (*Outcome, error) {
	log := logger.FromCtx(ctx).With(zap.String("payment_method", string(method)))

	// 1. Preconditions: authenticated caller, non-empty address.
	if !o.sessions.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	if strings.TrimSpace(shippingAddress) == "" {
		return nil, ErrMissingAddress
	}

	current, err := o.carts.Get()
	if err != nil {
		return nil, err
	}
	if current.IsEmpty() {
		return nil, ErrEmptyCart
	}

	// 2. Stock validation, fresh reads, all offenders reported at once.
	var shortages []Shortage
	for _, line := range current.Lines {
		p, err := o.products.GetProduct(ctx, line.ProductID)
		if err != nil {
			log.Warn("stock check failed", zap.Uint("product_id", line.ProductID), zap.Error(err))
			return nil, ErrStockCheckFailed
		}
		if line.Quantity > p.Stock {
			shortages = append(shortages, Shortage{
				ProductID: line.ProductID,
				Name:      line.Name,
				Requested: line.Quantity,
				Available: p.Stock,
			})
		}
	}
	if len(shortages) > 0 {
		return nil, &InsufficientStockError{Shortages: shortages}
	}

	// 3. One atomic submission.
	req := Request{
		PaymentMethod:   method,
		ShippingAddress: shippingAddress,
		CartItems:       current.Lines,
	}

	var resp response
	if err := o.api.Post(ctx, "/cart/checkout", req, &resp); err != nil {
		if errors.Is(err, gateway.ErrSessionExpired) {
			return nil, ErrNotAuthenticated
		}
		log.Warn("checkout submission rejected", zap.Error(err))
		return nil, ErrCheckoutFailed
	}

	// 4. Branch on response shape, not HTTP status.
	if resp.ApprovalURL != "" {
		// Cart stays until the confirmed return from the gateway so
		// an abandoned external page does not lose the order context.
		log.Info("redirecting to external payment page", zap.Uint("order_id", resp.OrderID))
		return &Outcome{RedirectURL: resp.ApprovalURL, OrderID: resp.OrderID}, nil
	}

	if resp.Success {
		if err := o.carts.Clear(); err != nil {
			log.Warn("failed to clear cart after checkout", zap.Error(err))
		}
		log.Info("checkout completed", zap.Uint("order_id", resp.OrderID))
		return &Outcome{OrderID: resp.OrderID}, nil
	}

	return nil, ErrCheckoutFailed
}
