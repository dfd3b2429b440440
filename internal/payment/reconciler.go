// Reconciliation runs when the browser returns from the external
// payment redirect and decides, from URL parameters and authoritative
// backend state, which of the terminal outcomes the order landed in.
package payment

import (
	"context"
	"strconv"

	"webshop-client/internal/cart"
	"webshop-client/internal/logger"
	"webshop-client/internal/order"
	"webshop-client/internal/session"

	"go.uber.org/zap"
)

type State string

const (
	StateChecking             State = "CHECKING"
	StateAwaitingConfirmation State = "AWAITING_CONFIRMATION"
	StateSuccess              State = "SUCCESS"
	StateFailure              State = "FAILURE"
)

const (
	msgMissingOrder    = "missing or invalid order information"
	msgNotConfirmed    = "order not confirmed yet, please contact support"
	msgGenericFailure  = "unexpected error while processing payment"
	literalUndefinedID = "undefined"
)

// Result is the terminal outcome of one reconciliation run. The
// "failed en route but a final status read shows CONFIRMED" case ends
// in StateSuccess too; it renders identically.
type Result struct {
	State       State
	Message     string
	OrderStatus string
	Order       *order.Order
}

type renewer interface {
	RefreshSession(ctx context.Context) (*session.Session, error)
}

type Reconciler struct {
	sessions *session.Store
	auth     renewer
	orders   order.Service
	payments Service
	carts    *cart.Store
}

func NewReconciler(sessions *session.Store, auth renewer, orders order.Service, payments Service, carts *cart.Store) *Reconciler {
	return &Reconciler{sessions: sessions, auth: auth, orders: orders, payments: payments, carts: carts}
}

// Reconcile executes the confirmation sequence strictly in order.
// Order-detail fetch and the session renewal are best-effort; the
// status fetch, the gateway confirmation, and the last-resort status
// re-read decide the terminal state.
func (r *Reconciler) Reconcile(ctx context.Context, params ReturnParams) Result {
	log := logger.FromCtx(ctx).With(zap.String("order_id", params.OrderID))
	result := Result{State: StateChecking}

	// 1. The order id is the one non-negotiable input. Its absence,
	// or the literal string "undefined" leaking out of a templated
	// redirect URL, is unrecoverable and costs no network calls.
	if params.OrderID == "" || params.OrderID == literalUndefinedID {
		result.State = StateFailure
		result.Message = msgMissingOrder
		return result
	}
	orderID, err := strconv.ParseUint(params.OrderID, 10, 64)
	if err != nil {
		result.State = StateFailure
		result.Message = msgMissingOrder
		return result
	}

	// 2. Order detail, for display only; failure is logged, not fatal.
	if detail, err := r.orders.GetOrder(ctx, uint(orderID)); err != nil {
		log.Warn("failed to fetch order detail", zap.Error(err))
	} else {
		result.Order = detail
	}

	// 3. Authoritative status; confirmed short-circuits everything.
	if status, err := r.payments.GetPaymentStatus(ctx, params.OrderID); err != nil {
		log.Warn("failed to fetch payment status", zap.Error(err))
	} else {
		result.OrderStatus = status.Status
		if status.IsConfirmed {
			return r.succeed(log, result)
		}
	}
	result.State = StateAwaitingConfirmation

	// 4. Without gateway parameters there is nothing left to confirm.
	if params.PaymentID == "" || params.PayerID == "" {
		result.State = StateFailure
		result.Message = msgNotConfirmed
		return result
	}

	// 5. The redirect may have crossed a reload that dropped the
	// ambient auth state; one tolerated renewal attempt. If auth is
	// truly required the confirmation call fails on its own.
	if !r.sessions.IsAuthenticated() {
		if _, err := r.auth.RefreshSession(ctx); err != nil {
			log.Warn("session renewal before confirmation failed", zap.Error(err))
		}
	}

	// 6. Gateway confirmation.
	confirm, err := r.payments.ConfirmPayment(ctx, params.PaymentID, params.PayerID, params.OrderID)
	if err != nil {
		return r.recover(ctx, log, result, params.OrderID, err)
	}
	if confirm.Success {
		return r.succeed(log, result)
	}

	result.State = StateFailure
	result.Message = confirm.Message
	if result.Message == "" {
		result.Message = msgGenericFailure
	}
	return result
}

// recover handles an errored confirmation call: a late webhook may
// have already resolved the order, so re-read the status once before
// giving up.
func (r *Reconciler) recover(ctx context.Context, log *zap.Logger, result Result, orderID string, cause error) Result {
	log.Warn("payment confirmation errored, re-reading status", zap.Error(cause))

	if status, err := r.payments.GetPaymentStatus(ctx, orderID); err != nil {
		log.Warn("status re-read after error failed", zap.Error(err))
	} else {
		result.OrderStatus = status.Status
		if status.IsConfirmed {
			return r.succeed(log, result)
		}
	}

	result.State = StateFailure
	result.Message = cause.Error()
	if result.Message == "" {
		result.Message = msgGenericFailure
	}
	return result
}

func (r *Reconciler) succeed(log *zap.Logger, result Result) Result {
	result.State = StateSuccess
	result.Message = ""
	// The cart was deliberately kept across the external redirect;
	// a confirmed order is the point where it finally empties.
	if err := r.carts.Clear(); err != nil {
		log.Warn("failed to clear cart after confirmed payment", zap.Error(err))
	}
	log.Info("order confirmed")
	return result
}
