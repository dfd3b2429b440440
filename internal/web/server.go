// Package web hosts the local result endpoint the external payment
// gateway redirects the browser back to. It is the entry point of
// payment reconciliation; everything else stays in internal/payment.
package web

import (
	"context"
	"net/http"

	"webshop-client/internal/payment"

	"github.com/gin-gonic/gin"
)

type reconciler interface {
	Reconcile(ctx context.Context, params payment.ReturnParams) payment.Result
}

type Handler struct {
	reconciler reconciler
}

func NewHandler(rec reconciler) *Handler {
	return &Handler{reconciler: rec}
}

// NewRouter builds the result listener. The gateway's success and
// cancel URLs both land on the same result view; the cancel path just
// arrives without paymentId/PayerID.
func NewRouter(rec reconciler) *gin.Engine {
	h := NewHandler(rec)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/payment/success", h.PaymentResult)
	r.GET("/payment/cancel", h.PaymentResult)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

// PaymentResult runs reconciliation for the returning redirect and
// renders one of the terminal outcomes.
func (h *Handler) PaymentResult(c *gin.Context) {
	params := payment.ReturnParams{
		OrderID:   c.Query("orderId"),
		PaymentID: c.Query("paymentId"),
		PayerID:   c.Query("PayerID"),
	}

	result := h.reconciler.Reconcile(c.Request.Context(), params)

	body := gin.H{
		"state":       result.State,
		"orderStatus": result.OrderStatus,
	}
	if result.Order != nil {
		body["order"] = result.Order
	}

	if result.State == payment.StateSuccess {
		body["message"] = "thank you for your order, payment processed successfully"
		c.JSON(http.StatusOK, body)
		return
	}

	body["message"] = result.Message
	c.JSON(http.StatusBadGateway, body)
}
