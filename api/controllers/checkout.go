package controllers

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sunlinkenergy/sunlink-backend/api/responses"
	"github.com/sunlinkenergy/sunlink-backend/internal/store"
	pkgerrors "github.com/sunlinkenergy/sunlink-backend/pkg/errors"
	"github.com/sunlinkenergy/sunlink-backend/pkg/logger"
)

// CheckoutService is the slice of the store the checkout flow needs.
type CheckoutService interface {
	CartItems() []store.CartLine
	CartTotal() decimal.Decimal
	RecordCheckout(ctx context.Context, items []store.CartLine, total decimal.Decimal) store.CheckoutRecord
	ClearCart(ctx context.Context)
}

// CheckoutNotifier builds the outbound handoff link from a cart snapshot.
type CheckoutNotifier interface {
	CheckoutURL(items []store.CartLine, total decimal.Decimal) string
}

type checkoutResponse struct {
	CheckoutID  int64           `json:"checkoutId"`
	WhatsAppURL string          `json:"whatsappUrl"`
	Total       decimal.Decimal `json:"total"`
}

// Checkout records the cart snapshot, builds the WhatsApp link and then
// clears the cart. The record happens strictly before the clear so the
// stored snapshot always captures the pre-clear contents.
func Checkout(svc CheckoutService, wa CheckoutNotifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || wa == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		items := svc.CartItems()
		if len(items) == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty"))
			return
		}
		total := svc.CartTotal()

		record := svc.RecordCheckout(r.Context(), items, total)
		link := wa.CheckoutURL(items, total)
		svc.ClearCart(r.Context())

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithCheckoutID(ctx, record.ID)
			logg.Info(ctx, "checkout recorded")
		}

		responses.WriteSuccess(w, checkoutResponse{
			CheckoutID:  record.ID,
			WhatsAppURL: link,
			Total:       record.Total,
		})
	}
}
