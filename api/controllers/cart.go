package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sunlinkenergy/sunlink-backend/api/responses"
	"github.com/sunlinkenergy/sunlink-backend/api/validators"
	"github.com/sunlinkenergy/sunlink-backend/internal/store"
	pkgerrors "github.com/sunlinkenergy/sunlink-backend/pkg/errors"
	"github.com/sunlinkenergy/sunlink-backend/pkg/logger"
)

// CartService is the slice of the store the cart surface needs.
type CartService interface {
	ProductByID(id string) (store.Product, bool)
	AddToCart(ctx context.Context, product store.Product)
	UpdateCartQuantity(ctx context.Context, productID, quantity int)
	RemoveFromCart(ctx context.Context, productID int)
	ClearCart(ctx context.Context)
	CartItems() []store.CartLine
	CartCount() int
	CartTotal() decimal.Decimal
}

type cartResponse struct {
	Items []store.CartLine `json:"items"`
	Count int              `json:"count"`
	Total decimal.Decimal  `json:"total"`
}

func writeCart(w http.ResponseWriter, svc CartService) {
	responses.WriteSuccess(w, cartResponse{
		Items: svc.CartItems(),
		Count: svc.CartCount(),
		Total: svc.CartTotal(),
	})
}

// GetCart returns the cart lines and derived aggregates.
func GetCart(svc CartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		writeCart(w, svc)
	}
}

type addCartItemRequest struct {
	ProductID int `json:"productId" validate:"required,min=1"`
}

// AddCartItem merges one unit of the referenced product into the cart.
func AddCartItem(svc CartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, ok := svc.ProductByID(strconv.Itoa(payload.ProductID))
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		svc.AddToCart(r.Context(), product)
		writeCart(w, svc)
	}
}

type updateCartItemRequest struct {
	// Pointer so an explicit zero passes validation; zero drops the line.
	Quantity *int `json:"quantity" validate:"required"`
}

// UpdateCartItem sets a line's quantity. Values below zero clamp to zero.
func UpdateCartItem(svc CartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.UpdateCartQuantity(r.Context(), productID, *payload.Quantity)
		writeCart(w, svc)
	}
}

// RemoveCartItem drops a line; removing an absent line is still a success.
func RemoveCartItem(svc CartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		svc.RemoveFromCart(r.Context(), productID)
		writeCart(w, svc)
	}
}

// ClearCart empties the cart.
func ClearCart(svc CartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		svc.ClearCart(r.Context())
		responses.WriteNoContent(w)
	}
}
