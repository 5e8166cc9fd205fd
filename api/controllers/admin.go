package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sunlinkenergy/sunlink-backend/api/responses"
	"github.com/sunlinkenergy/sunlink-backend/api/validators"
	"github.com/sunlinkenergy/sunlink-backend/internal/store"
	"github.com/sunlinkenergy/sunlink-backend/pkg/enums"
	pkgerrors "github.com/sunlinkenergy/sunlink-backend/pkg/errors"
	"github.com/sunlinkenergy/sunlink-backend/pkg/logger"
)

// AdminService is the slice of the store the admin panel needs.
type AdminService interface {
	Products() []store.Product
	AddProduct(ctx context.Context, input store.NewProduct) store.Product
	UpdateProduct(ctx context.Context, id int, patch store.ProductPatch) (store.Product, bool)
	DeleteProduct(ctx context.Context, id int) bool
	History() []store.CheckoutRecord
}

type createProductRequest struct {
	Name           string          `json:"name" validate:"required"`
	Description    string          `json:"description" validate:"required"`
	Price          decimal.Decimal `json:"price"`
	Image          string          `json:"image" validate:"omitempty,url"`
	Category       string          `json:"category" validate:"required"`
	Specifications []string        `json:"specifications"`

	// Accepted so admin forms can post them, but the store forces
	// featured off and inStock on for every new product.
	InStock  *bool `json:"inStock,omitempty"`
	Featured *bool `json:"featured,omitempty"`
}

func (r createProductRequest) toInput() (store.NewProduct, error) {
	category, err := enums.ParseProductCategory(strings.TrimSpace(r.Category))
	if err != nil {
		return store.NewProduct{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
	}
	if r.Price.IsNegative() {
		return store.NewProduct{}, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}
	return store.NewProduct{
		Name:           r.Name,
		Description:    r.Description,
		Price:          r.Price,
		Image:          r.Image,
		Category:       category,
		Specifications: r.Specifications,
	}, nil
}

// AdminCreateProduct appends a new catalog entry.
func AdminCreateProduct(svc AdminService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product := svc.AddProduct(r.Context(), input)

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithProductID(ctx, product.ID)
			logg.Info(ctx, "product created")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

type updateProductRequest struct {
	Name           *string          `json:"name,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Image          *string          `json:"image,omitempty" validate:"omitempty,url"`
	Category       *string          `json:"category,omitempty"`
	Specifications *[]string        `json:"specifications,omitempty"`
	InStock        *bool            `json:"inStock,omitempty"`
	Featured       *bool            `json:"featured,omitempty"`
}

func (r updateProductRequest) toPatch() (store.ProductPatch, error) {
	patch := store.ProductPatch{
		Name:           r.Name,
		Description:    r.Description,
		Price:          r.Price,
		Image:          r.Image,
		Specifications: r.Specifications,
		InStock:        r.InStock,
		Featured:       r.Featured,
	}
	if r.Category != nil {
		category, err := enums.ParseProductCategory(strings.TrimSpace(*r.Category))
		if err != nil {
			return store.ProductPatch{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
		}
		patch.Category = &category
	}
	if r.Price != nil && r.Price.IsNegative() {
		return store.ProductPatch{}, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}
	return patch, nil
}

// AdminUpdateProduct merges a partial update onto an existing product.
func AdminUpdateProduct(svc AdminService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		id, err := strconv.Atoi(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		patch, err := payload.toPatch()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, ok := svc.UpdateProduct(r.Context(), id, patch)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// AdminDeleteProduct removes a catalog entry. Cart lines and checkout
// history keep their snapshots of deleted products.
func AdminDeleteProduct(svc AdminService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		id, err := strconv.Atoi(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		if !svc.DeleteProduct(r.Context(), id) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteNoContent(w)
	}
}

// AdminListProducts returns the unfiltered catalog for the admin table.
func AdminListProducts(svc AdminService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Products())
	}
}

// AdminListCheckouts returns the checkout history, most recent first.
func AdminListCheckouts(svc AdminService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.History())
	}
}

type adminStatsResponse struct {
	TotalProducts     int             `json:"totalProducts"`
	TotalCheckouts    int             `json:"totalCheckouts"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
}

// AdminStats computes aggregate stats from the current state at request
// time; nothing here is stored.
func AdminStats(svc AdminService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		history := svc.History()
		revenue := decimal.Zero
		for _, record := range history {
			revenue = revenue.Add(record.Total)
		}

		average := decimal.Zero
		if len(history) > 0 {
			average = revenue.Div(decimal.NewFromInt(int64(len(history)))).Round(2)
		}

		responses.WriteSuccess(w, adminStatsResponse{
			TotalProducts:     len(svc.Products()),
			TotalCheckouts:    len(history),
			TotalRevenue:      revenue,
			AverageOrderValue: average,
		})
	}
}
