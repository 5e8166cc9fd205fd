package controllers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sunlinkenergy/sunlink-backend/api/responses"
	"github.com/sunlinkenergy/sunlink-backend/internal/store"
	"github.com/sunlinkenergy/sunlink-backend/pkg/enums"
	pkgerrors "github.com/sunlinkenergy/sunlink-backend/pkg/errors"
	"github.com/sunlinkenergy/sunlink-backend/pkg/logger"
	"github.com/sunlinkenergy/sunlink-backend/pkg/money"
)

// CatalogService is the slice of the store the browsing surface needs.
type CatalogService interface {
	SetSearchQuery(query string)
	SetSelectedCategory(category enums.ProductCategory)
	SearchQuery() string
	SelectedCategory() enums.ProductCategory
	FilteredProducts() []store.Product
	FeaturedProducts() []store.Product
	ProductByID(id string) (store.Product, bool)
}

type productListResponse struct {
	Products         []store.Product       `json:"products"`
	SearchQuery      string                `json:"searchQuery"`
	SelectedCategory enums.ProductCategory `json:"selectedCategory"`
}

// ListProducts returns the filtered catalog. Query params update the shared
// filter state before the read, so a bare request reuses the last filters.
func ListProducts(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		query := r.URL.Query()
		if query.Has("q") {
			svc.SetSearchQuery(query.Get("q"))
		}
		if query.Has("category") {
			svc.SetSelectedCategory(enums.ProductCategory(query.Get("category")))
		}

		responses.WriteSuccess(w, productListResponse{
			Products:         svc.FilteredProducts(),
			SearchQuery:      svc.SearchQuery(),
			SelectedCategory: svc.SelectedCategory(),
		})
	}
}

// FeaturedProducts returns the homepage highlight selection.
func FeaturedProducts(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.FeaturedProducts())
	}
}

// GetProduct returns a single product or a not-found envelope.
func GetProduct(svc CatalogService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		product, ok := svc.ProductByID(chi.URLParam(r, "productId"))
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, product)
	}
}

type shareResponse struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// ShareProduct returns the share text and canonical link for a product.
func ShareProduct(svc CatalogService, baseURL string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		product, ok := svc.ProductByID(chi.URLParam(r, "productId"))
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		responses.WriteSuccess(w, shareResponse{
			Title: product.Name,
			Text: fmt.Sprintf("Check out this amazing solar product: %s - %s",
				product.Name, money.FormatUSD(product.Price)),
			URL: fmt.Sprintf("%s/product/%d", baseURL, product.ID),
		})
	}
}

// ListCategories returns the selectable filter values, wildcard first.
func ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, enums.FilterCategories())
	}
}
