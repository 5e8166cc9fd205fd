package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sunlinkenergy/sunlink-backend/internal/store"
)

type stubCart struct {
	products map[string]store.Product
	items    []store.CartLine
	count    int
	total    decimal.Decimal

	added   []int
	updated map[int]int
	removed []int
	cleared bool
}

func (s *stubCart) ProductByID(id string) (store.Product, bool) {
	product, ok := s.products[id]
	return product, ok
}

func (s *stubCart) AddToCart(ctx context.Context, product store.Product) {
	s.added = append(s.added, product.ID)
}

func (s *stubCart) UpdateCartQuantity(ctx context.Context, productID, quantity int) {
	if s.updated == nil {
		s.updated = map[int]int{}
	}
	s.updated[productID] = quantity
}

func (s *stubCart) RemoveFromCart(ctx context.Context, productID int) {
	s.removed = append(s.removed, productID)
}

func (s *stubCart) ClearCart(ctx context.Context) { s.cleared = true }

func (s *stubCart) CartItems() []store.CartLine { return s.items }
func (s *stubCart) CartCount() int              { return s.count }
func (s *stubCart) CartTotal() decimal.Decimal  { return s.total }

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var envelope struct {
		Data cartResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func TestGetCart(t *testing.T) {
	product := panelProduct()
	svc := &stubCart{
		items: []store.CartLine{{Product: product, Quantity: 2}},
		count: 2,
		total: decimal.NewFromFloat(599.98),
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	GetCart(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	cart := decodeCart(t, rec)
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items %v", cart.Items)
	}
	if cart.Count != 2 || !cart.Total.Equal(decimal.NewFromFloat(599.98)) {
		t.Fatalf("unexpected aggregates count=%d total=%s", cart.Count, cart.Total)
	}
}

func TestAddCartItem(t *testing.T) {
	product := panelProduct()

	t.Run("success", func(t *testing.T) {
		svc := &stubCart{products: map[string]store.Product{"1": product}}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"productId":1}`))
		rec := httptest.NewRecorder()
		AddCartItem(svc, nil).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", rec.Code)
		}
		if len(svc.added) != 1 || svc.added[0] != 1 {
			t.Fatalf("expected product 1 added, got %v", svc.added)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		svc := &stubCart{}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"productId":42}`))
		rec := httptest.NewRecorder()
		AddCartItem(svc, nil).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 got %d", rec.Code)
		}
		if len(svc.added) != 0 {
			t.Fatalf("nothing should be added, got %v", svc.added)
		}
	})

	t.Run("missing product id", func(t *testing.T) {
		svc := &stubCart{}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		AddCartItem(svc, nil).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 got %d", rec.Code)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		svc := &stubCart{}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"productId":1,"qty":3}`))
		rec := httptest.NewRecorder()
		AddCartItem(svc, nil).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 got %d", rec.Code)
		}
	})
}

func TestUpdateCartItem(t *testing.T) {
	t.Run("sets quantity", func(t *testing.T) {
		svc := &stubCart{}
		req := withProductID(httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"quantity":3}`)), "1")
		rec := httptest.NewRecorder()
		UpdateCartItem(svc, nil).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", rec.Code)
		}
		if svc.updated[1] != 3 {
			t.Fatalf("expected quantity 3, got %v", svc.updated)
		}
	})

	t.Run("explicit zero passes through", func(t *testing.T) {
		svc := &stubCart{}
		req := withProductID(httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"quantity":0}`)), "1")
		rec := httptest.NewRecorder()
		UpdateCartItem(svc, nil).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", rec.Code)
		}
		if got, ok := svc.updated[1]; !ok || got != 0 {
			t.Fatalf("expected explicit zero, got %v", svc.updated)
		}
	})

	t.Run("missing quantity", func(t *testing.T) {
		svc := &stubCart{}
		req := withProductID(httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{}`)), "1")
		rec := httptest.NewRecorder()
		UpdateCartItem(svc, nil).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 got %d", rec.Code)
		}
	})

	t.Run("invalid product id", func(t *testing.T) {
		svc := &stubCart{}
		req := withProductID(httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"quantity":1}`)), "abc")
		rec := httptest.NewRecorder()
		UpdateCartItem(svc, nil).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 got %d", rec.Code)
		}
	})
}

func TestRemoveCartItem(t *testing.T) {
	svc := &stubCart{}
	req := withProductID(httptest.NewRequest(http.MethodDelete, "/", nil), "7")
	rec := httptest.NewRecorder()
	RemoveCartItem(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if len(svc.removed) != 1 || svc.removed[0] != 7 {
		t.Fatalf("expected product 7 removed, got %v", svc.removed)
	}
}

func TestClearCart(t *testing.T) {
	svc := &stubCart{}
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	ClearCart(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", rec.Code)
	}
	if !svc.cleared {
		t.Fatal("expected cart to be cleared")
	}
}

func TestAddCartItemUsesNumericLookup(t *testing.T) {
	product := panelProduct()
	product.ID = 12
	svc := &stubCart{products: map[string]store.Product{strconv.Itoa(product.ID): product}}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"productId":12}`))
	rec := httptest.NewRecorder()
	AddCartItem(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if len(svc.added) != 1 || svc.added[0] != 12 {
		t.Fatalf("expected product 12 added, got %v", svc.added)
	}
}
