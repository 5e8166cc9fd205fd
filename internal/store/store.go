// Package store is the storefront's single state container: catalog, cart,
// filter state and checkout history. Views never hold their own copies; they
// read derived data and mutate through the operations here. Derived cart
// aggregates are recomputed on every mutation so they can never drift from
// the line sequence.
package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sunlinkenergy/sunlink-backend/pkg/enums"
	"github.com/sunlinkenergy/sunlink-backend/pkg/logger"
)

// Persister saves and restores the durable subset of store state. Saves are
// best-effort: a failure is logged and never surfaced to callers.
type Persister interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
}

// Options configures a Store.
type Options struct {
	Persister Persister
	Logger    *logger.Logger
	Now       func() time.Time
}

// Store owns all storefront state. Every operation is serialized behind one
// mutex, so each runs start-to-finish without interleaving, matching the
// original single-UI-thread model.
type Store struct {
	mu sync.Mutex

	products        []Product
	cartItems       []CartLine
	cartCount       int
	cartTotal       decimal.Decimal
	checkoutHistory []CheckoutRecord

	searchQuery      string
	selectedCategory enums.ProductCategory

	persister Persister
	logg      *logger.Logger
	now       func() time.Time
}

// New builds a Store, rehydrating from a persisted snapshot when one exists
// and falling back to the seed catalog otherwise. Filter state always starts
// at its defaults; it is never part of the snapshot.
func New(ctx context.Context, opts Options) (*Store, error) {
	s := &Store{
		cartTotal:        decimal.Zero,
		selectedCategory: enums.ProductCategoryAll,
		persister:        opts.Persister,
		logg:             opts.Logger,
		now:              opts.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}

	if s.persister != nil {
		snap, err := s.persister.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading snapshot: %w", err)
		}
		if snap != nil {
			s.products = cloneProducts(snap.Products)
			s.cartItems = cloneLines(snap.CartItems)
			s.cartCount = snap.CartCount
			s.cartTotal = snap.CartTotal
			s.checkoutHistory = cloneHistory(snap.CheckoutHistory)
			return s, nil
		}
	}

	s.products = seedProducts()
	return s, nil
}

// AddToCart merges the product into the cart: an existing line gains one
// unit, otherwise a new line with quantity 1 snapshots the product's current
// fields. Stock is advisory only; out-of-stock products are accepted.
func (s *Store) AddToCart(ctx context.Context, product Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.cartItems {
		if s.cartItems[i].ID == product.ID {
			s.cartItems[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		s.cartItems = append(s.cartItems, CartLine{Product: cloneProduct(product), Quantity: 1})
	}

	s.recomputeCartLocked()
	s.persistLocked(ctx)
}

// RemoveFromCart drops the matching line. Removing an absent id is a no-op.
func (s *Store) RemoveFromCart(ctx context.Context, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.cartItems[:0]
	for _, line := range s.cartItems {
		if line.ID != productID {
			filtered = append(filtered, line)
		}
	}
	s.cartItems = filtered

	s.recomputeCartLocked()
	s.persistLocked(ctx)
}

// UpdateCartQuantity sets the line's quantity to max(0, quantity); zero
// drops the line. Invalid quantities are clamped, never rejected.
func (s *Store) UpdateCartQuantity(ctx context.Context, productID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 0 {
		quantity = 0
	}

	filtered := s.cartItems[:0]
	for _, line := range s.cartItems {
		if line.ID == productID {
			line.Quantity = quantity
		}
		if line.Quantity > 0 {
			filtered = append(filtered, line)
		}
	}
	s.cartItems = filtered

	s.recomputeCartLocked()
	s.persistLocked(ctx)
}

// ClearCart empties the cart and resets the derived aggregates.
func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cartItems = nil
	s.recomputeCartLocked()
	s.persistLocked(ctx)
}

// RecordCheckout prepends an immutable snapshot of the handed-off cart to
// the history. It never touches the cart itself; the checkout flow clears
// the cart with a separate call after recording.
func (s *Store) RecordCheckout(ctx context.Context, items []CartLine, total decimal.Decimal) CheckoutRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := CheckoutRecord{
		ID:        s.now().UnixMilli(),
		Items:     cloneLines(items),
		Total:     total,
		Timestamp: s.now().UTC(),
	}
	s.checkoutHistory = append([]CheckoutRecord{record}, s.checkoutHistory...)

	s.persistLocked(ctx)
	return record
}

// SetSearchQuery replaces the query verbatim; no validation.
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}

// SetSelectedCategory replaces the selection verbatim; callers validate.
func (s *Store) SetSelectedCategory(category enums.ProductCategory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCategory = category
}

func (s *Store) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

func (s *Store) SelectedCategory() enums.ProductCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedCategory
}

// FilteredProducts returns products whose name or description contains the
// search query (case-insensitive) and whose category matches the selection,
// with "All" matching everything. Recomputed on every call; no caching.
func (s *Store) FilteredProducts() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := strings.ToLower(s.searchQuery)
	var out []Product
	for _, p := range s.products {
		matchesSearch := strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query)
		matchesCategory := s.selectedCategory == enums.ProductCategoryAll || p.Category == s.selectedCategory
		if matchesSearch && matchesCategory {
			out = append(out, cloneProduct(p))
		}
	}
	return out
}

// FeaturedProducts returns featured products in catalog order.
func (s *Store) FeaturedProducts() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Product
	for _, p := range s.products {
		if p.Featured {
			out = append(out, cloneProduct(p))
		}
	}
	return out
}

// ProductByID parses the raw id and returns the matching product, or false
// when the id does not parse or no product matches.
func (s *Store) ProductByID(id string) (Product, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return Product{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == parsed {
			return cloneProduct(p), true
		}
	}
	return Product{}, false
}

// Products returns the full catalog in order.
func (s *Store) Products() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProducts(s.products)
}

// AddProduct appends a catalog entry with id max(existing)+1, or 1 for an
// empty catalog. Featured is forced off and inStock on regardless of input,
// and blank specification entries are dropped.
func (s *Store) AddProduct(ctx context.Context, input NewProduct) Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, p := range s.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	product := Product{
		ID:             maxID + 1,
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		Image:          input.Image,
		Category:       input.Category,
		Specifications: normalizeSpecifications(input.Specifications),
		InStock:        true,
		Featured:       false,
	}
	s.products = append(s.products, product)

	s.persistLocked(ctx)
	return cloneProduct(product)
}

// UpdateProduct merges the patch onto the matching product. The id is never
// altered. Returns false when no product matches.
func (s *Store) UpdateProduct(ctx context.Context, id int, patch ProductPatch) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Image != nil {
			p.Image = *patch.Image
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Specifications != nil {
			p.Specifications = normalizeSpecifications(*patch.Specifications)
		}
		if patch.InStock != nil {
			p.InStock = *patch.InStock
		}
		if patch.Featured != nil {
			p.Featured = *patch.Featured
		}

		s.persistLocked(ctx)
		return cloneProduct(*p), true
	}
	return Product{}, false
}

// DeleteProduct removes the matching product. Cart lines and checkout
// records carry full snapshots, so deletion never cascades into them.
func (s *Store) DeleteProduct(ctx context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persistLocked(ctx)
			return true
		}
	}
	return false
}

// CartItems returns the cart lines in insertion order.
func (s *Store) CartItems() []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLines(s.cartItems)
}

func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartCount
}

func (s *Store) CartTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartTotal
}

// History returns checkout records, most recent first.
func (s *Store) History() []CheckoutRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneHistory(s.checkoutHistory)
}

func (s *Store) recomputeCartLocked() {
	count := 0
	total := decimal.Zero
	for _, line := range s.cartItems {
		count += line.Quantity
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	s.cartCount = count
	s.cartTotal = total
}

func (s *Store) persistLocked(ctx context.Context) {
	if s.persister == nil {
		return
	}
	snap := Snapshot{
		CartItems:       cloneLines(s.cartItems),
		CartCount:       s.cartCount,
		CartTotal:       s.cartTotal,
		Products:        cloneProducts(s.products),
		CheckoutHistory: cloneHistory(s.checkoutHistory),
	}
	if err := s.persister.Save(ctx, snap); err != nil && s.logg != nil {
		s.logg.Error(ctx, "snapshot save failed", err)
	}
}
