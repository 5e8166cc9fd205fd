package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sunlinkenergy/sunlink-backend/pkg/enums"
)

// Product is a catalog entry. IDs are assigned at creation and never change.
type Product struct {
	ID             int                   `json:"id"`
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	Price          decimal.Decimal       `json:"price"`
	Image          string                `json:"image"`
	Category       enums.ProductCategory `json:"category"`
	Specifications []string              `json:"specifications"`
	InStock        bool                  `json:"inStock"`
	Featured       bool                  `json:"featured"`
}

// CartLine pairs a product snapshot with a quantity. At most one line exists
// per product id, and quantity is at least 1 while the line is present.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// CheckoutRecord is the immutable snapshot taken when a cart is handed off.
type CheckoutRecord struct {
	ID        int64           `json:"id"`
	Items     []CartLine      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewProduct carries the admin-supplied fields for product creation. The
// store assigns the id and forces featured/inStock regardless of input.
type NewProduct struct {
	Name           string
	Description    string
	Price          decimal.Decimal
	Image          string
	Category       enums.ProductCategory
	Specifications []string
}

// ProductPatch holds optional product mutations. There is deliberately no ID
// field: the id is immutable by construction.
type ProductPatch struct {
	Name           *string
	Description    *string
	Price          *decimal.Decimal
	Image          *string
	Category       *enums.ProductCategory
	Specifications *[]string
	InStock        *bool
	Featured       *bool
}

// Snapshot is the persisted subset of store state. Filter state is excluded
// on purpose and always rehydrates to its defaults.
type Snapshot struct {
	CartItems       []CartLine       `json:"cartItems"`
	CartCount       int              `json:"cartCount"`
	CartTotal       decimal.Decimal  `json:"cartTotal"`
	Products        []Product        `json:"products"`
	CheckoutHistory []CheckoutRecord `json:"checkoutHistory"`
}

func cloneProduct(p Product) Product {
	out := p
	out.Specifications = append([]string(nil), p.Specifications...)
	return out
}

func cloneProducts(products []Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = cloneProduct(p)
	}
	return out
}

func cloneLines(lines []CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	for i, line := range lines {
		out[i] = CartLine{Product: cloneProduct(line.Product), Quantity: line.Quantity}
	}
	return out
}

func cloneHistory(records []CheckoutRecord) []CheckoutRecord {
	out := make([]CheckoutRecord, len(records))
	for i, record := range records {
		out[i] = CheckoutRecord{
			ID:        record.ID,
			Items:     cloneLines(record.Items),
			Total:     record.Total,
			Timestamp: record.Timestamp,
		}
	}
	return out
}

func normalizeSpecifications(specs []string) []string {
	out := make([]string, 0, len(specs))
	for _, spec := range specs {
		if spec == "" {
			continue
		}
		out = append(out, spec)
	}
	return out
}
