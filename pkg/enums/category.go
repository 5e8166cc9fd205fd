package enums

import "fmt"

// ProductCategory represents the canonical catalog categories.
type ProductCategory string

const (
	ProductCategorySolarPanels ProductCategory = "Solar Panels"
	ProductCategoryBatteries   ProductCategory = "Batteries"
	ProductCategoryInverters   ProductCategory = "Inverters"
	ProductCategoryControllers ProductCategory = "Controllers"
	ProductCategoryKits        ProductCategory = "Kits"
	ProductCategoryLighting    ProductCategory = "Lighting"
)

// ProductCategoryAll is the filter wildcard. It is a valid filter value but
// never a stored category.
const ProductCategoryAll ProductCategory = "All"

var validProductCategories = []ProductCategory{
	ProductCategorySolarPanels,
	ProductCategoryBatteries,
	ProductCategoryInverters,
	ProductCategoryControllers,
	ProductCategoryKits,
	ProductCategoryLighting,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known stored ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// IsValidFilter reports whether the value may be used as a filter selection.
func (c ProductCategory) IsValidFilter() bool {
	return c == ProductCategoryAll || c.IsValid()
}

// ParseProductCategory converts raw input into a stored ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}

// FilterCategories lists the selectable filter values, wildcard first.
func FilterCategories() []ProductCategory {
	out := make([]ProductCategory, 0, len(validProductCategories)+1)
	out = append(out, ProductCategoryAll)
	out = append(out, validProductCategories...)
	return out
}
