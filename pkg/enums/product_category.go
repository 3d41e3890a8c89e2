package enums

import "fmt"

// ProductCategory groups storefront products the way the shop pages do.
type ProductCategory string

const (
	CategoryWrapping ProductCategory = "wrapping"
	CategoryRibbons  ProductCategory = "ribbons"
	CategoryCards    ProductCategory = "cards"
)

var validProductCategories = []ProductCategory{
	CategoryWrapping,
	CategoryRibbons,
	CategoryCards,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the category is recognized.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts a raw string into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
