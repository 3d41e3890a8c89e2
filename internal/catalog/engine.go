package catalog

import (
	"sort"
	"strings"

	"github.com/hadayashop/storefront-backend/pkg/enums"
	"github.com/hadayashop/storefront-backend/pkg/types"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// PriceRange bounds the current price inclusively. A nil Max means
// "at least Min".
type PriceRange struct {
	Min types.Money
	Max *types.Money
}

// Query captures everything the shop pages can filter and order by.
// The zero value matches the whole catalog in its natural order.
type Query struct {
	SearchText string
	Category   *enums.ProductCategory
	PriceRange *PriceRange
	SortKey    *enums.SortKey
}

// Filter returns the ordered subsequence of catalog satisfying every active
// predicate of the query, then applies the requested ordering. It is a pure
// function: the catalog slice is never mutated and the result is always a
// fresh slice, empty (non-nil) when nothing matches.
func Filter(catalog []Product, query Query) []Product {
	view := make([]Product, 0, len(catalog))
	for _, product := range catalog {
		if matches(product, query) {
			view = append(view, product)
		}
	}
	sortView(view, query.SortKey)
	return view
}

func matches(product Product, query Query) bool {
	return matchesSearch(product, query.SearchText) &&
		matchesCategory(product, query.Category) &&
		matchesPrice(product, query.PriceRange)
}

func matchesSearch(product Product, searchText string) bool {
	term := strings.ToLower(strings.TrimSpace(searchText))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(product.Name), term) ||
		strings.Contains(strings.ToLower(product.Description), term)
}

func matchesCategory(product Product, category *enums.ProductCategory) bool {
	if category == nil {
		return true
	}
	return product.Category == *category
}

func matchesPrice(product Product, bounds *PriceRange) bool {
	if bounds == nil {
		return true
	}
	return product.Price.Within(bounds.Min, bounds.Max)
}

// sortView orders the filtered view in place. All orderings are stable so
// equal keys preserve catalog order; no sort key preserves it outright.
func sortView(view []Product, key *enums.SortKey) {
	if key == nil {
		return
	}
	switch *key {
	case enums.SortPriceAsc:
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].Price.LessThan(view[j].Price)
		})
	case enums.SortPriceDesc:
		sort.SliceStable(view, func(i, j int) bool {
			return view[j].Price.LessThan(view[i].Price)
		})
	case enums.SortName:
		// Collators keep internal buffers, so build one per call rather
		// than sharing across handlers.
		ar := collate.New(language.Arabic)
		sort.SliceStable(view, func(i, j int) bool {
			return ar.CompareString(view[i].Name, view[j].Name) < 0
		})
	case enums.SortFeatured:
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].Featured && !view[j].Featured
		})
	}
}
