//go:build property
// +build property

package catalog

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/hadayashop/storefront-backend/pkg/enums"
	"github.com/hadayashop/storefront-backend/pkg/types"
)

// TestFilterProperties checks the invariants of the pure filter pipeline
// against randomized queries over the seeded catalog.
func TestFilterProperties(t *testing.T) {
	catalog := testCatalog(t)
	properties := gopter.NewProperties(nil)

	queryGen := genQuery()

	// Property: every product in the view satisfies the query predicates.
	properties.Property("view satisfies predicates", prop.ForAll(
		func(query Query) bool {
			for _, product := range Filter(catalog, query) {
				if !matchesSearch(product, query.SearchText) {
					return false
				}
				if !matchesCategory(product, query.Category) {
					return false
				}
				if !matchesPrice(product, query.PriceRange) {
					return false
				}
			}
			return true
		},
		queryGen,
	))

	// Property: without a sort key the view is a subsequence of the catalog.
	properties.Property("unsorted view preserves catalog order", prop.ForAll(
		func(query Query) bool {
			query.SortKey = nil
			view := Filter(catalog, query)
			cursor := 0
			for _, product := range view {
				found := false
				for ; cursor < len(catalog); cursor++ {
					if catalog[cursor].ID == product.ID {
						found = true
						cursor++
						break
					}
				}
				if !found {
					return false
				}
			}
			return true
		},
		queryGen,
	))

	// Property: filtering an already filtered view is a no-op.
	properties.Property("filter is idempotent", prop.ForAll(
		func(query Query) bool {
			once := Filter(catalog, query)
			twice := Filter(once, query)
			if len(once) != len(twice) {
				return false
			}
			for i := range once {
				if once[i].ID != twice[i].ID {
					return false
				}
			}
			return true
		},
		queryGen,
	))

	// Property: price sorts produce monotone sequences.
	properties.Property("price sorts are monotone", prop.ForAll(
		func(query Query) bool {
			asc := enums.SortPriceAsc
			query.SortKey = &asc
			view := Filter(catalog, query)
			for i := 1; i < len(view); i++ {
				if view[i].Price.LessThan(view[i-1].Price) {
					return false
				}
			}

			desc := enums.SortPriceDesc
			query.SortKey = &desc
			view = Filter(catalog, query)
			for i := 1; i < len(view); i++ {
				if view[i-1].Price.LessThan(view[i].Price) {
					return false
				}
			}
			return true
		},
		queryGen,
	))

	properties.TestingRun(t)
}

func genQuery() gopter.Gen {
	categories := []enums.ProductCategory{enums.CategoryWrapping, enums.CategoryRibbons, enums.CategoryCards}
	searches := []string{"", "هدايا", "شريط", "بطاقة", "فاخر", "zzz", "  "}

	return gopter.CombineGens(
		gen.IntRange(0, len(searches)-1),
		gen.IntRange(-1, len(categories)-1),
		gen.IntRange(0, 70),
		gen.IntRange(-1, 70),
	).Map(func(values []interface{}) Query {
		query := Query{SearchText: searches[values[0].(int)]}
		if idx := values[1].(int); idx >= 0 {
			query.Category = &categories[idx]
		}
		min := values[2].(int)
		if maxUnits := values[3].(int); maxUnits >= 0 {
			max := types.SAR(int64(min + maxUnits))
			query.PriceRange = &PriceRange{Min: types.SAR(int64(min)), Max: &max}
		} else {
			query.PriceRange = &PriceRange{Min: types.SAR(int64(min))}
		}
		return query
	})
}
