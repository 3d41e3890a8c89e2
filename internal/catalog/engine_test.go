package catalog

import (
	"testing"

	"github.com/hadayashop/storefront-backend/pkg/enums"
	"github.com/hadayashop/storefront-backend/pkg/types"
)

func testCatalog(t *testing.T) []Product {
	t.Helper()
	rows := sampleProducts()
	catalog := make([]Product, 0, len(rows))
	for _, row := range rows {
		catalog = append(catalog, fromModel(row))
	}
	return catalog
}

func TestFilterByCategory(t *testing.T) {
	catalog := testCatalog(t)
	category := enums.CategoryWrapping

	view := Filter(catalog, Query{Category: &category})

	if len(view) != 3 {
		t.Fatalf("expected 3 wrapping products, got %d", len(view))
	}
	wantIDs := []int{1, 4, 5}
	for i, product := range view {
		if product.ID != wantIDs[i] {
			t.Fatalf("expected ids %v in catalog order, got id %d at %d", wantIDs, product.ID, i)
		}
	}
}

func TestFilterBySearchText(t *testing.T) {
	catalog := testCatalog(t)

	view := Filter(catalog, Query{SearchText: "ساتان"})
	if len(view) != 1 || view[0].ID != 2 {
		t.Fatalf("expected only the satin ribbon, got %v", ids(view))
	}

	// Description matches count too.
	view = Filter(catalog, Query{SearchText: "يدوياً"})
	if len(view) != 1 || view[0].ID != 4 {
		t.Fatalf("expected the handmade box via description, got %v", ids(view))
	}

	if got := Filter(catalog, Query{SearchText: "لا يوجد"}); len(got) != 0 {
		t.Fatalf("expected empty view for a miss, got %v", ids(got))
	}

	if got := Filter(catalog, Query{SearchText: "   "}); len(got) != len(catalog) {
		t.Fatalf("blank search should match everything, got %d", len(got))
	}
}

func TestFilterByPriceRange(t *testing.T) {
	catalog := testCatalog(t)

	max := types.SAR(25)
	view := Filter(catalog, Query{PriceRange: &PriceRange{Min: types.SAR(10), Max: &max}})
	if got := ids(view); len(got) != 3 {
		t.Fatalf("expected ids 2,3,6 in [10,25], got %v", got)
	}

	// Bounds are inclusive.
	exact := types.SAR(45)
	view = Filter(catalog, Query{PriceRange: &PriceRange{Min: exact, Max: &exact}})
	if len(view) != 1 || view[0].ID != 1 {
		t.Fatalf("expected the 45-riyal box at the exact bound, got %v", ids(view))
	}

	// Absent max means at-least-min.
	view = Filter(catalog, Query{PriceRange: &PriceRange{Min: types.SAR(45)}})
	if got := ids(view); len(got) != 2 {
		t.Fatalf("expected ids 1,4 at 45+, got %v", got)
	}
}

func TestFilterCombinesPredicates(t *testing.T) {
	catalog := testCatalog(t)
	category := enums.CategoryWrapping
	max := types.SAR(50)

	view := Filter(catalog, Query{
		SearchText: "هدايا",
		Category:   &category,
		PriceRange: &PriceRange{Min: types.SAR(1), Max: &max},
	})

	if len(view) != 1 || view[0].ID != 1 {
		t.Fatalf("expected the single product satisfying all predicates, got %v", ids(view))
	}
}

func TestSortPrice(t *testing.T) {
	catalog := testCatalog(t)

	asc := enums.SortPriceAsc
	view := Filter(catalog, Query{SortKey: &asc})
	want := []int{5, 3, 2, 6, 1, 4}
	if got := ids(view); !equalIDs(got, want) {
		t.Fatalf("price-asc order = %v, want %v", got, want)
	}

	desc := enums.SortPriceDesc
	reversed := Filter(catalog, Query{SortKey: &desc})
	for i := range view {
		if view[i].ID != reversed[len(reversed)-1-i].ID {
			t.Fatalf("price-desc should exactly reverse price-asc without ties: %v vs %v", ids(view), ids(reversed))
		}
	}
}

func TestSortFeaturedIsStable(t *testing.T) {
	catalog := testCatalog(t)
	featured := enums.SortFeatured

	view := Filter(catalog, Query{SortKey: &featured})

	want := []int{1, 3, 6, 2, 4, 5}
	if got := ids(view); !equalIDs(got, want) {
		t.Fatalf("featured-first stable order = %v, want %v", got, want)
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	catalog := testCatalog(t)
	category := enums.CategoryRibbons
	asc := enums.SortPriceAsc
	query := Query{Category: &category, SortKey: &asc}

	once := Filter(catalog, query)
	twice := Filter(once, query)

	if !equalIDs(ids(once), ids(twice)) {
		t.Fatalf("filter should be idempotent: %v vs %v", ids(once), ids(twice))
	}
}

func TestFilterDoesNotMutateCatalog(t *testing.T) {
	catalog := testCatalog(t)
	before := ids(catalog)

	desc := enums.SortPriceDesc
	Filter(catalog, Query{SortKey: &desc})

	if !equalIDs(before, ids(catalog)) {
		t.Fatalf("catalog order changed: %v -> %v", before, ids(catalog))
	}
}

func ids(view []Product) []int {
	out := make([]int, len(view))
	for i, product := range view {
		out[i] = product.ID
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
