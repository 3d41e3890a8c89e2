package catalog

import (
	"context"
	"fmt"

	pkgerrors "github.com/hadayashop/storefront-backend/pkg/errors"
	"github.com/hadayashop/storefront-backend/pkg/pagination"
)

// ListResult is one page of a filtered, ordered catalog view plus the
// search-results info the render layer shows above the grid.
type ListResult struct {
	Products     []Product       `json:"products"`
	Page         pagination.Page `json:"pagination"`
	VisibleCount int             `json:"visible_count"`
	SearchText   string          `json:"search_text,omitempty"`
	Category     string          `json:"category,omitempty"`
}

// Service exposes catalog reads over an immutable in-memory snapshot.
type Service interface {
	List(ctx context.Context, query Query, page int) (*ListResult, error)
	Featured(ctx context.Context) []Product
	GetByID(ctx context.Context, id int) (*Product, error)
}

type service struct {
	snapshot []Product
	pageSize int
}

// NewService loads the catalog once and serves every read from the
// resulting snapshot. Products are immutable within a session, so no
// locking is needed.
func NewService(ctx context.Context, repo *Repository, pageSize int) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}

	rows, err := repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	snapshot := make([]Product, 0, len(rows))
	for _, row := range rows {
		snapshot = append(snapshot, fromModel(row))
	}

	return &service{
		snapshot: snapshot,
		pageSize: pagination.NormalizeSize(pageSize),
	}, nil
}

// List applies the query to the snapshot and slices the requested page.
// Out-of-range pages clamp rather than fail, and a fresh query always
// starts from page 1 at the call site.
func (s *service) List(_ context.Context, query Query, page int) (*ListResult, error) {
	view := Filter(s.snapshot, query)
	slice := pagination.Slice(page, len(view), s.pageSize)

	result := &ListResult{
		Products:     view[slice.Start:slice.End],
		Page:         slice,
		VisibleCount: len(view),
		SearchText:   query.SearchText,
	}
	if query.Category != nil {
		result.Category = query.Category.String()
	}
	return result, nil
}

// Featured returns the home-page carousel subset in catalog order.
func (s *service) Featured(_ context.Context) []Product {
	featured := make([]Product, 0, len(s.snapshot))
	for _, product := range s.snapshot {
		if product.Featured {
			featured = append(featured, product)
		}
	}
	return featured
}

// GetByID resolves a single product or a not-found error.
func (s *service) GetByID(_ context.Context, id int) (*Product, error) {
	for _, product := range s.snapshot {
		if product.ID == id {
			found := product
			return &found, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}
