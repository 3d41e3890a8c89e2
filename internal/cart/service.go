package cart

import (
	"context"
	"fmt"

	"github.com/hadayashop/storefront-backend/internal/analytics"
	"github.com/hadayashop/storefront-backend/internal/catalog"
	pkgerrors "github.com/hadayashop/storefront-backend/pkg/errors"
)

// Service manages per-session carts.
type Service interface {
	Get(ctx context.Context, sessionID string) (Cart, error)
	AddItem(ctx context.Context, sessionID string, productID int) (Cart, error)
	RemoveItem(ctx context.Context, sessionID string, productID int) (Cart, error)
	Clear(ctx context.Context, sessionID string) (Cart, error)
}

type service struct {
	repo    *Repository
	catalog catalog.Service
	tracker analytics.Tracker
}

// NewService wires the cart on top of the Redis repository and the catalog
// snapshot used to resolve product ids.
func NewService(repo *Repository, catalogSvc catalog.Service, tracker analytics.Tracker) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if catalogSvc == nil {
		return nil, fmt.Errorf("catalog service required")
	}
	if tracker == nil {
		tracker = analytics.Noop()
	}
	return &service{repo: repo, catalog: catalogSvc, tracker: tracker}, nil
}

// Get returns the session's current cart, empty when nothing was added yet.
func (s *service) Get(ctx context.Context, sessionID string) (Cart, error) {
	return s.repo.Load(ctx, sessionID)
}

// AddItem puts one unit of the product into the cart, bumping the quantity
// when the product is already there. Unknown ids are rejected so a stale
// page cannot grow phantom lines.
func (s *service) AddItem(ctx context.Context, sessionID string, productID int) (Cart, error) {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return Cart{}, err
	}

	snapshot, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return Cart{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}

	snapshot.upsert(Line{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.PriceDisplay(),
		Quantity:  1,
	})

	if err := s.repo.Save(ctx, snapshot); err != nil {
		return Cart{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart")
	}

	s.tracker.Track(ctx, analytics.Event{
		Category: "cart",
		Action:   "add_to_cart",
		Label:    product.Name,
	})
	return snapshot, nil
}

// RemoveItem drops the whole line for the product. Removing something that
// is not in the cart is a no-op, not an error.
func (s *service) RemoveItem(ctx context.Context, sessionID string, productID int) (Cart, error) {
	snapshot, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return Cart{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}

	if !snapshot.remove(productID) {
		return snapshot, nil
	}

	if err := s.repo.Save(ctx, snapshot); err != nil {
		return Cart{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart")
	}
	return snapshot, nil
}

// Clear empties the session's cart.
func (s *service) Clear(ctx context.Context, sessionID string) (Cart, error) {
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return Cart{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clearing cart")
	}
	return Cart{SessionID: sessionID, Lines: []Line{}}, nil
}
