package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hadayashop/storefront-backend/pkg/logger"
	"github.com/hadayashop/storefront-backend/pkg/redis"
)

// store is the slice of the redis client the cart needs.
type store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CartKey(sessionID string) string
}

// Repository persists cart snapshots in Redis, one JSON document per
// session, refreshed with the configured TTL on every write.
type Repository struct {
	store store
	ttl   time.Duration
	logg  *logger.Logger
}

// NewRepository builds the Redis-backed cart repository.
func NewRepository(store store, ttl time.Duration, logg *logger.Logger) *Repository {
	return &Repository{store: store, ttl: ttl, logg: logg}
}

// Load reads the session's cart. A missing key or an unreadable snapshot
// both come back as an empty cart: a corrupted entry must never lock a
// shopper out of the shop.
func (r *Repository) Load(ctx context.Context, sessionID string) (Cart, error) {
	empty := Cart{SessionID: sessionID, Lines: []Line{}}

	raw, err := r.store.Get(ctx, r.store.CartKey(sessionID))
	if errors.Is(err, redis.Nil) {
		return empty, nil
	}
	if err != nil {
		return empty, err
	}

	var snapshot Cart
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		if r.logg != nil {
			r.logg.Warn(ctx, "discarding unreadable cart snapshot")
		}
		return empty, nil
	}
	snapshot.SessionID = sessionID
	if snapshot.Lines == nil {
		snapshot.Lines = []Line{}
	}
	return snapshot, nil
}

// Save writes the whole cart back, resetting the TTL.
func (r *Repository) Save(ctx context.Context, snapshot Cart) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, r.store.CartKey(snapshot.SessionID), raw, r.ttl)
}

// Delete removes the session's cart entirely.
func (r *Repository) Delete(ctx context.Context, sessionID string) error {
	return r.store.Del(ctx, r.store.CartKey(sessionID))
}
