package preferences

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hadayashop/storefront-backend/internal/analytics"
	"github.com/hadayashop/storefront-backend/pkg/enums"
	pkgerrors "github.com/hadayashop/storefront-backend/pkg/errors"
	"github.com/hadayashop/storefront-backend/pkg/redis"
)

// store is the slice of the redis client the theme preference needs.
type store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	ThemeKey(sessionID string) string
}

// Service persists the per-session theme choice.
type Service interface {
	Theme(ctx context.Context, sessionID string) (enums.Theme, error)
	SetTheme(ctx context.Context, sessionID string, theme enums.Theme) error
}

type service struct {
	store   store
	ttl     time.Duration
	tracker analytics.Tracker
}

// NewService builds the preferences service.
func NewService(store store, ttl time.Duration, tracker analytics.Tracker) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("preference store required")
	}
	if tracker == nil {
		tracker = analytics.Noop()
	}
	return &service{store: store, ttl: ttl, tracker: tracker}, nil
}

// Theme returns the session's stored theme. Missing or unrecognized values
// fall back to light so a stale entry can never break rendering.
func (s *service) Theme(ctx context.Context, sessionID string) (enums.Theme, error) {
	raw, err := s.store.Get(ctx, s.store.ThemeKey(sessionID))
	if errors.Is(err, redis.Nil) {
		return enums.ThemeLight, nil
	}
	if err != nil {
		return enums.ThemeLight, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading theme")
	}
	return enums.NormalizeTheme(raw), nil
}

// SetTheme stores the choice and counts the toggle.
func (s *service) SetTheme(ctx context.Context, sessionID string, theme enums.Theme) error {
	if !theme.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown theme %q", theme))
	}
	if err := s.store.Set(ctx, s.store.ThemeKey(sessionID), theme.String(), s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving theme")
	}

	s.tracker.Track(ctx, analytics.Event{
		Category: "preferences",
		Action:   "theme_change",
		Label:    theme.String(),
	})
	return nil
}
