package newsletter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadayashop/storefront-backend/internal/analytics"
	pkgerrors "github.com/hadayashop/storefront-backend/pkg/errors"
)

func TestSubscribe(t *testing.T) {
	svc, err := NewService(analytics.Noop())
	require.NoError(t, err)

	subscription, err := svc.Subscribe(context.Background(), "s1", "  Reader@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", subscription.Email)
	assert.NotEmpty(t, subscription.Message)
}

func TestSubscribeRejectsBadAddress(t *testing.T) {
	svc, err := NewService(analytics.Noop())
	require.NoError(t, err)

	for _, email := range []string{"", "a@b", "a b@c.com", "plainaddress"} {
		_, err := svc.Subscribe(context.Background(), "s1", email)
		var appErr *pkgerrors.Error
		require.ErrorAs(t, err, &appErr, "email %q", email)
		assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
	}
}
