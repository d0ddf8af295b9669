package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-blog-platform/models"
	"github.com/stretchr/testify/assert"
)

func TestGetClaimsFromContext(t *testing.T) {
	t.Run("returns the stored claim", func(t *testing.T) {
		want := models.Claims{UserID: "u-1", Email: "john.smith@email.com"}
		ctx := context.WithValue(context.Background(), ClaimsCtxKey, want)

		got, ok := GetClaimsFromContext(ctx)

		assert.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("missing value", func(t *testing.T) {
		_, ok := GetClaimsFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("colliding string key does not leak through", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), "claims", models.Claims{UserID: "u-1"}) //nolint:staticcheck

		_, ok := GetClaimsFromContext(ctx)
		assert.False(t, ok)
	})

	t.Run("wrong value type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), ClaimsCtxKey, "u-1")

		_, ok := GetClaimsFromContext(ctx)
		assert.False(t, ok)
	})
}
