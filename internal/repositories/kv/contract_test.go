package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runContract exercises the behaviour every backend must share.
func runContract(t *testing.T, newRepo func(t *testing.T) Repository) {
	t.Helper()
	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "users", []byte(`[]`)))

		v, err := r.Get(ctx, "users")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[]`), v)
	})

	t.Run("missing key returns nil nil", func(t *testing.T) {
		r := newRepo(t)
		v, err := r.Get(ctx, "absent")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("set overwrites", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "k", []byte("old")))
		require.NoError(t, r.Set(ctx, "k", []byte("new")))

		v, err := r.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), v)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "currentUser", []byte(`{}`)))
		require.NoError(t, r.Delete(ctx, "currentUser"))

		v, err := r.Get(ctx, "currentUser")
		require.NoError(t, err)
		assert.Nil(t, v)

		require.NoError(t, r.Delete(ctx, "currentUser"))
	})
}
