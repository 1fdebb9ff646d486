package memory

import (
	"context"
	"testing"

	"eventSignup/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()

	_, found, err := s.GetItem(ctx, "device-a", "k")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.SetItem(ctx, "device-a", "k", "one"))
	require.NoError(t, s.SetItem(ctx, "device-a", "k", "two"))

	v, found, err := s.GetItem(ctx, "device-a", "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "two", v)

	_, found, err = s.GetItem(ctx, "device-b", "k")
	require.NoError(t, err)
	assert.False(t, found)

	assert.ErrorIs(t, s.SetItem(ctx, "", "k", "v"), storage.ErrInvalidItem)
}
