package blob

import (
	"context"
	"testing"

	"github.com/mkoshelev/lockvault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "owners")
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, s.Set(ctx, "owners", []byte(`[]`)))

	value, err := s.Get(ctx, "owners")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), value)

	require.NoError(t, s.Remove(ctx, "owners"))
	_, err = s.Get(ctx, "owners")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryStore_RemoveAbsentKey(t *testing.T) {
	s := NewMemoryStore()
	assert.NoError(t, s.Remove(context.Background(), "missing"))
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	in := []byte("snapshot")
	require.NoError(t, s.Set(ctx, "k", in))
	in[0] = 'X'

	out, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("snapshot"), out)

	// mutating the returned slice must not affect the stored value
	out[0] = 'Y'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("snapshot"), again)
}
