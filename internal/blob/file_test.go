package blob

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mkoshelev/lockvault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Get(ctx, "owners")
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, s.Set(ctx, "owners", []byte(`[{"id":1}]`)))

	value, err := s.Get(ctx, "owners")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":1}]`), value)

	require.NoError(t, s.Remove(ctx, "owners"))
	_, err = s.Get(ctx, "owners")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestFileStore_NestedKeys(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "records/42", []byte("snapshot")))

	value, err := s.Get(ctx, "records/42")
	require.NoError(t, err)
	assert.Equal(t, []byte("snapshot"), value)
}

func TestFileStore_Overwrite(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))
	require.NoError(t, s.Set(ctx, "k", []byte("v2")))

	value, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), value)
}

func TestFileStore_RejectsEscapingKeys(t *testing.T) {
	ctx := context.Background()
	root := filepath.Join(t.TempDir(), "store")
	s, err := NewFileStore(root)
	require.NoError(t, err)

	tests := []string{"../outside", "/abs", "."}
	for _, key := range tests {
		t.Run(key, func(t *testing.T) {
			assert.Error(t, s.Set(ctx, key, []byte("x")))
		})
	}
}

func TestFileStore_RemoveAbsentKey(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, s.Remove(context.Background(), "missing"))
}
