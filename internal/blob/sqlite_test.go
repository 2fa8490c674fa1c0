package blob

import (
	"context"
	"database/sql"
	"testing"

	"github.com/mkoshelev/lockvault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:blobstore?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS blobs (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
DELETE FROM blobs;
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupSQLiteDB(t))

	_, err := s.Get(ctx, "owners")
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, s.Set(ctx, "owners", []byte("v1")))

	value, err := s.Get(ctx, "owners")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), value)

	// upsert replaces the previous snapshot
	require.NoError(t, s.Set(ctx, "owners", []byte("v2")))
	value, err = s.Get(ctx, "owners")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), value)

	require.NoError(t, s.Remove(ctx, "owners"))
	_, err = s.Get(ctx, "owners")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSQLiteStore_RemoveAbsentKey(t *testing.T) {
	s := NewSQLiteStore(setupSQLiteDB(t))
	assert.NoError(t, s.Remove(context.Background(), "missing"))
}
