package blob

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mkoshelev/lockvault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestPostgresStore_Get(t *testing.T) {
	ctx := context.Background()
	db, mock := newSQLMockDB(t)
	s := NewPostgresStore(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM blobs WHERE key = $1`)).
		WithArgs("owners").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("snapshot")))

	value, err := s.Get(ctx, "owners")
	require.NoError(t, err)
	assert.Equal(t, []byte("snapshot"), value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	db, mock := newSQLMockDB(t)
	s := NewPostgresStore(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM blobs WHERE key = $1`)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Set(t *testing.T) {
	ctx := context.Background()
	db, mock := newSQLMockDB(t)
	s := NewPostgresStore(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO blobs (key, value) VALUES ($1, $2)`)).
		WithArgs("owners", []byte("snapshot")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Set(ctx, "owners", []byte("snapshot")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Set_Error(t *testing.T) {
	ctx := context.Background()
	db, mock := newSQLMockDB(t)
	s := NewPostgresStore(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO blobs`)).
		WithArgs("owners", []byte("snapshot")).
		WillReturnError(errors.New("boom"))

	assert.Error(t, s.Set(ctx, "owners", []byte("snapshot")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Remove(t *testing.T) {
	ctx := context.Background()
	db, mock := newSQLMockDB(t)
	s := NewPostgresStore(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM blobs WHERE key = $1`)).
		WithArgs("owners").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Remove(ctx, "owners"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
