package blob

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mkoshelev/lockvault/internal/blob/migrations"
	"github.com/mkoshelev/lockvault/internal/common"
	"github.com/pressly/goose/v3"
)

// PostgresStore implements Store on a single-table PostgreSQL database, for
// deployments that keep the vault snapshots in a shared server.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an already-migrated database handle. Useful for tests.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// OpenPostgres connects with the pgx stdlib driver and runs the embedded
// migrations.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	goose.SetBaseFS(migrations.Postgres)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("goose dialect error: %w", err)
	}
	if err := goose.UpContext(ctx, db, "postgres"); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return NewPostgresStore(db), nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM blobs WHERE key = $1`

	var value []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO blobs (key, value) VALUES ($1, $2)
	          ON CONFLICT (key) DO UPDATE SET value = excluded.value`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	query := `DELETE FROM blobs WHERE key = $1`

	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
