// Package cli implements the LockVault command-line client: an interactive
// vault shell plus one-shot generator and strength commands.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mkoshelev/lockvault/internal/auth"
	"github.com/mkoshelev/lockvault/internal/blob"
	"github.com/mkoshelev/lockvault/internal/common"
	"github.com/mkoshelev/lockvault/internal/config"
	"github.com/mkoshelev/lockvault/internal/identity"
	"github.com/mkoshelev/lockvault/internal/logging"
	"github.com/mkoshelev/lockvault/internal/vault"
)

// App wires the services behind the interactive shell and carries the
// current session.
type App struct {
	config   *config.Config
	logger   logging.Logger
	blobs    blob.Store
	dir      *identity.Directory
	vault    *vault.Store
	sessions *auth.Cache
	session  *vault.Session
	reader   *bufio.Reader
	out      io.Writer

	// savedLogin is the identity restored from the continuity token; it
	// pre-fills the login prompt but never unlocks anything by itself.
	savedLogin string
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	blobs, err := OpenStore(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "error opening store", "backend", cfg.Store, "error", err)
		return nil, err
	}

	dir := identity.NewDirectory(blobs)

	return &App{
		config:   cfg,
		logger:   logger,
		blobs:    blobs,
		dir:      dir,
		vault:    vault.NewStore(blobs, dir),
		sessions: auth.NewCache(blobs, []byte(cfg.SessionSecret), cfg.SessionTokenValidity),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// OpenStore constructs the blob store backend selected in the config.
func OpenStore(ctx context.Context, cfg *config.Config) (blob.Store, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return blob.NewMemoryStore(), nil
	case config.StoreFile:
		return blob.NewFileStore(cfg.FileRoot)
	case config.StoreSQLite:
		return blob.OpenSQLite(ctx, cfg.SQLitePath)
	case config.StorePostgres:
		return blob.OpenPostgres(ctx, cfg.DatabaseDSN)
	case config.StoreS3:
		return blob.NewS3Store(ctx, blob.S3Config{
			RootUser:     cfg.S3RootUser,
			RootPassword: cfg.S3RootPassword,
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
		})
	default:
		return nil, fmt.Errorf("unknown store backend: %q", cfg.Store)
	}
}

// Close logs out and releases the store if the backend holds resources.
func (a *App) Close() error {
	a.session.Close()
	if closer, ok := a.blobs.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Active()
}

// errorMessage maps core errors to the messages shown in the shell.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrDuplicateIdentity):
		return "User already exists!"
	case errors.Is(err, common.ErrWeakCredential):
		return "Password must be at least 8 characters with uppercase, lowercase, number, and special character"
	case errors.Is(err, common.ErrInvalidEmail):
		return "Please enter a valid email address"
	case errors.Is(err, common.ErrNotFound):
		return "Not found"
	case errors.Is(err, common.ErrInvalidCredential):
		return "Invalid credentials!"
	case errors.Is(err, common.ErrUnauthenticated):
		return "Please login first!"
	case errors.Is(err, common.ErrTamperedOrWrongKey):
		return "Record could not be decrypted: it was tampered with or belongs to a different key"
	case errors.Is(err, common.ErrEmptyPool):
		return "Please select at least one character type!"
	default:
		return err.Error()
	}
}
