package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkoshelev/lockvault/internal/blob"
	"github.com/mkoshelev/lockvault/internal/common"
	"github.com/mkoshelev/lockvault/internal/models"
)

// sessionKey is the blob key holding the cached continuity token.
const sessionKey = "session"

// Cache persists and restores the continuity token through the blob store.
type Cache struct {
	store    blob.Store
	secret   []byte
	validity time.Duration
}

func NewCache(store blob.Store, secret []byte, validity time.Duration) *Cache {
	return &Cache{store: store, secret: secret, validity: validity}
}

// Remember caches a freshly minted token for the owner.
func (c *Cache) Remember(ctx context.Context, owner *models.Owner) error {
	token, err := GenerateToken(owner.ID, owner.LoginName, c.secret, c.validity)
	if err != nil {
		return fmt.Errorf("error generating session token: %w", err)
	}
	if err := c.store.Set(ctx, sessionKey, []byte(token)); err != nil {
		return fmt.Errorf("error caching session token: %w", err)
	}
	return nil
}

// Restore returns the owner identity from a cached, still-valid token.
// An absent, expired, or invalid token yields common.ErrNotFound; the stale
// entry is removed on the way out.
func (c *Cache) Restore(ctx context.Context) (*Claims, error) {
	value, err := c.store.Get(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error reading session token: %w", err)
	}

	claims, err := ParseToken(string(value), c.secret)
	if err != nil {
		_ = c.store.Remove(ctx, sessionKey)
		return nil, common.ErrNotFound
	}
	return claims, nil
}

// Clear removes the cached token, e.g. on logout.
func (c *Cache) Clear(ctx context.Context) error {
	return c.store.Remove(ctx, sessionKey)
}
