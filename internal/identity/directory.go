// Package identity implements the owner directory: registration with the
// credential composition policy, lookup by login name or email, and master
// credential verification.
//
// The directory owns the Owner set exclusively and persists it to the blob
// store as a single JSON snapshot under a fixed key.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/mkoshelev/lockvault/internal/blob"
	"github.com/mkoshelev/lockvault/internal/common"
	"github.com/mkoshelev/lockvault/internal/cryptox"
	"github.com/mkoshelev/lockvault/internal/models"
	"github.com/mkoshelev/lockvault/internal/strength"
)

// ownersKey is the blob key holding the serialized Owner set.
const ownersKey = "owners"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Directory resolves login identifiers to owners and registers new ones.
// The mutex serializes read-modify-write cycles against the store within
// this process.
type Directory struct {
	store blob.Store
	mu    sync.Mutex
}

func NewDirectory(store blob.Store) *Directory {
	return &Directory{store: store}
}

func (d *Directory) load(ctx context.Context) ([]models.Owner, error) {
	value, err := d.store.Get(ctx, ownersKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error loading owner set: %w", err)
	}

	var owners []models.Owner
	if err := json.Unmarshal(value, &owners); err != nil {
		return nil, fmt.Errorf("error decoding owner set: %w", err)
	}
	return owners, nil
}

func (d *Directory) save(ctx context.Context, owners []models.Owner) error {
	value, err := json.Marshal(owners)
	if err != nil {
		return fmt.Errorf("error encoding owner set: %w", err)
	}
	if err := d.store.Set(ctx, ownersKey, value); err != nil {
		return fmt.Errorf("error persisting owner set: %w", err)
	}
	return nil
}

// Register creates a new owner. It fails with common.ErrInvalidEmail for a
// malformed email, common.ErrWeakCredential when the candidate fails the
// composition policy, and common.ErrDuplicateIdentity when the login name or
// email is already taken. The plaintext credential is never stored; only the
// self-describing digest and an independent key salt are persisted.
func (d *Directory) Register(ctx context.Context, loginName, email, credential string) (*models.Owner, error) {
	if !emailPattern.MatchString(email) {
		return nil, common.ErrInvalidEmail
	}
	if !strength.MeetsPolicy(credential) {
		return nil, common.ErrWeakCredential
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	owners, err := d.load(ctx)
	if err != nil {
		return nil, err
	}

	var maxID int64
	for _, o := range owners {
		if o.LoginName == loginName || o.Email == email {
			return nil, common.ErrDuplicateIdentity
		}
		if o.ID > maxID {
			maxID = o.ID
		}
	}

	owner := models.Owner{
		ID:               maxID + 1,
		LoginName:        loginName,
		Email:            email,
		CredentialDigest: cryptox.HashCredential([]byte(credential)),
		KeySalt:          common.GenerateRandByteArray(cryptox.SaltSize),
		CreatedAt:        time.Now().UTC(),
	}

	owners = append(owners, owner)
	if err := d.save(ctx, owners); err != nil {
		return nil, err
	}

	return &owner, nil
}

// FindByLogin resolves an identifier against login names and emails.
// Uniqueness of both fields makes the first match deterministic.
func (d *Directory) FindByLogin(ctx context.Context, identifier string) (*models.Owner, error) {
	owners, err := d.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, o := range owners {
		if o.LoginName == identifier || o.Email == identifier {
			owner := o
			return &owner, nil
		}
	}
	return nil, common.ErrNotFound
}

// Verify resolves the identifier and checks the candidate credential against
// the stored digest. It returns common.ErrNotFound for an unknown identifier
// and common.ErrInvalidCredential for a mismatch.
func (d *Directory) Verify(ctx context.Context, identifier, credential string) (*models.Owner, error) {
	owner, err := d.FindByLogin(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if err := cryptox.VerifyCredential([]byte(credential), owner.CredentialDigest); err != nil {
		if errors.Is(err, common.ErrInvalidCredential) {
			return nil, common.ErrInvalidCredential
		}
		return nil, fmt.Errorf("error verifying credential: %w", err)
	}
	return owner, nil
}

// ValidateEmail reports whether email looks like a syntactically plausible
// address. Exposed for presentation-layer form checks.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}
