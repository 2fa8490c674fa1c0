package vault

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mkoshelev/lockvault/internal/blob"
	"github.com/mkoshelev/lockvault/internal/common"
	"github.com/mkoshelev/lockvault/internal/cryptox"
	"github.com/mkoshelev/lockvault/internal/identity"
	"github.com/mkoshelev/lockvault/internal/models"
)

// Store is the per-owner record store. Every mutation rewrites the owner's
// full record-set snapshot in the blob store; the mutex serializes the
// read-modify-write cycle within this process. Cross-process writers are not
// coordinated here and must be serialized externally.
type Store struct {
	blobs blob.Store
	dir   *identity.Directory
	mu    sync.Mutex
}

func NewStore(blobs blob.Store, dir *identity.Directory) *Store {
	return &Store{blobs: blobs, dir: dir}
}

// recordsKey maps an owner identity to the blob key of that owner's record
// set. Owner scoping goes through this function only.
func recordsKey(ownerID int64) string {
	return fmt.Sprintf("records/%d", ownerID)
}

// Login verifies the identifier and master credential against the identity
// directory and, on success, derives the vault key and opens a session.
func (s *Store) Login(ctx context.Context, identifier, credential string) (*Session, error) {
	owner, err := s.dir.Verify(ctx, identifier, credential)
	if err != nil {
		return nil, err
	}

	key := cryptox.DeriveVaultKey([]byte(credential), owner.KeySalt)
	return &Session{owner: owner, key: key}, nil
}

func (s *Store) requireSession(sess *Session) error {
	if !sess.Active() {
		return common.ErrUnauthenticated
	}
	return nil
}

// load reads the session owner's record set. Every record is checked to
// belong to that owner; a mismatch means the snapshot was corrupted or
// written under the wrong key space and is reported loudly.
func (s *Store) load(ctx context.Context, sess *Session) ([]models.Record, error) {
	value, err := s.blobs.Get(ctx, recordsKey(sess.owner.ID))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error loading record set: %w", err)
	}

	var records []models.Record
	if err := json.Unmarshal(value, &records); err != nil {
		return nil, fmt.Errorf("error decoding record set: %w", err)
	}

	for _, r := range records {
		if r.OwnerID != sess.owner.ID {
			return nil, fmt.Errorf("record %d: owner mismatch in snapshot for owner %d", r.ID, sess.owner.ID)
		}
	}
	return records, nil
}

func (s *Store) save(ctx context.Context, sess *Session, records []models.Record) error {
	value, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("error encoding record set: %w", err)
	}
	if err := s.blobs.Set(ctx, recordsKey(sess.owner.ID), value); err != nil {
		return fmt.Errorf("error persisting record set: %w", err)
	}
	return nil
}

// Add encrypts the secret under the session's vault key and appends a new
// record with an id unique within the owner's set.
func (s *Store) Add(ctx context.Context, sess *Session, site, accountID, secret, notes string) (*models.Record, error) {
	if err := s.requireSession(sess); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx, sess)
	if err != nil {
		return nil, err
	}

	var maxID int64
	for _, r := range records {
		if r.ID > maxID {
			maxID = r.ID
		}
	}

	ciphertext, nonce, err := cryptox.Encrypt([]byte(secret), sess.key)
	if err != nil {
		return nil, fmt.Errorf("error encrypting secret: %w", err)
	}

	record := models.Record{
		ID:        maxID + 1,
		OwnerID:   sess.owner.ID,
		Site:      site,
		AccountID: accountID,
		Secret:    ciphertext,
		Nonce:     nonce,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}

	records = append(records, record)
	if err := s.save(ctx, sess, records); err != nil {
		return nil, err
	}
	return &record, nil
}

// Update replaces all fields of an existing record except id, owner, and
// creation time, re-encrypting the secret with a fresh nonce. It fails with
// common.ErrNotFound when the id is absent from the owner's set, which
// includes ids belonging to other owners.
func (s *Store) Update(ctx context.Context, sess *Session, id int64, site, accountID, secret, notes string) (*models.Record, error) {
	if err := s.requireSession(sess); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx, sess)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].ID != id {
			continue
		}

		ciphertext, nonce, err := cryptox.Encrypt([]byte(secret), sess.key)
		if err != nil {
			return nil, fmt.Errorf("error encrypting secret: %w", err)
		}

		now := time.Now().UTC()
		records[i].Site = site
		records[i].AccountID = accountID
		records[i].Secret = ciphertext
		records[i].Nonce = nonce
		records[i].Notes = notes
		records[i].UpdatedAt = &now

		if err := s.save(ctx, sess, records); err != nil {
			return nil, err
		}
		record := records[i]
		return &record, nil
	}
	return nil, common.ErrNotFound
}

// Delete removes a record from the owner's set. Confirmation prompts are the
// caller's concern.
func (s *Store) Delete(ctx context.Context, sess *Session, id int64) error {
	if err := s.requireSession(sess); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx, sess)
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].ID != id {
			continue
		}
		records = append(records[:i], records[i+1:]...)
		return s.save(ctx, sess, records)
	}
	return common.ErrNotFound
}

// Get returns a copy of the record with the secret decrypted and the nonce
// cleared. A missing id yields common.ErrNotFound; a failed authentication
// tag yields common.ErrTamperedOrWrongKey, and the two are never conflated.
func (s *Store) Get(ctx context.Context, sess *Session, id int64) (*models.Record, error) {
	if err := s.requireSession(sess); err != nil {
		return nil, err
	}

	records, err := s.load(ctx, sess)
	if err != nil {
		return nil, err
	}

	for _, r := range records {
		if r.ID != id {
			continue
		}

		plaintext, err := cryptox.Decrypt(r.Secret, r.Nonce, sess.key)
		if err != nil {
			return nil, err
		}
		record := r
		record.Secret = plaintext
		record.Nonce = nil
		return &record, nil
	}
	return nil, common.ErrNotFound
}

// List returns the owner's records with secrets still encrypted, for summary
// views. Nothing is decrypted eagerly.
func (s *Store) List(ctx context.Context, sess *Session) ([]models.Record, error) {
	if err := s.requireSession(sess); err != nil {
		return nil, err
	}
	return s.load(ctx, sess)
}
