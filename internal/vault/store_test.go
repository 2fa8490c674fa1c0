package vault

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mkoshelev/lockvault/internal/blob"
	"github.com/mkoshelev/lockvault/internal/common"
	"github.com/mkoshelev/lockvault/internal/identity"
	"github.com/mkoshelev/lockvault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupVault(t *testing.T) (*Store, blob.Store) {
	t.Helper()
	blobs := blob.NewMemoryStore()
	dir := identity.NewDirectory(blobs)
	return NewStore(blobs, dir), blobs
}

func loginDemo(t *testing.T, s *Store) *Session {
	t.Helper()
	sess, err := s.Login(context.Background(), "demo", "Demo123!")
	require.NoError(t, err)
	return sess
}

func registerDemo(t *testing.T, s *Store) {
	t.Helper()
	_, err := s.dir.Register(context.Background(), "demo", "demo@example.com", "Demo123!")
	require.NoError(t, err)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	s, _ := setupVault(t)
	registerDemo(t, s)

	t.Run("success", func(t *testing.T) {
		sess, err := s.Login(ctx, "demo", "Demo123!")
		require.NoError(t, err)
		assert.True(t, sess.Active())
		assert.Equal(t, "demo", sess.Owner().LoginName)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := s.Login(ctx, "nobody", "Demo123!")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("wrong credential", func(t *testing.T) {
		_, err := s.Login(ctx, "demo", "Wrong123!")
		assert.ErrorIs(t, err, common.ErrInvalidCredential)
	})
}

func TestEndToEnd_DemoFlow(t *testing.T) {
	ctx := context.Background()
	s, _ := setupVault(t)
	registerDemo(t, s)
	sess := loginDemo(t, s)

	record, err := s.Add(ctx, sess, "Gmail", "demo@gmail.com", "SamplePass123!", "Main email")
	require.NoError(t, err)
	assert.Equal(t, int64(1), record.ID)

	list, err := s.List(ctx, sess)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotEqual(t, []byte("SamplePass123!"), list[0].Secret)

	got, err := s.Get(ctx, sess, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "SamplePass123!", string(got.Secret))
	assert.Nil(t, got.Nonce)
	assert.Equal(t, "Main email", got.Notes)

	require.NoError(t, s.Delete(ctx, sess, record.ID))

	_, err = s.Get(ctx, sess, record.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestAdd_AllocatesPerOwnerIDs(t *testing.T) {
	ctx := context.Background()
	s, _ := setupVault(t)
	registerDemo(t, s)
	sess := loginDemo(t, s)

	r1, err := s.Add(ctx, sess, "a", "a", "Secret1!", "")
	require.NoError(t, err)
	r2, err := s.Add(ctx, sess, "b", "b", "Secret2!", "")
	require.NoError(t, err)

	assert.Equal(t, int64(1), r1.ID)
	assert.Equal(t, int64(2), r2.ID)

	// deleting the highest id and adding again reuses it, ids only need to
	// be unique within the live set
	require.NoError(t, s.Delete(ctx, sess, r2.ID))
	r3, err := s.Add(ctx, sess, "c", "c", "Secret3!", "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), r3.ID)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	s, _ := setupVault(t)
	registerDemo(t, s)
	sess := loginDemo(t, s)

	record, err := s.Add(ctx, sess, "Gmail", "demo@gmail.com", "SamplePass123!", "old")
	require.NoError(t, err)

	updated, err := s.Update(ctx, sess, record.ID, "GMail", "demo2@gmail.com", "NewPass456!", "new")
	require.NoError(t, err)

	assert.Equal(t, record.ID, updated.ID)
	assert.Equal(t, record.OwnerID, updated.OwnerID)
	assert.Equal(t, record.CreatedAt, updated.CreatedAt)
	assert.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, "GMail", updated.Site)

	got, err := s.Get(ctx, sess, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "NewPass456!", string(got.Secret))
}

func TestUpdate_NotFound(t *testing.T) {
	ctx := context.Background()
	s, _ := setupVault(t)
	registerDemo(t, s)
	sess := loginDemo(t, s)

	_, err := s.Update(ctx, sess, 99, "x", "x", "Secret1!", "")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	ctx := context.Background()
	s, _ := setupVault(t)
	registerDemo(t, s)
	sess := loginDemo(t, s)

	err := s.Delete(ctx, sess, 99)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCrossOwnerIsolation(t *testing.T) {
	ctx := context.Background()
	s, _ := setupVault(t)
	registerDemo(t, s)

	_, err := s.dir.Register(ctx, "other", "other@example.com", "Other123!")
	require.NoError(t, err)

	demoSess := loginDemo(t, s)
	record, err := s.Add(ctx, demoSess, "Gmail", "demo@gmail.com", "SamplePass123!", "")
	require.NoError(t, err)

	otherSess, err := s.Login(ctx, "other", "Other123!")
	require.NoError(t, err)

	_, err = s.Get(ctx, otherSess, record.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = s.Update(ctx, otherSess, record.ID, "x", "x", "Secret1!", "")
	assert.ErrorIs(t, err, common.ErrNotFound)

	err = s.Delete(ctx, otherSess, record.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	// and the record is still intact for its owner
	got, err := s.Get(ctx, demoSess, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "SamplePass123!", string(got.Secret))
}

func TestGet_TamperedRecord(t *testing.T) {
	ctx := context.Background()
	s, blobs := setupVault(t)
	registerDemo(t, s)
	sess := loginDemo(t, s)

	record, err := s.Add(ctx, sess, "Gmail", "demo@gmail.com", "SamplePass123!", "")
	require.NoError(t, err)

	// flip one ciphertext bit directly in the persisted snapshot
	key := recordsKey(sess.Owner().ID)
	value, err := blobs.Get(ctx, key)
	require.NoError(t, err)

	var records []models.Record
	require.NoError(t, json.Unmarshal(value, &records))
	require.Len(t, records, 1)
	records[0].Secret[0] ^= 0x01

	value, err = json.Marshal(records)
	require.NoError(t, err)
	require.NoError(t, blobs.Set(ctx, key, value))

	_, err = s.Get(ctx, sess, record.ID)
	assert.ErrorIs(t, err, common.ErrTamperedOrWrongKey)
	assert.NotErrorIs(t, err, common.ErrNotFound)
}

func TestUnauthenticated(t *testing.T) {
	ctx := context.Background()
	s, _ := setupVault(t)
	registerDemo(t, s)

	t.Run("nil session", func(t *testing.T) {
		_, err := s.List(ctx, nil)
		assert.ErrorIs(t, err, common.ErrUnauthenticated)
	})

	t.Run("closed session", func(t *testing.T) {
		sess := loginDemo(t, s)
		sess.Close()

		_, err := s.Add(ctx, sess, "a", "b", "Secret1!", "")
		assert.ErrorIs(t, err, common.ErrUnauthenticated)

		_, err = s.Get(ctx, sess, 1)
		assert.ErrorIs(t, err, common.ErrUnauthenticated)
	})
}

func TestSession_CloseWipesKey(t *testing.T) {
	s, _ := setupVault(t)
	registerDemo(t, s)
	sess := loginDemo(t, s)

	key := sess.key
	sess.Close()

	assert.False(t, sess.Active())
	assert.Nil(t, sess.Owner())
	for _, b := range key {
		assert.Zero(t, b)
	}
}
