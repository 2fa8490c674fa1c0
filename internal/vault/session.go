// Package vault implements the authenticated session and the per-owner
// record store of LockVault.
package vault

import (
	"github.com/mkoshelev/lockvault/internal/common"
	"github.com/mkoshelev/lockvault/internal/models"
)

// Session is the transient state of one authenticated owner. It holds the
// vault key derived from the master credential at login; the key lives only
// here and is wiped on Close. A Session gates every record operation.
type Session struct {
	owner *models.Owner
	key   []byte
}

// Owner returns the authenticated owner, or nil for a closed session.
func (s *Session) Owner() *models.Owner {
	if s == nil {
		return nil
	}
	return s.owner
}

// Active reports whether the session still holds a usable vault key.
func (s *Session) Active() bool {
	return s != nil && s.owner != nil && s.key != nil
}

// Close wipes the vault key and invalidates the session. Subsequent record
// operations fail with common.ErrUnauthenticated.
func (s *Session) Close() {
	if s == nil {
		return
	}
	common.WipeByteArray(s.key)
	s.key = nil
	s.owner = nil
}
