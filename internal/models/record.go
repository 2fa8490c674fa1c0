package models

import "time"

// Record is one stored credential entry. At rest, Secret holds AES-GCM
// ciphertext and Nonce the nonce generated for that encryption. A record
// returned by a vault Get carries the decrypted secret instead, with Nonce
// cleared.
//
// ID is unique within the owning owner's record set, not globally.
// OwnerID never changes for the lifetime of the record.
type Record struct {
	ID        int64      `json:"id"`
	OwnerID   int64      `json:"owner_id"`
	Site      string     `json:"site"`
	AccountID string     `json:"account_id"`
	Secret    []byte     `json:"secret"`
	Nonce     []byte     `json:"nonce"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
