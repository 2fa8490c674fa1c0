// Package models defines the data types shared by LockVault services:
// registered owners, stored credential records, and strength reports.
package models

import "time"

// Owner is a registered vault owner. LoginName and Email are each unique
// across all owners.
//
// CredentialDigest is a self-describing argon2id digest of the master
// credential in PHC string format; it embeds its own salt and cost
// parameters and is used only for verification, never for encryption.
//
// KeySalt is an independent random salt used to derive the record
// encryption key from the master credential at login time. It is kept
// separate from the digest salt so that a leaked digest cannot be used to
// reconstruct the vault key.
type Owner struct {
	ID               int64     `json:"id"`
	LoginName        string    `json:"login_name"`
	Email            string    `json:"email"`
	CredentialDigest string    `json:"credential_digest"`
	KeySalt          []byte    `json:"key_salt"`
	CreatedAt        time.Time `json:"created_at"`
}
