// Package cryptox implements the security core of LockVault: the master
// credential digest used for verification, the vault-key derivation, and the
// authenticated record cipher.
//
// The credential digest and the vault key are derived with independent salts,
// so possession of a leaked digest does not help recover the key protecting
// stored records.
package cryptox

import "golang.org/x/crypto/argon2"

// argon2id parameters used for both the credential digest and the vault key.
const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 4

	// KeySize is the derived key length in bytes (AES-256).
	KeySize = 32

	// SaltSize is the random salt length in bytes.
	SaltSize = 16
)

// DeriveVaultKey derives the symmetric record-encryption key from the master
// credential and the owner's key salt. The result is held only in the live
// session and never persisted.
func DeriveVaultKey(credential, salt []byte) []byte {
	return argon2.IDKey(credential, salt, argonTime, argonMemory, argonThreads, KeySize)
}
