package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"

	"github.com/mkoshelev/lockvault/internal/common"
)

// Encrypt protects plaintext with AES-256-GCM under the given vault key.
//
// A new random 12-byte nonce is generated for every call; reusing a nonce
// with the same key is forbidden, so callers must never cache nonces. The
// ciphertext and nonce are returned separately and both must be stored.
func Encrypt(plaintext, key []byte) (ciphertext, nonce []byte, err error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	nonce = make([]byte, aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}

	ciphertext = aesgcm.Seal(nil, nonce, plaintext, nil)
	return ciphertext, nonce, nil
}

// Decrypt reverses Encrypt. If the authentication tag does not verify,
// because the ciphertext or nonce was altered or a different key is used,
// it returns common.ErrTamperedOrWrongKey and never partial plaintext.
func Decrypt(ciphertext, nonce, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, common.ErrTamperedOrWrongKey
	}
	return plaintext, nil
}
