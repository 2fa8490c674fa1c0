package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/mkoshelev/lockvault/internal/common"
	"golang.org/x/crypto/argon2"
)

// ErrMalformedDigest reports a digest string that does not parse as a PHC
// argon2id record.
var ErrMalformedDigest = errors.New("malformed credential digest")

// HashCredential computes a one-way digest of the master credential for
// verification. The result is a PHC-format string,
//
//	$argon2id$v=19$m=65536,t=1,p=4$<b64 salt>$<b64 hash>
//
// which embeds its own salt and cost parameters, so verification is
// self-describing and parameters can be raised later without a migration.
func HashCredential(credential []byte) string {
	salt := common.GenerateRandByteArray(SaltSize)
	hash := argon2.IDKey(credential, salt, argonTime, argonMemory, argonThreads, KeySize)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash))
}

// VerifyCredential re-derives the digest of candidate using the salt and
// parameters embedded in encoded and compares the results in constant time.
// A malformed digest yields ErrMalformedDigest; a mismatch yields
// common.ErrInvalidCredential.
func VerifyCredential(candidate []byte, encoded string) error {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return ErrMalformedDigest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return ErrMalformedDigest
	}
	if version != argon2.Version {
		return ErrMalformedDigest
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return ErrMalformedDigest
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return ErrMalformedDigest
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return ErrMalformedDigest
	}

	derived := argon2.IDKey(candidate, salt, iterations, memory, threads, uint32(len(hash)))
	if subtle.ConstantTimeCompare(hash, derived) != 1 {
		return common.ErrInvalidCredential
	}
	return nil
}
