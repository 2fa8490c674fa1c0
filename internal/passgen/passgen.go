// Package passgen generates random candidate secrets from configurable
// character classes using a cryptographically secure random source.
package passgen

import (
	"crypto/rand"
	"math/big"

	"github.com/mkoshelev/lockvault/internal/common"
)

const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// DefaultLength is the generated secret length when none is configured.
const DefaultLength = 12

// Config selects the length and the character classes the generator may
// draw from.
type Config struct {
	Length  int
	Upper   bool
	Lower   bool
	Digits  bool
	Symbols bool
}

// DefaultConfig returns a Config with all character classes enabled and the
// default length.
func DefaultConfig() Config {
	return Config{
		Length:  DefaultLength,
		Upper:   true,
		Lower:   true,
		Digits:  true,
		Symbols: true,
	}
}

func (c Config) pool() string {
	pool := ""
	if c.Lower {
		pool += lowerChars
	}
	if c.Upper {
		pool += upperChars
	}
	if c.Digits {
		pool += digitChars
	}
	if c.Symbols {
		pool += symbolChars
	}
	return pool
}

// Generate produces a secret of exactly cfg.Length characters, each drawn
// independently and uniformly from the union of the enabled classes. When no
// class is enabled it fails with common.ErrEmptyPool. Repeated characters
// are acceptable; there is no rejection or re-draw logic.
func Generate(cfg Config) (string, error) {
	if cfg.Length <= 0 {
		cfg.Length = DefaultLength
	}

	pool := cfg.pool()
	if pool == "" {
		return "", common.ErrEmptyPool
	}

	max := big.NewInt(int64(len(pool)))
	out := make([]byte, cfg.Length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = pool[n.Int64()]
	}
	return string(out), nil
}
