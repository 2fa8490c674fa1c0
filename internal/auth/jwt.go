// Package auth implements the "remember me" session continuity token: a
// signed projection of the owner identity that the external store may cache
// between runs. The token never carries key material; restoring it pre-fills
// the login identity only, the master credential is still required to unlock
// records.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mkoshelev/lockvault/internal/common"
)

// Claims extends the registered JWT claims with the owner identity.
type Claims struct {
	jwt.RegisteredClaims
	OwnerID   int64  `json:"owner_id"`
	LoginName string `json:"login_name"`
}

// GenerateToken mints an HS256 token for the given owner identity.
func GenerateToken(ownerID int64, loginName string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		OwnerID:   ownerID,
		LoginName: loginName,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ParseToken validates tokenString and returns the embedded owner identity.
// Expired, forged, or malformed tokens yield common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, common.ErrInvalidToken
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
