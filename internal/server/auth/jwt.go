// Package auth mints and verifies the bearer tokens that carry the caller
// principal. Tokens are issued outside the service (operators use the
// coursectl tool); the server only verifies them.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims extends the registered claims with the opaque caller principal.
type Claims struct {
	jwt.RegisteredClaims
	Principal string `json:"principal"`
}

// GenerateToken signs a token carrying the principal, valid for
// validityDuration.
func GenerateToken(principal string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Principal: principal,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetPrincipalFromToken verifies the signature and expiry and returns the
// embedded principal.
func GetPrincipalFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.Principal == "" {
		return "", ErrInvalidToken
	}

	return claims.Principal, nil
}
