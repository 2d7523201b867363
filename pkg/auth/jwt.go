// Package auth issues and validates the bearer tokens that guard mutating
// routes. Auth is optional: it is active only when AUTH_SECRET is set.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shashiranjanraj/storefront/config"
)

// Claims holds the typed JWT payload.
type Claims struct {
	Subject string `json:"sub_name"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.AuthSecret())
}

// Enabled reports whether token auth is configured.
func Enabled() bool {
	return config.AuthSecret() != ""
}

// GenerateToken creates a signed JWT for the given subject.
func GenerateToken(subject string, ttl time.Duration) (string, error) {
	claims := Claims{
		Subject: subject,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ValidateToken parses and validates a JWT string.
func ValidateToken(t string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(t, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
