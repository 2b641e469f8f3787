// Package auth issues and verifies the JWT tokens guarding mutating
// HTTP endpoints.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken issues an HS256 token for the given subject, valid for
// 24 hours.
func GenerateToken(userID string, secret string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour * 24).Unix(),
		"iat": time.Now().Unix(),
		"iss": "fleetops",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
