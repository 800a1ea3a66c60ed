// file: internals/helpers/token.go
package helper

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// CreateAccessToken: terbitkan JWT HMAC untuk user teacher/admin.
func CreateAccessToken(secret string, userID uuid.UUID, userName, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":        userID.String(),
		"user_name": userName,
		"role":      role,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}
