package utils

import (
	"fmt"
	"os"
	"tbs/src/types"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT signs a token whose subject is the user id, mirroring what
// the auth middleware expects back.
func GenerateJWT(email string, userID uint) (string, error) {
	claims := types.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
