package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID uint   `json:"sub"`
	User   string `json:"user"`
	jwt.RegisteredClaims
}

func SignJWT(secret string, userID uint, handle string, expiresMin int) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		User:   handle,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiresMin) * time.Minute)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}
