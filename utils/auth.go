package utils

import (
	"fmt"

	"github.com/dgrijalva/jwt-go"
)

// JwtKey signs and verifies session tokens. Loaded from JWT_SECRET at startup.
var JwtKey []byte

// Claims are the token claims: the subject's user id (hex ObjectID) and role.
type Claims struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	jwt.StandardClaims
}

// GenerateJWT signs a token for a user. Tokens carry no expiry; the original
// sessions live until the client discards them.
func GenerateJWT(id, role string) (string, error) {
	claims := &Claims{
		ID:   id,
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JwtKey)
}

// ParseToken verifies a signed token string and returns its claims.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
