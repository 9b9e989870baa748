package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwtKey signs session tokens. Overridden at startup from JWT_SECRET.
var jwtKey = []byte("dev-secret-change-me")

// SetSecret replaces the signing key. Call once during startup, before
// any token is minted or verified.
func SetSecret(secret string) {
	jwtKey = []byte(secret)
}

// Claims is the payload carried inside a session token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateToken mints a signed bearer token for username, valid for ttl.
func GenerateToken(username string, ttl time.Duration) (string, error) {
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "mentorhub-chat",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ValidateToken parses and validates the signature and expiration of a
// token string. It fails closed: malformed, unsigned, expired and
// tampered tokens all come back as an error.
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
