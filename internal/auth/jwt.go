package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of every issued session token.
const TokenTTL = 365 * 24 * time.Hour

var jwtSecret []byte

// Init sets the JWT signing secret
func Init(secret string) {
	jwtSecret = []byte(secret)
}

// Issue signs the caller-supplied payload into a session token with a fixed
// 365-day expiry. The payload is embedded as-is; no structural validation is
// performed on it.
func Issue(payload map[string]any) (string, error) {
	if len(jwtSecret) == 0 {
		return "", fmt.Errorf("JWT secret not initialized")
	}

	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	now := time.Now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(TokenTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// Verify validates a session token's signature and expiry and returns the
// decoded payload claims.
func Verify(tokenString string) (map[string]any, error) {
	if len(jwtSecret) == 0 {
		return nil, fmt.Errorf("JWT secret not initialized")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
