package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/golang-jwt/jwt"

	"promarket/config"
	"promarket/models"
)

// HashToken computes a SHA-256 hash of the token string. Session cache keys
// use the hash so raw tokens never reach Redis.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
}

// ViewerFromToken validates a session token issued by the backend and
// extracts the viewer identity from its claims.
func ViewerFromToken(tokenString string) (*models.Viewer, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	viewer := &models.Viewer{}
	if sub, ok := claims["sub"].(string); ok {
		viewer.ID = sub
	}
	if role, ok := claims["role"].(string); ok {
		viewer.Role = role
	}
	if email, ok := claims["email"].(string); ok {
		viewer.Email = email
	}
	if viewer.ID == "" || viewer.Role == "" {
		return nil, errors.New("token missing subject or role")
	}
	return viewer, nil
}
