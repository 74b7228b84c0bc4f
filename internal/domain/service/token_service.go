package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for locally issued session tokens.
type Claims struct {
	UserID uuid.UUID
	Email  string
	jwt.RegisteredClaims
}

// TokenService issues session tokens for accounts created on this device.
// Sign-in through the remote store uses the store's own opaque token instead.
type TokenService interface {
	// GenerateToken creates a session token for the given user.
	GenerateToken(userID uuid.UUID, email string) (string, error)

	// ValidateToken checks the validity of a locally issued token string.
	ValidateToken(tokenString string) (*Claims, error)
}
