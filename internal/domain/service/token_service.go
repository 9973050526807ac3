package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by identity-provider access tokens.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Roles  []string  `json:"roles"`
	Name   string    `json:"name,omitempty"`
	Email  string    `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenService validates bearer tokens issued by the identity provider.
type TokenService interface {
	// GenerateAccessToken signs a token for the given identity. Used by tooling and tests.
	GenerateAccessToken(claims Claims, ttl time.Duration) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
