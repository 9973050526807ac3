// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"ecocart/config"
	"ecocart/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInvalidToken is returned for tokens that fail parsing, signature or claim checks.
var ErrInvalidToken = errors.New("invalid token")

// jwtService validates HS256 access tokens shared with the identity provider.
type jwtService struct {
	accessSecret []byte
	issuer       string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		issuer:       cfg.Env.ServiceName,
	}, nil
}

// GenerateAccessToken signs claims with the shared secret.
func (s *jwtService) GenerateAccessToken(claims service.Claims, ttl time.Duration) (string, error) {
	if claims.UserID == uuid.Nil {
		return "", errors.New("user id is required")
	}

	now := time.Now()
	claims.Subject = claims.UserID.String()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	if claims.Issuer == "" {
		claims.Issuer = s.issuer
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks signature, expiry and the user id claim.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID == uuid.Nil {
		subject, err := uuid.Parse(claims.Subject)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidToken, "missing user id")
		}
		claims.UserID = subject
	}

	return claims, nil
}
