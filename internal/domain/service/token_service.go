package service

import (
	"lifeline/internal/domain/entity"
)

// TokenClaims are the verified contents of an access token.
type TokenClaims struct {
	UserID string
	Email  string
}

// TokenService issues and verifies JWT token pairs.
type TokenService interface {
	IssuePair(user *entity.User) (*entity.TokenPair, error)
	VerifyAccessToken(token string) (*TokenClaims, error)
	VerifyRefreshToken(token string) (*TokenClaims, error)
	// HashToken returns the SHA-256 hex digest used to store refresh tokens.
	HashToken(token string) string
}
