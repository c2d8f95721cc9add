package repository

import (
	"context"

	"lifeline/internal/domain/entity"
)

// RefreshTokenRepository persists hashed refresh tokens.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)
	Revoke(ctx context.Context, id string) error
	RevokeAllForUser(ctx context.Context, userID string) error
	// DeleteExpired removes tokens past their expiry, returning the count.
	DeleteExpired(ctx context.Context) (int64, error)
	// CountActiveForUser returns the number of unexpired, unrevoked tokens.
	CountActiveForUser(ctx context.Context, userID string) (int64, error)
	// RevokeOldestForUser revokes the oldest active tokens until at most
	// keep remain.
	RevokeOldestForUser(ctx context.Context, userID string, keep int) error
}
