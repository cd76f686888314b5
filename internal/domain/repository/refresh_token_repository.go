package repository

import (
	"context"
	"errors"

	"inkpress/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token is unknown or already revoked.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the operations for refresh token persistence.
// Tokens are stored hashed; lookups take the hash, never the raw token.
type RefreshTokenRepository interface {
	// Create persists a new refresh token record.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByTokenHash retrieves a refresh token by its hash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByTokenHash removes a single refresh token, ending that session.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteByUserID removes all refresh tokens for a user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes tokens past their expiry and reports how many were deleted.
	DeleteExpired(ctx context.Context) (int64, error)
}
