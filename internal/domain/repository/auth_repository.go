package repository

import (
	"context"
	"errors"

	"inkpress/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAuthNotFound is returned when no authentication record matches the query.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository defines the operations for authentication method persistence.
type AuthRepository interface {
	// FindByUserAndProvider retrieves an authentication record for a user and provider pair.
	FindByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Authentication, error)

	// FindByProviderUID retrieves an authentication record by provider and the provider's user ID.
	FindByProviderUID(ctx context.Context, provider entity.ProviderType, providerUID string) (*entity.Authentication, error)

	// Create persists a new authentication record.
	Create(ctx context.Context, auth *entity.Authentication) error

	// UpdatePasswordHash replaces the stored password hash for an email authentication.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}
