package usecase

import (
	"context"

	"inkpress/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCategoryInput defines the data required to create a category.
// Superadmins create approved categories directly; admins create them
// provisionally paired with a pending approval request.
type CreateCategoryInput struct {
	ActorID     uuid.UUID
	ActorRole   entity.Role
	Name        string
	Image       string
	Description string
}

// UpdateCategoryInput defines the mutable category fields.
type UpdateCategoryInput struct {
	CategoryID  uuid.UUID
	Name        string
	Image       string
	Description string
}

// CategoryUsecase defines the interface for category business operations.
type CategoryUsecase interface {
	Create(ctx context.Context, input CreateCategoryInput) (*entity.Category, error)

	// List returns approved categories for regular viewers and the full
	// set, provisional included, for superadmins.
	List(ctx context.Context, viewerRole entity.Role) ([]*entity.Category, error)

	Get(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	Update(ctx context.Context, input UpdateCategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
