package repository

import (
	"context"
	"errors"

	"inkpress/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category does not exist.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the operations for category persistence.
type CategoryRepository interface {
	// FindByID retrieves a single category by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByName retrieves a single category by its unique name.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// List returns categories; when approvedOnly is true, provisional ones are skipped.
	List(ctx context.Context, approvedOnly bool) ([]*entity.Category, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update modifies an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// SetApproved flips the approval flag of a category.
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error

	// Delete removes a category.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByIDs counts how many of the given IDs exist as approved categories.
	CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)

	// IncrementPostCounts bumps the post counter of every listed category by one.
	IncrementPostCounts(ctx context.Context, ids []uuid.UUID) error

	// DecrementPostCounts lowers the post counter of every listed category by one.
	DecrementPostCounts(ctx context.Context, ids []uuid.UUID) error
}
