package usecase

import (
	"context"

	"inkpress/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePackageInput defines the data required to create a subscription package.
type CreatePackageInput struct {
	Name        string
	Price       int64 // Rupees, must be > 0
	ExpiryDays  int   // Must be > 0
	Description string
}

// UpdatePackageInput defines the mutable package fields.
type UpdatePackageInput struct {
	PackageID   uuid.UUID
	Name        string
	Price       int64
	ExpiryDays  int
	Description string
}

// PackageUsecase defines the interface for subscription package CRUD.
// All mutating operations are superadmin-only, enforced at the router.
type PackageUsecase interface {
	Create(ctx context.Context, input CreatePackageInput) (*entity.Package, error)
	List(ctx context.Context) ([]*entity.Package, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Package, error)
	Update(ctx context.Context, input UpdatePackageInput) (*entity.Package, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
