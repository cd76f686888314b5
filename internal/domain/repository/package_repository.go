package repository

import (
	"context"
	"errors"

	"inkpress/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPackageNotFound is returned when a subscription package does not exist.
var ErrPackageNotFound = errors.New("package not found")

// PackageRepository defines the operations for subscription package persistence.
type PackageRepository interface {
	// FindByID retrieves a single package by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error)

	// List returns all packages, cheapest first.
	List(ctx context.Context) ([]*entity.Package, error)

	// Create persists a new package.
	Create(ctx context.Context, pkg *entity.Package) error

	// Update modifies an existing package.
	Update(ctx context.Context, pkg *entity.Package) error

	// Delete removes a package.
	Delete(ctx context.Context, id uuid.UUID) error
}
