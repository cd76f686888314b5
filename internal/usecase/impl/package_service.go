package impl

import (
	"context"
	"log/slog"

	deliverycontext "inkpress/internal/delivery/context"
	"inkpress/internal/domain/entity"
	domainerrors "inkpress/internal/domain/errors"
	"inkpress/internal/domain/repository"
	"inkpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// packageService implements the PackageUsecase interface.
type packageService struct {
	packageRepo repository.PackageRepository
	logger      *slog.Logger
}

// PackageServiceParams holds dependencies for PackageService, injected by Fx.
type PackageServiceParams struct {
	fx.In

	PackageRepo repository.PackageRepository
	Logger      *slog.Logger
}

// NewPackageService is the constructor for packageService.
func NewPackageService(params PackageServiceParams) usecase.PackageUsecase {
	return &packageService{
		packageRepo: params.PackageRepo,
		logger:      params.Logger,
	}
}

func (srv *packageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validatePackageFields(price int64, expiryDays int) error {
	if price <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("package price must be greater than zero")
	}
	if expiryDays <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("package expiry days must be greater than zero")
	}

	return nil
}

// Create adds a new subscription package.
func (srv *packageService) Create(ctx context.Context, input usecase.CreatePackageInput) (*entity.Package, error) {
	if err := validatePackageFields(input.Price, input.ExpiryDays); err != nil {
		return nil, err
	}

	pkg := &entity.Package{
		Name:        input.Name,
		Price:       input.Price,
		ExpiryDays:  input.ExpiryDays,
		Description: input.Description,
	}
	if err := srv.packageRepo.Create(ctx, pkg); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Package created", slog.Any("packageID", pkg.ID), slog.String("name", pkg.Name))

	return pkg, nil
}

// List returns all packages.
func (srv *packageService) List(ctx context.Context) ([]*entity.Package, error) {
	packages, err := srv.packageRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list packages")
	}

	return packages, nil
}

// Get retrieves a single package.
func (srv *packageService) Get(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	pkg, err := srv.packageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, domainerrors.ErrPackageNotFound
		}

		return nil, errors.Wrap(err, "failed to find package")
	}

	return pkg, nil
}

// Update modifies an existing package.
func (srv *packageService) Update(ctx context.Context, input usecase.UpdatePackageInput) (*entity.Package, error) {
	if err := validatePackageFields(input.Price, input.ExpiryDays); err != nil {
		return nil, err
	}

	pkg, err := srv.packageRepo.FindByID(ctx, input.PackageID)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, domainerrors.ErrPackageNotFound
		}

		return nil, errors.Wrap(err, "failed to find package for update")
	}

	pkg.Name = input.Name
	pkg.Price = input.Price
	pkg.ExpiryDays = input.ExpiryDays
	pkg.Description = input.Description

	if err := srv.packageRepo.Update(ctx, pkg); err != nil {
		return nil, err
	}

	return pkg, nil
}

// Delete removes a package.
func (srv *packageService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.packageRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return domainerrors.ErrPackageNotFound
		}

		return errors.Wrap(err, "failed to delete package")
	}

	srv.log(ctx).Info("Package deleted", slog.Any("packageID", id))

	return nil
}
