package postgres

import (
	"context"

	"inkpress/internal/domain/entity"
	domainerrors "inkpress/internal/domain/errors"
	"inkpress/internal/domain/repository"
	"inkpress/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// packageRepository implements the repository.PackageRepository interface.
type packageRepository struct {
	db *gorm.DB
}

// NewPackageRepository is the constructor for packageRepository.
func NewPackageRepository(db *gorm.DB) repository.PackageRepository {
	return &packageRepository{
		db: db,
	}
}

// FindByID retrieves a single package by ID.
func (repo *packageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	var packageM model.PackageModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&packageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPackageNotFound
		}

		return nil, errors.Wrap(err, "failed to find package by ID")
	}

	return toPackageDomain(&packageM), nil
}

// List returns all packages, cheapest first.
func (repo *packageRepository) List(ctx context.Context) ([]*entity.Package, error) {
	var packageModels []*model.PackageModel

	if err := repo.db.WithContext(ctx).
		Order("price ASC").
		Find(&packageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list packages")
	}

	packages := make([]*entity.Package, 0, len(packageModels))
	for _, packageM := range packageModels {
		packages = append(packages, toPackageDomain(packageM))
	}

	return packages, nil
}

// Create persists a new package.
func (repo *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	packageM := fromPackageDomain(pkg)

	if err := repo.db.WithContext(ctx).Create(packageM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required package information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create package")
	}

	pkg.ID = packageM.ID
	pkg.CreatedAt = packageM.CreatedAt
	pkg.UpdatedAt = packageM.UpdatedAt

	return nil
}

// Update modifies an existing package.
func (repo *packageRepository) Update(ctx context.Context, pkg *entity.Package) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PackageModel{}).
		Where("id = ?", pkg.ID).
		Updates(map[string]any{
			"name":        pkg.Name,
			"price":       pkg.Price,
			"expiry_days": pkg.ExpiryDays,
			"description": pkg.Description,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update package")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPackageNotFound
	}

	return nil
}

// Delete removes a package.
func (repo *packageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PackageModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete package")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPackageNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPackageDomain converts a GORM PackageModel to a domain Package entity.
func toPackageDomain(data *model.PackageModel) *entity.Package {
	if data == nil {
		return nil
	}

	return &entity.Package{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		ExpiryDays:  data.ExpiryDays,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromPackageDomain converts a domain Package entity to a GORM PackageModel.
func fromPackageDomain(data *entity.Package) *model.PackageModel {
	if data == nil {
		return nil
	}

	return &model.PackageModel{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		ExpiryDays:  data.ExpiryDays,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
