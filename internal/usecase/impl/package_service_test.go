package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"inkpress/internal/domain/entity"
	domainerrors "inkpress/internal/domain/errors"
	"inkpress/internal/domain/repository"
	mockRepo "inkpress/internal/mocks/repository"
	"inkpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPackageService(t *testing.T) (usecase.PackageUsecase, *mockRepo.MockPackageRepository) {
	packageRepo := mockRepo.NewMockPackageRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPackageService(PackageServiceParams{
		PackageRepo: packageRepo,
		Logger:      logger,
	})

	return service, packageRepo
}

func TestPackageService_Create_Success(t *testing.T) {
	service, packageRepo := createTestPackageService(t)

	ctx := context.Background()
	packageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Package")).
		Run(func(ctx context.Context, pkg *entity.Package) {
			pkg.ID = uuid.New()
		}).
		Return(nil)

	pkg, err := service.Create(ctx, usecase.CreatePackageInput{
		Name:       "Monthly",
		Price:      500,
		ExpiryDays: 30,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(500), pkg.Price)
	assert.Equal(t, 30, pkg.ExpiryDays)
}

func TestPackageService_Create_RejectsNonPositivePrice(t *testing.T) {
	service, _ := createTestPackageService(t)

	_, err := service.Create(context.Background(), usecase.CreatePackageInput{
		Name:       "Free",
		Price:      0,
		ExpiryDays: 30,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPackageService_Create_RejectsNonPositiveExpiry(t *testing.T) {
	service, _ := createTestPackageService(t)

	_, err := service.Create(context.Background(), usecase.CreatePackageInput{
		Name:       "Instant",
		Price:      500,
		ExpiryDays: 0,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPackageService_Update_ReplacesAllFields(t *testing.T) {
	service, packageRepo := createTestPackageService(t)

	ctx := context.Background()
	existing := &entity.Package{ID: uuid.New(), Name: "Monthly", Price: 500, ExpiryDays: 30}

	packageRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	packageRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Package")).
		Run(func(ctx context.Context, pkg *entity.Package) {
			assert.Equal(t, "Yearly", pkg.Name)
			assert.Equal(t, int64(5000), pkg.Price)
			assert.Equal(t, 365, pkg.ExpiryDays)
		}).
		Return(nil)

	updated, err := service.Update(ctx, usecase.UpdatePackageInput{
		PackageID:  existing.ID,
		Name:       "Yearly",
		Price:      5000,
		ExpiryDays: 365,
	})

	require.NoError(t, err)
	assert.Equal(t, "Yearly", updated.Name)
}

func TestPackageService_Get_NotFound(t *testing.T) {
	service, packageRepo := createTestPackageService(t)

	ctx := context.Background()
	id := uuid.New()

	packageRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrPackageNotFound)

	_, err := service.Get(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrPackageNotFound)
}

func TestPackageService_List(t *testing.T) {
	service, packageRepo := createTestPackageService(t)

	ctx := context.Background()
	expected := []*entity.Package{
		{ID: uuid.New(), Name: "Monthly", Price: 500},
		{ID: uuid.New(), Name: "Yearly", Price: 5000},
	}

	packageRepo.EXPECT().List(ctx).Return(expected, nil)

	packages, err := service.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, packages)
}
