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

// categoryServiceFixtures holds all test dependencies for category service tests.
type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	txManager    *mockRepo.MockTransactionManager
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCategoryService(CategoryServiceParams{
		TxManager:    txManager,
		CategoryRepo: categoryRepo,
		Logger:       logger,
	})

	return categoryServiceFixtures{
		service:      service,
		txManager:    txManager,
		categoryRepo: categoryRepo,
	}
}

func TestCategoryService_Create_SuperadminIsApprovedImmediately(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	fx.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(ctx context.Context, category *entity.Category) {
			category.ID = uuid.New()
			assert.True(t, category.IsApproved)
		}).
		Return(nil)

	category, err := fx.service.Create(ctx, usecase.CreateCategoryInput{
		ActorID:   uuid.New(),
		ActorRole: entity.RoleSuperadmin,
		Name:      "Tech",
	})

	require.NoError(t, err)
	assert.True(t, category.IsApproved)
}

func TestCategoryService_Create_AdminGetsProvisionalWithRequest(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	adminID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
			mockRequestRepo := mockRepo.NewMockRequestRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockFactory.EXPECT().RequestRepo().Return(mockRequestRepo)

			mockCategoryRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Category")).
				Run(func(ctx context.Context, category *entity.Category) {
					category.ID = uuid.New()
					assert.False(t, category.IsApproved)
				}).
				Return(nil)

			mockRequestRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Request")).
				Run(func(ctx context.Context, request *entity.Request) {
					assert.Equal(t, entity.RequestTypeCategory, request.Type)
					assert.Equal(t, entity.RequestStatusPending, request.Status)
					assert.Equal(t, adminID, request.RequestedBy)
					assert.Equal(t, "Cooking", request.RequestedFor)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	category, err := fx.service.Create(ctx, usecase.CreateCategoryInput{
		ActorID:   adminID,
		ActorRole: entity.RoleAdmin,
		Name:      "Cooking",
	})

	require.NoError(t, err)
	assert.False(t, category.IsApproved)
}

func TestCategoryService_Create_RegularUserForbidden(t *testing.T) {
	fx := createTestCategoryService(t)

	_, err := fx.service.Create(context.Background(), usecase.CreateCategoryInput{
		ActorID:   uuid.New(),
		ActorRole: entity.RoleUser,
		Name:      "Nope",
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCategoryService_List_RegularViewerSeesApprovedOnly(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	approved := []*entity.Category{{ID: uuid.New(), Name: "Tech", IsApproved: true}}

	fx.categoryRepo.EXPECT().List(ctx, true).Return(approved, nil)

	categories, err := fx.service.List(ctx, entity.RoleUser)

	require.NoError(t, err)
	assert.Equal(t, approved, categories)
}

func TestCategoryService_List_SuperadminSeesProvisionalToo(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	all := []*entity.Category{
		{ID: uuid.New(), Name: "Tech", IsApproved: true},
		{ID: uuid.New(), Name: "Pending", IsApproved: false},
	}

	fx.categoryRepo.EXPECT().List(ctx, false).Return(all, nil)

	categories, err := fx.service.List(ctx, entity.RoleSuperadmin)

	require.NoError(t, err)
	assert.Len(t, categories, 2)
}

func TestCategoryService_Get_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.categoryRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.service.Get(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_Update_PartialFields(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	category := &entity.Category{ID: uuid.New(), Name: "Tech", Description: "old"}

	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	fx.categoryRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(ctx context.Context, updated *entity.Category) {
			assert.Equal(t, "Tech", updated.Name)
			assert.Equal(t, "new description", updated.Description)
		}).
		Return(nil)

	updated, err := fx.service.Update(ctx, usecase.UpdateCategoryInput{
		CategoryID:  category.ID,
		Description: "new description",
	})

	require.NoError(t, err)
	assert.Equal(t, "new description", updated.Description)
}

func TestCategoryService_Delete_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.categoryRepo.EXPECT().Delete(ctx, id).Return(repository.ErrCategoryNotFound)

	err := fx.service.Delete(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}
