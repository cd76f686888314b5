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
	mockSvc "inkpress/internal/mocks/service"
	"inkpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// postServiceFixtures holds all test dependencies for post service tests.
type postServiceFixtures struct {
	service        usecase.PostUsecase
	txManager      *mockRepo.MockTransactionManager
	postRepo       *mockRepo.MockPostRepository
	categoryRepo   *mockRepo.MockCategoryRepository
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestPostService(t *testing.T) postServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	postRepo := mockRepo.NewMockPostRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPostService(PostServiceParams{
		TxManager:      txManager,
		PostRepo:       postRepo,
		CategoryRepo:   categoryRepo,
		EventPublisher: eventPublisher,
		Logger:         logger,
	})

	return postServiceFixtures{
		service:        service,
		txManager:      txManager,
		postRepo:       postRepo,
		categoryRepo:   categoryRepo,
		eventPublisher: eventPublisher,
	}
}

func TestPostService_Create_AdminPublishesAndJoinsRoster(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	authorID := uuid.New()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().CountByIDs(ctx, []uuid.UUID{categoryID}).Return(1, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
			mockAdminRecordRepo := mockRepo.NewMockAdminRecordRepository(t)

			mockFactory.EXPECT().PostRepo().Return(mockPostRepo)
			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockFactory.EXPECT().AdminRecordRepo().Return(mockAdminRecordRepo)

			mockPostRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Post")).
				Run(func(ctx context.Context, post *entity.Post) {
					post.ID = uuid.New()
					assert.Equal(t, "hello-world", post.Slug)
				}).
				Return(nil)
			mockCategoryRepo.EXPECT().IncrementPostCounts(ctx, []uuid.UUID{categoryID}).Return(nil)
			mockAdminRecordRepo.EXPECT().
				AppendPost(ctx, authorID, mock.AnythingOfType("uuid.UUID")).
				Return(nil)

			return fn(mockFactory)
		})

	fx.eventPublisher.EXPECT().
		PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	post, err := fx.service.Create(ctx, usecase.CreatePostInput{
		AuthorID:    authorID,
		AuthorRole:  entity.RoleAdmin,
		Title:       "Hello World",
		Content:     "body",
		CategoryIDs: []uuid.UUID{categoryID},
	})

	require.NoError(t, err)
	assert.Equal(t, "hello-world", post.Slug)
	assert.Equal(t, authorID, post.CreatedBy)
}

func TestPostService_Create_SuperadminSkipsRoster(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().CountByIDs(ctx, []uuid.UUID{categoryID}).Return(1, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().PostRepo().Return(mockPostRepo)
			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockPostRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Post")).
				Run(func(ctx context.Context, post *entity.Post) {
					post.ID = uuid.New()
				}).
				Return(nil)
			mockCategoryRepo.EXPECT().IncrementPostCounts(ctx, []uuid.UUID{categoryID}).Return(nil)

			return fn(mockFactory)
		})

	fx.eventPublisher.EXPECT().
		PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	_, err := fx.service.Create(ctx, usecase.CreatePostInput{
		AuthorID:    uuid.New(),
		AuthorRole:  entity.RoleSuperadmin,
		Title:       "Editorial",
		Content:     "body",
		CategoryIDs: []uuid.UUID{categoryID},
	})

	require.NoError(t, err)
}

func TestPostService_Create_RegularUserForbidden(t *testing.T) {
	fx := createTestPostService(t)

	_, err := fx.service.Create(context.Background(), usecase.CreatePostInput{
		AuthorID:    uuid.New(),
		AuthorRole:  entity.RoleUser,
		Title:       "Nope",
		CategoryIDs: []uuid.UUID{uuid.New()},
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPostService_Create_UnknownCategoryRejectsWholePost(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	// Only one of the two IDs exists: nothing is written.
	fx.categoryRepo.EXPECT().CountByIDs(ctx, ids).Return(1, nil)

	_, err := fx.service.Create(ctx, usecase.CreatePostInput{
		AuthorID:    uuid.New(),
		AuthorRole:  entity.RoleAdmin,
		Title:       "Partial",
		CategoryIDs: ids,
	})

	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestPostService_Create_NoCategories(t *testing.T) {
	fx := createTestPostService(t)

	_, err := fx.service.Create(context.Background(), usecase.CreatePostInput{
		AuthorID:   uuid.New(),
		AuthorRole: entity.RoleAdmin,
		Title:      "Uncategorized",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPostService_Create_DuplicateCategoryIDsCollapse(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().CountByIDs(ctx, []uuid.UUID{categoryID}).Return(1, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().PostRepo().Return(mockPostRepo)
			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockPostRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Post")).
				Run(func(ctx context.Context, post *entity.Post) {
					post.ID = uuid.New()
					assert.Equal(t, []uuid.UUID{categoryID}, post.CategoryIDs)
				}).
				Return(nil)
			mockCategoryRepo.EXPECT().IncrementPostCounts(ctx, []uuid.UUID{categoryID}).Return(nil)

			return fn(mockFactory)
		})

	fx.eventPublisher.EXPECT().
		PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	_, err := fx.service.Create(ctx, usecase.CreatePostInput{
		AuthorID:    uuid.New(),
		AuthorRole:  entity.RoleSuperadmin,
		Title:       "Dedup",
		CategoryIDs: []uuid.UUID{categoryID, categoryID},
	})

	require.NoError(t, err)
}

func TestPostService_Create_SlugConflict(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().CountByIDs(ctx, []uuid.UUID{categoryID}).Return(1, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)

			mockFactory.EXPECT().PostRepo().Return(mockPostRepo)
			mockPostRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Post")).
				Return(repository.ErrPostSlugConflict)

			return fn(mockFactory)
		})

	_, err := fx.service.Create(ctx, usecase.CreatePostInput{
		AuthorID:    uuid.New(),
		AuthorRole:  entity.RoleAdmin,
		Title:       "Hello World",
		CategoryIDs: []uuid.UUID{categoryID},
	})

	assert.ErrorIs(t, err, domainerrors.ErrPostSlugConflict)
}

func TestPostService_Update_AuthorEditsOwnPost(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	authorID := uuid.New()
	oldCategory := uuid.New()
	newCategory := uuid.New()
	post := &entity.Post{
		ID:          uuid.New(),
		Title:       "Old Title",
		Slug:        "old-title",
		CreatedBy:   authorID,
		CategoryIDs: []uuid.UUID{oldCategory},
	}

	fx.postRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)
	fx.categoryRepo.EXPECT().CountByIDs(ctx, []uuid.UUID{newCategory}).Return(1, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().PostRepo().Return(mockPostRepo)
			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockPostRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Post")).
				Run(func(ctx context.Context, updated *entity.Post) {
					assert.Equal(t, "New Title", updated.Title)
					assert.Equal(t, "new-title", updated.Slug)
				}).
				Return(nil)
			mockCategoryRepo.EXPECT().DecrementPostCounts(ctx, []uuid.UUID{oldCategory}).Return(nil)
			mockCategoryRepo.EXPECT().IncrementPostCounts(ctx, []uuid.UUID{newCategory}).Return(nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.Update(ctx, usecase.UpdatePostInput{
		PostID:      post.ID,
		ActorID:     authorID,
		ActorRole:   entity.RoleAdmin,
		Title:       "New Title",
		CategoryIDs: []uuid.UUID{newCategory},
	})

	require.NoError(t, err)
	assert.Equal(t, "new-title", updated.Slug)
}

func TestPostService_Update_NilCategoriesLeaveLinksUntouched(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	authorID := uuid.New()
	categoryID := uuid.New()
	post := &entity.Post{
		ID:          uuid.New(),
		Title:       "Title",
		Slug:        "title",
		CreatedBy:   authorID,
		CategoryIDs: []uuid.UUID{categoryID},
	}

	fx.postRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)

			mockFactory.EXPECT().PostRepo().Return(mockPostRepo)
			mockPostRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Post")).
				Return(nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.Update(ctx, usecase.UpdatePostInput{
		PostID:    post.ID,
		ActorID:   authorID,
		ActorRole: entity.RoleAdmin,
		Content:   "revised body",
	})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{categoryID}, updated.CategoryIDs)
}

func TestPostService_Update_StrangerForbidden(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	post := &entity.Post{ID: uuid.New(), CreatedBy: uuid.New()}

	fx.postRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)

	_, err := fx.service.Update(ctx, usecase.UpdatePostInput{
		PostID:    post.ID,
		ActorID:   uuid.New(),
		ActorRole: entity.RoleUser,
		Title:     "Takeover",
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPostService_Delete_RoleMatrix(t *testing.T) {
	authorID := uuid.New()

	tests := []struct {
		name      string
		actorID   uuid.UUID
		actorRole entity.Role
		allowed   bool
	}{
		{"author deletes own post", authorID, entity.RoleAdmin, true},
		{"superadmin deletes any post", uuid.New(), entity.RoleSuperadmin, true},
		{"another admin deletes any post", uuid.New(), entity.RoleAdmin, true},
		{"regular user cannot delete another's post", uuid.New(), entity.RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPostService(t)

			ctx := context.Background()
			categoryID := uuid.New()
			post := &entity.Post{
				ID:          uuid.New(),
				CreatedBy:   authorID,
				CategoryIDs: []uuid.UUID{categoryID},
			}

			fx.postRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)

			if tt.allowed {
				fx.txManager.EXPECT().
					Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
					RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
						mockFactory := mockRepo.NewMockRepositoryFactory(t)
						mockPostRepo := mockRepo.NewMockPostRepository(t)
						mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

						mockFactory.EXPECT().PostRepo().Return(mockPostRepo)
						mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

						mockCategoryRepo.EXPECT().
							DecrementPostCounts(ctx, []uuid.UUID{categoryID}).
							Return(nil)
						mockPostRepo.EXPECT().Delete(ctx, post.ID).Return(nil)

						return fn(mockFactory)
					})
			}

			err := fx.service.Delete(ctx, usecase.DeletePostInput{
				PostID:    post.ID,
				ActorID:   tt.actorID,
				ActorRole: tt.actorRole,
			})

			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domainerrors.ErrForbidden)
			}
		})
	}
}

func TestPostService_GetBySlug_NotFound(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	fx.postRepo.EXPECT().FindBySlug(ctx, "missing").Return(nil, repository.ErrPostNotFound)

	_, err := fx.service.GetBySlug(ctx, "missing")

	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestPostService_ListByCategory(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	expected := []*entity.Post{{ID: uuid.New()}}

	fx.postRepo.EXPECT().ListByCategory(ctx, categoryID).Return(expected, nil)

	posts, err := fx.service.ListByCategory(ctx, categoryID)

	require.NoError(t, err)
	assert.Equal(t, expected, posts)
}
