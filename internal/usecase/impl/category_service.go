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

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a category. Superadmins get an approved category immediately.
// Admins get a provisional category paired with a pending approval request;
// the name is reserved either way because it is globally unique.
func (srv *categoryService) Create(ctx context.Context, input usecase.CreateCategoryInput) (*entity.Category, error) {
	if !input.ActorRole.IsStaff() {
		return nil, domainerrors.ErrForbidden
	}

	category := &entity.Category{
		Name:        input.Name,
		Image:       input.Image,
		Description: input.Description,
		IsApproved:  input.ActorRole == entity.RoleSuperadmin,
	}

	if input.ActorRole == entity.RoleSuperadmin {
		if err := srv.categoryRepo.Create(ctx, category); err != nil {
			return nil, err
		}

		srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID), slog.String("name", category.Name))

		return category, nil
	}

	// Admin path: category row and approval request land atomically.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CategoryRepo().Create(ctx, category); err != nil {
			return err
		}

		request := &entity.Request{
			Type:         entity.RequestTypeCategory,
			Description:  input.Description,
			Status:       entity.RequestStatusPending,
			RequestedBy:  input.ActorID,
			RequestedFor: input.Name,
		}

		return repoFactory.RequestRepo().Create(ctx, request)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Provisional category created, awaiting approval",
		slog.Any("categoryID", category.ID),
		slog.String("name", category.Name),
		slog.Any("requestedBy", input.ActorID),
	)

	return category, nil
}

// List returns approved categories for regular viewers and the full set,
// provisional included, for superadmins.
func (srv *categoryService) List(ctx context.Context, viewerRole entity.Role) ([]*entity.Category, error) {
	approvedOnly := viewerRole != entity.RoleSuperadmin

	categories, err := srv.categoryRepo.List(ctx, approvedOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// Get retrieves a single category.
func (srv *categoryService) Get(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

// Update modifies a category's display fields.
func (srv *categoryService) Update(ctx context.Context, input usecase.UpdateCategoryInput) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category for update")
	}

	if input.Name != "" {
		category.Name = input.Name
	}
	if input.Image != "" {
		category.Image = input.Image
	}
	if input.Description != "" {
		category.Description = input.Description
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Delete removes a category.
func (srv *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.Any("categoryID", id))

	return nil
}
