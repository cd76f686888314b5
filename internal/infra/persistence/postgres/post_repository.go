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

// postRepository implements the repository.PostRepository interface.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{
		db: db,
	}
}

// FindByID retrieves a single post with categories and author preloaded.
func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel

	if err := repo.db.WithContext(ctx).
		Preload("Categories").
		Preload("Author").
		Where("id = ?", id).
		First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by ID")
	}

	return toPostDomain(&postM), nil
}

// FindBySlug retrieves a single post by its unique slug.
func (repo *postRepository) FindBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	var postM model.PostModel

	if err := repo.db.WithContext(ctx).
		Preload("Categories").
		Preload("Author").
		Where("slug = ?", slug).
		First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by slug")
	}

	return toPostDomain(&postM), nil
}

// List returns all posts, newest first, with categories and author preloaded.
func (repo *postRepository) List(ctx context.Context) ([]*entity.Post, error) {
	var postModels []*model.PostModel

	if err := repo.db.WithContext(ctx).
		Preload("Categories").
		Preload("Author").
		Order("created_at DESC").
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return toPostDomainSlice(postModels), nil
}

// ListByCategory returns posts linked to the given category, newest first.
func (repo *postRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Post, error) {
	var postModels []*model.PostModel

	if err := repo.db.WithContext(ctx).
		Preload("Categories").
		Preload("Author").
		Joins("JOIN post_categories pc ON pc.post_model_id = posts.id").
		Where("pc.category_model_id = ?", categoryID).
		Order("posts.created_at DESC").
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list posts by category")
	}

	return toPostDomainSlice(postModels), nil
}

// ListByAuthor returns posts created by the given user, newest first.
func (repo *postRepository) ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*entity.Post, error) {
	var postModels []*model.PostModel

	if err := repo.db.WithContext(ctx).
		Preload("Categories").
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list posts by author")
	}

	return toPostDomainSlice(postModels), nil
}

// Create persists a new post together with its category links.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)
	for _, categoryID := range post.CategoryIDs {
		postM.Categories = append(postM.Categories, model.CategoryModel{ID: categoryID})
	}

	// Omit Categories upsert so provisional links don't touch category rows;
	// GORM still writes the join table entries.
	if err := repo.db.WithContext(ctx).
		Omit("Categories.*").
		Create(postM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPostSlugConflict
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid author or category reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Update modifies an existing post and replaces its category links.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"title":       post.Title,
			"slug":        post.Slug,
			"content":     post.Content,
			"cover_image": post.CoverImage,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrPostSlugConflict
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update post")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	if post.CategoryIDs != nil {
		categoryModels := make([]model.CategoryModel, 0, len(post.CategoryIDs))
		for _, categoryID := range post.CategoryIDs {
			categoryModels = append(categoryModels, model.CategoryModel{ID: categoryID})
		}

		if err := repo.db.WithContext(ctx).
			Model(&model.PostModel{ID: post.ID}).
			Association("Categories").
			Replace(categoryModels); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to replace post categories")
		}
	}

	return nil
}

// Delete removes a post and its category links.
func (repo *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Clear join table entries first; GORM does not cascade many2many deletes.
	if err := repo.db.WithContext(ctx).
		Model(&model.PostModel{ID: id}).
		Association("Categories").
		Clear(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear post categories")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PostModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete post")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPostDomain converts a GORM PostModel to a domain Post entity.
func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	categoryIDs := make([]uuid.UUID, 0, len(data.Categories))
	categories := make([]*entity.Category, 0, len(data.Categories))
	for i := range data.Categories {
		categoryIDs = append(categoryIDs, data.Categories[i].ID)
		categories = append(categories, toCategoryDomain(&data.Categories[i]))
	}

	return &entity.Post{
		ID:          data.ID,
		Title:       data.Title,
		Slug:        data.Slug,
		Content:     data.Content,
		CoverImage:  data.CoverImage,
		CreatedBy:   data.CreatedBy,
		CategoryIDs: categoryIDs,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Categories:  categories,
		Author:      toUserDomain(data.Author),
	}
}

func toPostDomainSlice(postModels []*model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toPostDomain(postM))
	}

	return posts
}

// fromPostDomain converts a domain Post entity to a GORM PostModel.
func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:         data.ID,
		Title:      data.Title,
		Slug:       data.Slug,
		Content:    data.Content,
		CoverImage: data.CoverImage,
		CreatedBy:  data.CreatedBy,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
