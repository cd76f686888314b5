package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "inkpress/internal/delivery/context"
	"inkpress/internal/domain/entity"
	domainerrors "inkpress/internal/domain/errors"
	"inkpress/internal/domain/repository"
	"inkpress/internal/domain/service"
	"inkpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager      repository.TransactionManager
	postRepo       repository.PostRepository
	categoryRepo   repository.CategoryRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	PostRepo       repository.PostRepository
	CategoryRepo   repository.CategoryRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		txManager:      params.TxManager,
		postRepo:       params.PostRepo,
		categoryRepo:   params.CategoryRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// dedupeIDs drops duplicate category IDs while preserving order.
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique
}

// validateCategories fails unless every listed ID names an existing category.
// Approval status is irrelevant here; provisional categories accept posts too.
func validateCategories(ctx context.Context, categoryRepo repository.CategoryRepository, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("at least one category is required")
	}

	count, err := categoryRepo.CountByIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to count categories")
	}
	if count != int64(len(ids)) {
		return domainerrors.ErrCategoryNotFound.WrapMessage("one or more categories do not exist")
	}

	return nil
}

// canModify reports whether the actor may edit or delete the post.
// Staff manage any post; everyone else only their own.
func canModify(post *entity.Post, actorID uuid.UUID, actorRole entity.Role) bool {
	return actorRole.IsStaff() || post.CreatedBy == actorID
}

// Create publishes a post. The post row, the category counters and the
// author's roster link land in one transaction, so a slug conflict rolls
// everything back.
func (srv *postService) Create(ctx context.Context, input usecase.CreatePostInput) (*entity.Post, error) {
	if !input.AuthorRole.IsStaff() {
		return nil, domainerrors.ErrForbidden
	}

	categoryIDs := dedupeIDs(input.CategoryIDs)
	if err := validateCategories(ctx, srv.categoryRepo, categoryIDs); err != nil {
		return nil, err
	}

	post := &entity.Post{
		Title:       input.Title,
		Slug:        entity.Slugify(input.Title),
		Content:     input.Content,
		CoverImage:  input.CoverImage,
		CreatedBy:   input.AuthorID,
		CategoryIDs: categoryIDs,
	}
	if post.Slug == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title yields an empty slug")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.PostRepo().Create(ctx, post); err != nil {
			if errors.Is(err, repository.ErrPostSlugConflict) {
				return domainerrors.ErrPostSlugConflict
			}

			return err
		}

		if err := repoFactory.CategoryRepo().IncrementPostCounts(ctx, categoryIDs); err != nil {
			return errors.Wrap(err, "failed to bump category counters")
		}

		if input.AuthorRole == entity.RoleAdmin {
			if err := repoFactory.AdminRecordRepo().AppendPost(ctx, input.AuthorID, post.ID); err != nil {
				return errors.Wrap(err, "failed to link post to admin record")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Post published",
		slog.Any("postID", post.ID),
		slog.String("slug", post.Slug),
		slog.Any("authorID", input.AuthorID),
	)

	srv.publishPostEvent(ctx, post)

	return post, nil
}

// Update edits a post. Category links are replaced only when the input
// carries a non-nil CategoryIDs slice; the counters of removed and added
// categories move with the links.
func (srv *postService) Update(ctx context.Context, input usecase.UpdatePostInput) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post for update")
	}

	if !canModify(post, input.ActorID, input.ActorRole) {
		return nil, domainerrors.ErrForbidden
	}

	if input.Title != "" && input.Title != post.Title {
		post.Title = input.Title
		post.Slug = entity.Slugify(input.Title)
		if post.Slug == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("title yields an empty slug")
		}
	}
	if input.Content != "" {
		post.Content = input.Content
	}
	if input.CoverImage != "" {
		post.CoverImage = input.CoverImage
	}

	previousIDs := post.CategoryIDs
	var newIDs []uuid.UUID
	if input.CategoryIDs != nil {
		newIDs = dedupeIDs(input.CategoryIDs)
		if err := validateCategories(ctx, srv.categoryRepo, newIDs); err != nil {
			return nil, err
		}
		post.CategoryIDs = newIDs
	} else {
		// Leave the links untouched. The repository skips the
		// association replace when CategoryIDs is nil.
		post.CategoryIDs = nil
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.PostRepo().Update(ctx, post); err != nil {
			if errors.Is(err, repository.ErrPostSlugConflict) {
				return domainerrors.ErrPostSlugConflict
			}

			return err
		}

		if newIDs == nil {
			return nil
		}

		removed, added := diffIDs(previousIDs, newIDs)
		if len(removed) > 0 {
			if err := repoFactory.CategoryRepo().DecrementPostCounts(ctx, removed); err != nil {
				return errors.Wrap(err, "failed to lower category counters")
			}
		}
		if len(added) > 0 {
			if err := repoFactory.CategoryRepo().IncrementPostCounts(ctx, added); err != nil {
				return errors.Wrap(err, "failed to bump category counters")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if newIDs == nil {
		post.CategoryIDs = previousIDs
	}

	return post, nil
}

// diffIDs splits the transition between two ID sets into removals and additions.
func diffIDs(before, after []uuid.UUID) (removed, added []uuid.UUID) {
	beforeSet := make(map[uuid.UUID]struct{}, len(before))
	for _, id := range before {
		beforeSet[id] = struct{}{}
	}
	afterSet := make(map[uuid.UUID]struct{}, len(after))
	for _, id := range after {
		afterSet[id] = struct{}{}
	}

	for _, id := range before {
		if _, ok := afterSet[id]; !ok {
			removed = append(removed, id)
		}
	}
	for _, id := range after {
		if _, ok := beforeSet[id]; !ok {
			added = append(added, id)
		}
	}

	return removed, added
}

// Delete removes a post and lowers the counters of its categories.
func (srv *postService) Delete(ctx context.Context, input usecase.DeletePostInput) error {
	post, err := srv.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound
		}

		return errors.Wrap(err, "failed to find post for deletion")
	}

	if !canModify(post, input.ActorID, input.ActorRole) {
		return domainerrors.ErrForbidden
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if len(post.CategoryIDs) > 0 {
			if err := repoFactory.CategoryRepo().DecrementPostCounts(ctx, post.CategoryIDs); err != nil {
				return errors.Wrap(err, "failed to lower category counters")
			}
		}

		return repoFactory.PostRepo().Delete(ctx, input.PostID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Post deleted",
		slog.Any("postID", input.PostID),
		slog.Any("actorID", input.ActorID),
	)

	return nil
}

func (srv *postService) publishPostEvent(ctx context.Context, post *entity.Post) {
	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.EventPostPublished,
		SubjectID:  post.ID.String(),
		ActorID:    post.CreatedBy.String(),
		OccurredAt: time.Now().UTC(),
		Attributes: map[string]string{
			"slug": post.Slug,
		},
	}

	if err := srv.eventPublisher.PublishEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish post event",
			slog.Any("postID", post.ID),
			slog.Any("error", err),
		)
	}
}

// List returns all posts, newest first.
func (srv *postService) List(ctx context.Context) ([]*entity.Post, error) {
	posts, err := srv.postRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// Get retrieves a single post by ID.
func (srv *postService) Get(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}

// GetBySlug retrieves a single post by its URL slug.
func (srv *postService) GetBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	post, err := srv.postRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by slug")
	}

	return post, nil
}

// ListByCategory returns posts filed under the given category.
func (srv *postService) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Post, error) {
	posts, err := srv.postRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts by category")
	}

	return posts, nil
}

// ListByAuthor returns posts created by the given user.
func (srv *postService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error) {
	posts, err := srv.postRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts by author")
	}

	return posts, nil
}
