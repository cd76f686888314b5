package usecase

import (
	"context"

	"inkpress/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePostInput defines the data required to publish a post.
type CreatePostInput struct {
	AuthorID    uuid.UUID
	AuthorRole  entity.Role
	Title       string
	Content     string
	CoverImage  string
	CategoryIDs []uuid.UUID
}

// UpdatePostInput defines the mutable post fields. A nil CategoryIDs
// leaves the category links untouched.
type UpdatePostInput struct {
	PostID      uuid.UUID
	ActorID     uuid.UUID
	ActorRole   entity.Role
	Title       string
	Content     string
	CoverImage  string
	CategoryIDs []uuid.UUID
}

// DeletePostInput identifies the post and the actor requesting deletion.
type DeletePostInput struct {
	PostID    uuid.UUID
	ActorID   uuid.UUID
	ActorRole entity.Role
}

// PostUsecase defines the interface for post business operations.
type PostUsecase interface {
	Create(ctx context.Context, input CreatePostInput) (*entity.Post, error)
	Update(ctx context.Context, input UpdatePostInput) (*entity.Post, error)
	Delete(ctx context.Context, input DeletePostInput) error

	List(ctx context.Context) ([]*entity.Post, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Post, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Post, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error)
}
