package repository

import (
	"context"
	"errors"

	"inkpress/internal/domain/entity"

	"github.com/google/uuid"
)

// Post persistence errors.
var (
	ErrPostNotFound     = errors.New("post not found")
	ErrPostSlugConflict = errors.New("post slug already exists")
)

// PostRepository defines the operations for post persistence.
type PostRepository interface {
	// FindByID retrieves a single post with categories and author preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// FindBySlug retrieves a single post by its unique slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Post, error)

	// List returns all posts, newest first, with categories and author preloaded.
	List(ctx context.Context) ([]*entity.Post, error)

	// ListByCategory returns posts linked to the given category, newest first.
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Post, error)

	// ListByAuthor returns posts created by the given user, newest first.
	ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*entity.Post, error)

	// Create persists a new post together with its category links.
	// Returns ErrPostSlugConflict when the slug is already taken.
	Create(ctx context.Context, post *entity.Post) error

	// Update modifies an existing post and replaces its category links.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes a post and its category links.
	Delete(ctx context.Context, id uuid.UUID) error
}
