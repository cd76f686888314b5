package handler

import (
	"log/slog"
	"net/http"

	"inkpress/internal/delivery/http/middleware"
	"inkpress/internal/delivery/http/response"
	"inkpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	PostUC usecase.PostUsecase
	Logger *slog.Logger
}

// PostHandler serves post publishing and browsing.
type PostHandler struct {
	postUC usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler.
func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{
		postUC: params.PostUC,
		logger: params.Logger,
	}
}

// CreatePostRequest represents the body for publishing a post.
type CreatePostRequest struct {
	Title       string   `json:"title" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	CoverImage  string   `json:"cover_image,omitempty"`
	CategoryIDs []string `json:"category_ids" validate:"required,min=1,dive,uuid"`
}

// UpdatePostRequest represents the body for editing a post. Omitting
// category_ids leaves the category links untouched.
type UpdatePostRequest struct {
	Title       string   `json:"title,omitempty"`
	Content     string   `json:"content,omitempty"`
	CoverImage  string   `json:"cover_image,omitempty"`
	CategoryIDs []string `json:"category_ids,omitempty" validate:"omitempty,dive,uuid"`
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// Create publishes a new post authored by the caller.
func (h *PostHandler) Create(c echo.Context) error {
	authorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	authorRole, ok := middleware.GetRole(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid role in token")
	}

	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	categoryIDs, err := parseUUIDs(req.CategoryIDs)
	if err != nil {
		return response.BadRequest(c, "INVALID_CATEGORY_ID", "Invalid category ID format")
	}

	post, err := h.postUC.Create(c.Request().Context(), usecase.CreatePostInput{
		AuthorID:    authorID,
		AuthorRole:  authorRole,
		Title:       req.Title,
		Content:     req.Content,
		CoverImage:  req.CoverImage,
		CategoryIDs: categoryIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, post, "Post created successfully")
}

// Update edits a post. Staff edit any post, others only their own.
func (h *PostHandler) Update(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	actorRole, ok := middleware.GetRole(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid role in token")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_POST_ID", "Invalid post ID format")
	}

	var req UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	categoryIDs, err := parseUUIDs(req.CategoryIDs)
	if err != nil {
		return response.BadRequest(c, "INVALID_CATEGORY_ID", "Invalid category ID format")
	}

	post, err := h.postUC.Update(c.Request().Context(), usecase.UpdatePostInput{
		PostID:      postID,
		ActorID:     actorID,
		ActorRole:   actorRole,
		Title:       req.Title,
		Content:     req.Content,
		CoverImage:  req.CoverImage,
		CategoryIDs: categoryIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post, "Post updated successfully")
}

// Delete removes a post. Staff delete any post, others only their own.
func (h *PostHandler) Delete(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	actorRole, ok := middleware.GetRole(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid role in token")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_POST_ID", "Invalid post ID format")
	}

	if err := h.postUC.Delete(c.Request().Context(), usecase.DeletePostInput{
		PostID:    postID,
		ActorID:   actorID,
		ActorRole: actorRole,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Post deleted"}, "Post deleted successfully")
}

// List returns posts, optionally filtered by category or author via query
// parameters.
func (h *PostHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if raw := c.QueryParam("category"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_CATEGORY_ID", "Invalid category ID format")
		}

		posts, err := h.postUC.ListByCategory(ctx, categoryID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, posts, "Posts retrieved successfully")
	}

	if raw := c.QueryParam("author"); raw != "" {
		authorID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_AUTHOR_ID", "Invalid author ID format")
		}

		posts, err := h.postUC.ListByAuthor(ctx, authorID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, posts, "Posts retrieved successfully")
	}

	posts, err := h.postUC.List(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, posts, "Posts retrieved successfully")
}

// Get returns a single post by ID.
func (h *PostHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_POST_ID", "Invalid post ID format")
	}

	post, err := h.postUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post, "Post retrieved successfully")
}

// GetBySlug returns a single post by its URL slug.
func (h *PostHandler) GetBySlug(c echo.Context) error {
	post, err := h.postUC.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post, "Post retrieved successfully")
}
