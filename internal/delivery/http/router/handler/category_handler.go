package handler

import (
	"log/slog"
	"net/http"

	"inkpress/internal/delivery/http/middleware"
	"inkpress/internal/delivery/http/response"
	"inkpress/internal/domain/entity"
	"inkpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	Logger     *slog.Logger
}

// CategoryHandler serves category browsing and staff-side management.
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
	logger     *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler.
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: params.CategoryUC,
		logger:     params.Logger,
	}
}

// CreateCategoryRequest represents the body for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateCategoryRequest represents the body for updating a category.
type UpdateCategoryRequest struct {
	Name        string `json:"name,omitempty"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
}

// Create opens a new category. Superadmins get it approved immediately,
// admins get a provisional category plus a pending approval request.
func (h *CategoryHandler) Create(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	actorRole, ok := middleware.GetRole(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid role in token")
	}

	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	category, err := h.categoryUC.Create(c.Request().Context(), usecase.CreateCategoryInput{
		ActorID:     actorID,
		ActorRole:   actorRole,
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created successfully")
}

// List returns categories. Anonymous callers and regular users see only
// approved categories, superadmins also see provisional ones.
func (h *CategoryHandler) List(c echo.Context) error {
	viewerRole, ok := middleware.GetRole(c)
	if !ok {
		viewerRole = entity.RoleUser
	}

	categories, err := h.categoryUC.List(c.Request().Context(), viewerRole)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// Get returns a single category by ID.
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_CATEGORY_ID", "Invalid category ID format")
	}

	category, err := h.categoryUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category, "Category retrieved successfully")
}

// Update mutates a category's descriptive fields.
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_CATEGORY_ID", "Invalid category ID format")
	}

	var req UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	category, err := h.categoryUC.Update(c.Request().Context(), usecase.UpdateCategoryInput{
		CategoryID:  id,
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category, "Category updated successfully")
}

// Delete removes a category.
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_CATEGORY_ID", "Invalid category ID format")
	}

	if err := h.categoryUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Category deleted"}, "Category deleted successfully")
}
