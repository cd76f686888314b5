package handler

import (
	"log/slog"
	"net/http"

	"inkpress/internal/delivery/http/response"
	"inkpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PackageHandlerParams holds dependencies for PackageHandler, injected by Fx.
type PackageHandlerParams struct {
	fx.In

	PackageUC usecase.PackageUsecase
	Logger    *slog.Logger
}

// PackageHandler serves subscription package browsing and management.
type PackageHandler struct {
	packageUC usecase.PackageUsecase
	logger    *slog.Logger
}

// NewPackageHandler is the constructor for PackageHandler.
func NewPackageHandler(params PackageHandlerParams) *PackageHandler {
	return &PackageHandler{
		packageUC: params.PackageUC,
		logger:    params.Logger,
	}
}

// CreatePackageRequest represents the body for creating a package.
type CreatePackageRequest struct {
	Name        string `json:"name" validate:"required"`
	Price       int64  `json:"price" validate:"required,gt=0"`
	ExpiryDays  int    `json:"expiry_days" validate:"required,gt=0"`
	Description string `json:"description,omitempty"`
}

// UpdatePackageRequest represents the body for updating a package.
type UpdatePackageRequest struct {
	Name        string `json:"name" validate:"required"`
	Price       int64  `json:"price" validate:"required,gt=0"`
	ExpiryDays  int    `json:"expiry_days" validate:"required,gt=0"`
	Description string `json:"description,omitempty"`
}

// Create adds a new subscription package.
func (h *PackageHandler) Create(c echo.Context) error {
	var req CreatePackageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid package input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	pkg, err := h.packageUC.Create(c.Request().Context(), usecase.CreatePackageInput{
		Name:        req.Name,
		Price:       req.Price,
		ExpiryDays:  req.ExpiryDays,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, pkg, "Package created successfully")
}

// List returns all subscription packages.
func (h *PackageHandler) List(c echo.Context) error {
	packages, err := h.packageUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, packages, "Packages retrieved successfully")
}

// Get returns a single package by ID.
func (h *PackageHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PACKAGE_ID", "Invalid package ID format")
	}

	pkg, err := h.packageUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pkg, "Package retrieved successfully")
}

// Update replaces a package's fields.
func (h *PackageHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PACKAGE_ID", "Invalid package ID format")
	}

	var req UpdatePackageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid package input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	pkg, err := h.packageUC.Update(c.Request().Context(), usecase.UpdatePackageInput{
		PackageID:   id,
		Name:        req.Name,
		Price:       req.Price,
		ExpiryDays:  req.ExpiryDays,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pkg, "Package updated successfully")
}

// Delete removes a package.
func (h *PackageHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PACKAGE_ID", "Invalid package ID format")
	}

	if err := h.packageUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Package deleted"}, "Package deleted successfully")
}
