package handler

import (
	"log/slog"
	"net/http"

	"inkpress/internal/delivery/http/middleware"
	"inkpress/internal/delivery/http/response"
	"inkpress/internal/domain/entity"
	"inkpress/internal/domain/repository"
	"inkpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RequestHandlerParams holds dependencies for RequestHandler, injected by Fx.
type RequestHandlerParams struct {
	fx.In

	RequestUC usecase.RequestUsecase
	Logger    *slog.Logger
}

// RequestHandler serves the approval request ledger and the admin roster.
type RequestHandler struct {
	requestUC usecase.RequestUsecase
	logger    *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler.
func NewRequestHandler(params RequestHandlerParams) *RequestHandler {
	return &RequestHandler{
		requestUC: params.RequestUC,
		logger:    params.Logger,
	}
}

// SubmitAdminRequestRequest represents the body for an admin promotion request.
type SubmitAdminRequestRequest struct {
	Description string `json:"description,omitempty"`
}

// DecideRequestRequest represents the body for a request decision.
type DecideRequestRequest struct {
	Action string `json:"action" validate:"required,oneof=approved rejected"`
}

// SetAdminActiveRequest represents the body for toggling an admin account.
type SetAdminActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// SubmitAdminRequest files a pending admin promotion request for the caller.
func (h *RequestHandler) SubmitAdminRequest(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SubmitAdminRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}

	request, err := h.requestUC.SubmitAdminRequest(c.Request().Context(), usecase.SubmitAdminRequestInput{
		UserID:      userID,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, request, "Request submitted successfully")
}

// ListRequests returns the full ledger, optionally filtered by type and status.
func (h *RequestHandler) ListRequests(c echo.Context) error {
	filter := repository.RequestFilter{
		Type:   entity.RequestType(c.QueryParam("type")),
		Status: entity.RequestStatus(c.QueryParam("status")),
	}

	requests, err := h.requestUC.ListRequests(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "Requests retrieved successfully")
}

// ListMyRequests returns the caller's own submissions.
func (h *RequestHandler) ListMyRequests(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requests, err := h.requestUC.ListMyRequests(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "Requests retrieved successfully")
}

// Decide applies a superadmin decision to a pending request.
func (h *RequestHandler) Decide(c echo.Context) error {
	reviewerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_REQUEST_ID", "Invalid request ID format")
	}

	var req DecideRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decision input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	request, err := h.requestUC.Decide(c.Request().Context(), usecase.DecideRequestInput{
		RequestID:  requestID,
		ReviewerID: reviewerID,
		Action:     req.Action,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "Request decided successfully")
}

// ListAdminRecords returns the roster of promoted admins.
func (h *RequestHandler) ListAdminRecords(c echo.Context) error {
	records, err := h.requestUC.ListAdminRecords(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "Admin records retrieved successfully")
}

// SetAdminActive suspends or reinstates an admin account.
func (h *RequestHandler) SetAdminActive(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "Invalid user ID format")
	}

	var req SetAdminActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.requestUC.SetAdminActive(c.Request().Context(), usecase.SetAdminActiveInput{
		UserID: userID,
		Active: *req.Active,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"active": *req.Active}, "Admin status updated successfully")
}
