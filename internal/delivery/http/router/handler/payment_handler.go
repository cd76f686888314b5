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

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves package checkout, gateway verification callbacks,
// payment history and subscriptions.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// InitiatePaymentRequest represents the body for starting a checkout.
type InitiatePaymentRequest struct {
	PackageID string `json:"package_id" validate:"required,uuid"`
}

// Initiate opens a gateway checkout session for a package purchase.
func (h *PaymentHandler) Initiate(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req InitiatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	packageID, err := uuid.Parse(req.PackageID)
	if err != nil {
		return response.BadRequest(c, "INVALID_PACKAGE_ID", "Invalid package ID format")
	}

	output, err := h.paymentUC.Initiate(c.Request().Context(), usecase.InitiatePaymentInput{
		UserID:    userID,
		PackageID: packageID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"payment":     output.Payment,
		"payment_url": output.PaymentURL,
	}, "Payment initiated successfully")
}

// Verify handles the gateway's browser redirect after checkout. It confirms
// the transaction server-side and redirects the customer to the right page.
func (h *PaymentHandler) Verify(c echo.Context) error {
	output, err := h.paymentUC.Verify(c.Request().Context(), usecase.VerifyPaymentInput{
		Pidx:            c.QueryParam("pidx"),
		Status:          c.QueryParam("status"),
		PurchaseOrderID: c.QueryParam("purchase_order_id"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Redirect(http.StatusFound, output.RedirectURL)
}

// List returns the caller's payment history, or every payment for superadmins.
func (h *PaymentHandler) List(c echo.Context) error {
	viewerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	viewerRole, ok := middleware.GetRole(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid role in token")
	}

	payments, err := h.paymentUC.ListForViewer(c.Request().Context(), viewerID, viewerRole)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payments, "Payments retrieved successfully")
}

// CheckoutQR returns the pending payment's checkout URL as a PNG QR code.
func (h *PaymentHandler) CheckoutQR(c echo.Context) error {
	viewerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PAYMENT_ID", "Invalid payment ID format")
	}

	png, err := h.paymentUC.CheckoutQR(c.Request().Context(), paymentID, viewerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListSubscriptions returns the caller's package subscriptions.
func (h *PaymentHandler) ListSubscriptions(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	subscriptions, err := h.paymentUC.ListSubscriptions(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscriptions, "Subscriptions retrieved successfully")
}

// SubscriptionStatus reports whether the caller currently holds premium access.
func (h *PaymentHandler) SubscriptionStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	active, err := h.paymentUC.HasActiveSubscription(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"active": active}, "Subscription status retrieved successfully")
}
