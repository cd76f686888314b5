package usecase

import (
	"context"

	"inkpress/internal/domain/entity"

	"github.com/google/uuid"
)

// InitiatePaymentInput starts a checkout for a package purchase.
type InitiatePaymentInput struct {
	UserID    uuid.UUID
	PackageID uuid.UUID
}

// InitiatePaymentOutput returns the pending payment and where to send the customer.
type InitiatePaymentOutput struct {
	Payment    *entity.Payment
	PaymentURL string
}

// VerifyPaymentInput carries the gateway redirect's query parameters.
// All three must be present.
type VerifyPaymentInput struct {
	Pidx            string
	Status          string
	PurchaseOrderID string
}

// VerifyPaymentOutput reports the final payment state and the page to
// redirect the customer's browser to.
type VerifyPaymentOutput struct {
	Payment     *entity.Payment
	RedirectURL string
}

// PaymentUsecase drives package purchases: gateway checkout, verification
// with subscription granting, and payment history.
type PaymentUsecase interface {
	// Initiate opens a gateway checkout session and records a pending payment.
	Initiate(ctx context.Context, input InitiatePaymentInput) (*InitiatePaymentOutput, error)

	// Verify confirms a transaction against the gateway and, on completion,
	// grants the package subscription. Safe to call repeatedly.
	Verify(ctx context.Context, input VerifyPaymentInput) (*VerifyPaymentOutput, error)

	// ListForViewer returns all payments for superadmins and the viewer's
	// own payments otherwise.
	ListForViewer(ctx context.Context, viewerID uuid.UUID, viewerRole entity.Role) ([]*entity.Payment, error)

	// CheckoutQR renders the pending payment's checkout URL as a PNG QR code.
	CheckoutQR(ctx context.Context, paymentID, viewerID uuid.UUID) ([]byte, error)

	// ListSubscriptions returns the user's package subscriptions.
	ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]*entity.PackageSubscription, error)

	// HasActiveSubscription reports whether the user currently holds
	// unexpired premium access.
	HasActiveSubscription(ctx context.Context, userID uuid.UUID) (bool, error)
}
