package usecase

import (
	"context"

	"inkpress/internal/domain/entity"
	"inkpress/internal/domain/repository"

	"github.com/google/uuid"
)

// SubmitAdminRequestInput asks for promotion of the requester to admin.
type SubmitAdminRequestInput struct {
	UserID      uuid.UUID
	Description string
}

// DecideRequestInput records a superadmin's decision on a pending request.
type DecideRequestInput struct {
	RequestID  uuid.UUID
	ReviewerID uuid.UUID
	Action     string // "approved" or "rejected"
}

// SetAdminActiveInput toggles an admin account on or off.
type SetAdminActiveInput struct {
	UserID uuid.UUID
	Active bool
}

// RequestUsecase drives the approval request ledger: submission by users
// and admins, decisions by superadmins, and the admin roster derived
// from approved promotions.
type RequestUsecase interface {
	// SubmitAdminRequest files a pending admin promotion request.
	SubmitAdminRequest(ctx context.Context, input SubmitAdminRequestInput) (*entity.Request, error)

	// ListRequests returns the ledger filtered by type and status.
	ListRequests(ctx context.Context, filter repository.RequestFilter) ([]*entity.Request, error)

	// ListMyRequests returns the calling user's own submissions.
	ListMyRequests(ctx context.Context, userID uuid.UUID) ([]*entity.Request, error)

	// Decide applies a terminal decision to a pending request and runs its
	// side effects (role promotion or category approval) atomically.
	Decide(ctx context.Context, input DecideRequestInput) (*entity.Request, error)

	// ListAdminRecords returns the roster of promoted admins.
	ListAdminRecords(ctx context.Context) ([]*entity.AdminRecord, error)

	// SetAdminActive toggles an admin user and their roster record together.
	SetAdminActive(ctx context.Context, input SetAdminActiveInput) error
}
