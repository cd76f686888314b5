package repository

import (
	"context"
	"errors"

	"inkpress/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPaymentNotFound is returned when a payment record does not exist.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository defines the operations for payment persistence.
type PaymentRepository interface {
	// FindByID retrieves a single payment by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindByPidx retrieves a payment by the gateway transaction identifier.
	FindByPidx(ctx context.Context, pidx string) (*entity.Payment, error)

	// ListAll returns every payment, newest first, with user and package preloaded.
	ListAll(ctx context.Context) ([]*entity.Payment, error)

	// ListByUser returns a single user's payments, newest first, with package preloaded.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error)

	// Create persists a new payment record.
	Create(ctx context.Context, payment *entity.Payment) error

	// UpdateStatus moves a payment to the given status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error
}
