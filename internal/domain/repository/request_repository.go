package repository

import (
	"context"
	"errors"

	"inkpress/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRequestNotFound is returned when a request record does not exist.
var ErrRequestNotFound = errors.New("request not found")

// RequestFilter narrows request listings. Zero values mean "no filter".
type RequestFilter struct {
	Type   entity.RequestType
	Status entity.RequestStatus
}

// RequestRepository defines the operations for the approval request ledger.
type RequestRepository interface {
	// FindByID retrieves a single request by ID, preloading the requester.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Request, error)

	// List returns requests matching the filter, newest first.
	List(ctx context.Context, filter RequestFilter) ([]*entity.Request, error)

	// ListByRequester returns requests submitted by the given user, newest first.
	ListByRequester(ctx context.Context, userID uuid.UUID) ([]*entity.Request, error)

	// Create persists a new request record. RequestedFor carries the
	// provisional category name for category requests.
	Create(ctx context.Context, request *entity.Request) error

	// UpdateDecision records the outcome of a review on a pending request.
	UpdateDecision(ctx context.Context, request *entity.Request) error

	// HasPending reports whether the user already has a pending request of the given type.
	HasPending(ctx context.Context, userID uuid.UUID, requestType entity.RequestType) (bool, error)
}
