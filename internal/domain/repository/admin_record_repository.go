package repository

import (
	"context"
	"errors"

	"inkpress/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAdminRecordNotFound is returned when a user has no admin record.
var ErrAdminRecordNotFound = errors.New("admin record not found")

// AdminRecordRepository defines the operations for the admin roster.
// A record is created when a user is promoted and kept when the admin is
// deactivated, preserving the authorship history.
type AdminRecordRepository interface {
	// FindByUserID retrieves the admin record for a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.AdminRecord, error)

	// List returns all admin records with their users preloaded.
	List(ctx context.Context) ([]*entity.AdminRecord, error)

	// Upsert creates the admin record for a user if it does not already exist.
	Upsert(ctx context.Context, record *entity.AdminRecord) error

	// SetActive toggles the active flag on an admin record.
	SetActive(ctx context.Context, userID uuid.UUID, active bool) error

	// AppendPost links a post to the admin's authorship history.
	AppendPost(ctx context.Context, userID, postID uuid.UUID) error
}
