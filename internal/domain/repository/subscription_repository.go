package repository

import (
	"context"

	"inkpress/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionRepository defines the operations for user package subscriptions.
// A user holds at most one subscription row per package; Upsert keeps the
// pair unique so repeated grants stay idempotent.
type SubscriptionRepository interface {
	// Upsert grants a subscription, doing nothing if the user already holds one
	// for the same package.
	Upsert(ctx context.Context, sub *entity.PackageSubscription) error

	// ListByUser returns the user's subscriptions with package details preloaded.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PackageSubscription, error)

	// HasActive reports whether the user holds any subscription that has not expired.
	HasActive(ctx context.Context, userID uuid.UUID) (bool, error)
}
