// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Package is a purchasable subscription tier unlocking premium content
// for a bounded number of days.
type Package struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the package.
	Name        string    // Display name of the tier.
	Price       int64     // Price in rupees. Must be > 0.
	ExpiryDays  int       // Number of days of premium access the tier grants. Must be > 0.
	Description string    // Marketing description shown on the pricing page.
	CreatedAt   time.Time // Timestamp of creation.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// PackageSubscription records that a user holds (or held) a package.
// The (UserID, PackageID) pair is unique, giving the membership set
// semantics: granting the same package twice is a no-op.
type PackageSubscription struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the membership row.
	UserID    uuid.UUID // The subscribed user.
	PackageID uuid.UUID // The package the user subscribed to.
	ExpiresAt time.Time // When the premium access lapses.
	CreatedAt time.Time // When the membership was granted.

	// Package carries the tier details when memberships are listed in
	// enriched form. Nil otherwise.
	Package *Package
}
