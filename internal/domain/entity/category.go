// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a content category posts can be filed under.
// Superadmins create categories approved immediately; admins create them
// provisionally (IsApproved=false) paired with a pending Request.
type Category struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the category.
	Name        string    // Globally unique display name.
	Image       string    // URL of the category's cover image.
	Description string    // Short description shown in listings.
	PostCount   int       // Number of posts filed under this category. Incremented on every post creation.
	IsApproved  bool      // Whether the category is visible to the public. Flipped by request approval.
	CreatedAt   time.Time // Timestamp of creation.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
