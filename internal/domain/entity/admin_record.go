// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminRecord is a denormalized per-admin index: basic identity fields plus
// the set of posts the admin authored. It is created lazily, either when an
// admin request is approved or when the admin publishes their first post.
//
// The original system materialized one dynamic collection per admin for
// this; here it is a static table plus an (admin_id, post_id) join table.
type AdminRecord struct {
	UserID    uuid.UUID   // The admin user this record indexes. Primary key.
	Name      string      // Denormalized display name.
	Email     string      // Denormalized email.
	IsActive  bool        // Mirrors the User's IsActive flag; toggled together.
	PostIDs   []uuid.UUID // IDs of posts authored by this admin.
	CreatedAt time.Time
	UpdatedAt time.Time
}
