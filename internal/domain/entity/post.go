// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Post is a published article.
type Post struct {
	ID          uuid.UUID   // The Global Unique Identifier (GUID) for the post.
	Title       string      // Display title. The slug is derived from it.
	Slug        string      // URL-safe identifier derived from the title. Unique.
	Content     string      // Article body.
	CoverImage  string      // URL of the cover image. Optional.
	CreatedBy   uuid.UUID   // The authoring user.
	CategoryIDs []uuid.UUID // Categories the post is filed under.
	CreatedAt   time.Time   // Timestamp of publication.
	UpdatedAt   time.Time   // Timestamp of the last edit.

	// Categories carries the joined category details when posts are
	// listed in enriched form. Nil otherwise.
	Categories []*Category

	// Author carries the joined author details when posts are listed in
	// enriched form. Nil otherwise.
	Author *User
}

// Slugify derives a URL-safe slug from a post title.
// The title is trimmed and lowercased, every remaining space becomes a
// hyphen, and anything outside [a-z0-9-] is stripped. Interior runs of
// spaces therefore become runs of hyphens: Slugify("A   B") == "a---b".
func Slugify(title string) string {
	lowered := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(title)), " ", "-")

	var slug strings.Builder
	slug.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			slug.WriteRune(r)
		}
	}

	return slug.String()
}
