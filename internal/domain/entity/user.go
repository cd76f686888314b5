// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// Every other entity that needs an owner references a User by ID.
type User struct {
	ID             uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email          string    // The user's primary contact email, used as the login identifier.
	Name           string    // The user's display name.
	Role           Role      // The user's role: user, admin or superadmin.
	IsActive       bool      // Whether the account may sign in. Suspended admins keep their role but lose access.
	ProfilePicture string    // URL of the user's avatar, provided by OAuth or profile update. Optional.
	DeviceToken    string    // FCM registration token for push notifications. Optional.
	CreatedAt      time.Time // Timestamp of when this user account was created.
	UpdatedAt      time.Time // Timestamp of the last modification to this user's data.
}
