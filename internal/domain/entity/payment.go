// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod identifies the gateway a payment was initiated against.
type PaymentMethod string

// PaymentMethodKhalti is the only integrated gateway.
const PaymentMethodKhalti PaymentMethod = "khalti"

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// PaymentStatus is the lifecycle state of a Payment.
type PaymentStatus string

const (
	// PaymentStatusPending indicates checkout was initiated but not yet confirmed.
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusCompleted indicates the gateway confirmed the payment.
	PaymentStatusCompleted PaymentStatus = "completed"
	// PaymentStatusFailed indicates the gateway reported a terminal non-completed state.
	PaymentStatusFailed PaymentStatus = "failed"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the status permits no further transition.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed
}

// Payment is one attempt to purchase a package through the gateway.
type Payment struct {
	ID         uuid.UUID     // The Global Unique Identifier (GUID) for the payment.
	OrderID    string        // Client-chosen correlation ID, echoed back by the gateway.
	Pidx       string        // Gateway-assigned transaction ID. Unique once assigned.
	PaymentURL string        // Hosted checkout page of the open session. The QR endpoint reuses it so the stored pidx stays valid.
	Amount     int64         // Amount in rupees. Converted to paisa at the gateway boundary.
	UserID     uuid.UUID     // The paying user.
	PackageID  uuid.UUID     // The package being purchased.
	Method     PaymentMethod // Always the integrated gateway.
	Status     PaymentStatus // pending, completed or failed.
	CreatedAt  time.Time     // When checkout was initiated.
	UpdatedAt  time.Time     // Timestamp of the last status change.

	// User and Package carry joined details when payments are listed in
	// enriched form. Nil otherwise.
	User    *User
	Package *Package
}
