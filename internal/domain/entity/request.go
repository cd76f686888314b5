// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestType identifies what a ledger entry is asking for.
type RequestType string

const (
	// RequestTypeAdmin asks for promotion of the requester to the admin role.
	RequestTypeAdmin RequestType = "admin"
	// RequestTypeCategory asks for approval of a provisionally created category.
	RequestTypeCategory RequestType = "category"
)

// String returns the string representation of the RequestType.
func (t RequestType) String() string {
	return string(t)
}

// IsValid checks if the RequestType is a valid value.
func (t RequestType) IsValid() bool {
	switch t {
	case RequestTypeAdmin, RequestTypeCategory:
		return true
	default:
		return false
	}
}

// RequestStatus is the lifecycle state of a Request.
// A request starts pending and transitions exactly once to approved or rejected.
type RequestStatus string

const (
	// RequestStatusPending indicates the request awaits a superadmin decision.
	RequestStatusPending RequestStatus = "pending"
	// RequestStatusApproved indicates the request was granted.
	RequestStatusApproved RequestStatus = "approved"
	// RequestStatusRejected indicates the request was denied.
	RequestStatusRejected RequestStatus = "rejected"
)

// String returns the string representation of the RequestStatus.
func (s RequestStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the status permits no further transition.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// DecisionFromString maps a caller-supplied action to a terminal status,
// reporting whether the action is a valid decision.
func DecisionFromString(action string) (RequestStatus, bool) {
	switch RequestStatus(action) {
	case RequestStatusApproved:
		return RequestStatusApproved, true
	case RequestStatusRejected:
		return RequestStatusRejected, true
	default:
		return "", false
	}
}

// Request is a ledger entry for an action that needs superadmin approval.
type Request struct {
	ID           uuid.UUID     // The Global Unique Identifier (GUID) for the request.
	Type         RequestType   // What is being requested: admin promotion or category addition.
	Description  string        // Free-form justification supplied by the requester.
	Status       RequestStatus // pending, approved or rejected.
	RequestedBy  uuid.UUID     // The user who submitted the request.
	RequestedFor string        // Category name for category requests; empty otherwise.
	CheckedBy    *uuid.UUID    // The superadmin who decided the request. Nil while pending.
	CheckedAt    *time.Time    // When the decision was recorded. Nil while pending.
	CreatedAt    time.Time     // Timestamp of submission.
	UpdatedAt    time.Time     // Timestamp of the last modification.

	// Requester carries the requesting user's details when the ledger is
	// listed in enriched form. Nil otherwise.
	Requester *User
}
