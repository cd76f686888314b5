package service

import (
	"context"

	"github.com/google/uuid"
)

// Gateway lookup statuses as reported by Khalti.
const (
	GatewayStatusCompleted    = "Completed"
	GatewayStatusPending      = "Pending"
	GatewayStatusExpired      = "Expired"
	GatewayStatusUserCanceled = "User canceled"
)

// CheckoutRequest carries everything the gateway needs to open a checkout.
// AmountPaisa is the charge in paisa (1 rupee = 100 paisa).
type CheckoutRequest struct {
	OrderID       uuid.UUID
	OrderName     string
	AmountPaisa   int64
	CustomerName  string
	CustomerEmail string
}

// CheckoutSession is the gateway's answer to a successful initiate call.
type CheckoutSession struct {
	Pidx       string // Gateway transaction identifier
	PaymentURL string // Hosted checkout page to redirect the customer to
}

// LookupResult reports the state of a transaction at the gateway.
type LookupResult struct {
	Pidx        string
	Status      string
	TotalAmount int64 // In paisa
}

// IsTerminal reports whether the gateway will never move this transaction again.
func (r *LookupResult) IsTerminal() bool {
	return r.Status == GatewayStatusCompleted ||
		r.Status == GatewayStatusExpired ||
		r.Status == GatewayStatusUserCanceled
}

// PaymentGateway defines the interface for the external payment provider.
type PaymentGateway interface {
	// InitiateCheckout opens a checkout session at the gateway.
	InitiateCheckout(ctx context.Context, req *CheckoutRequest) (*CheckoutSession, error)

	// LookupPayment queries the gateway for the current state of a transaction.
	LookupPayment(ctx context.Context, pidx string) (*LookupResult, error)
}
