package service

import (
	"context"
	"time"
)

// Domain event types published to the message queue.
const (
	EventPaymentCompleted = "payment.completed"
	EventPostPublished    = "post.published"
	EventRequestDecided   = "request.decided"
)

// DomainEvent represents a fact about the system for async consumers.
type DomainEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	Type       string            `json:"type"`
	SubjectID  string            `json:"subject_id"` // ID of the payment, post, or request
	ActorID    string            `json:"actor_id,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEvent publishes a domain event for async processing
	PublishEvent(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
