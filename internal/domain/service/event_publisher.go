package service

import (
	"context"
)

// EventKind identifies what a NotificationEvent asks the worker to send.
type EventKind string

const (
	EventProductClaimed    EventKind = "product_claimed"
	EventProductsAvailable EventKind = "products_available"
	EventApprovalDecision  EventKind = "approval_decision"
)

func (k EventKind) IsValid() bool {
	switch k {
	case EventProductClaimed, EventProductsAvailable, EventApprovalDecision:
		return true
	default:
		return false
	}
}

// NotificationEvent is the payload carried by the notification queue.
// Only identifiers travel; the worker reloads current state before sending.
type NotificationEvent struct {
	RequestID   string    `json:"request_id,omitempty"`
	Kind        EventKind `json:"kind"`
	ProductIDs  []string  `json:"product_ids,omitempty"`
	NonprofitID string    `json:"nonprofit_id,omitempty"`
}

// EventPublisher hands notification events to the async queue.
type EventPublisher interface {
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
