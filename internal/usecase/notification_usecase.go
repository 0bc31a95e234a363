package usecase

import (
	"context"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/errors"

	"github.com/google/uuid"
)

// ErrEventDropped marks dispatch failures that retrying cannot fix, such as a deleted product.
// Queue consumers acknowledge these instead of redelivering.
var ErrEventDropped = errors.New("notification event dropped")

// NotificationUsecase validates a notification request and enqueues it for the worker.
type NotificationUsecase interface {
	NotifyProductsAvailable(ctx context.Context, principal entity.Principal, productIDs []uuid.UUID) error
	NotifyProductClaimed(ctx context.Context, principal entity.Principal, productID uuid.UUID) error
	NotifyApprovalDecision(ctx context.Context, nonprofitID uuid.UUID) error
}

// DispatchResult counts what one event delivered.
type DispatchResult struct {
	EmailsSent    int
	EmailsFailed  int
	PushSent      int
	PushFailed    int
	InvalidTokens int
}

// DispatchUsecase is the worker side: it reloads current state and sends email and push.
type DispatchUsecase interface {
	Dispatch(ctx context.Context, event *service.NotificationEvent) (*DispatchResult, error)
}
