package impl

import (
	"context"
	"log/slog"

	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/errors"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// notificationService validates notification requests and hands them to the queue.
// Delivery happens in the worker; see dispatchService.
type notificationService struct {
	productRepo   repository.ProductRepository
	nonprofitRepo repository.NonprofitRepository
	userRepo      repository.UserRepository
	publisher     service.EventPublisher
	logger        *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	ProductRepo   repository.ProductRepository
	NonprofitRepo repository.NonprofitRepository
	UserRepo      repository.UserRepository
	Publisher     service.EventPublisher
	Logger        *slog.Logger
}

func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		productRepo:   params.ProductRepo,
		nonprofitRepo: params.NonprofitRepo,
		userRepo:      params.UserRepo,
		publisher:     params.Publisher,
		logger:        params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// NotifyProductsAvailable enqueues an availability fan-out. Suppliers may only announce their own products.
func (srv *notificationService) NotifyProductsAvailable(ctx context.Context, principal entity.Principal, productIDs []uuid.UUID) error {
	if len(productIDs) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("productIds must not be empty")
	}

	var supplierID uuid.UUID
	if principal.Is(entity.RoleSupplier) {
		id, err := callerSupplierID(ctx, srv.userRepo, principal)
		if err != nil {
			return err
		}
		supplierID = id
	}

	for _, id := range productIDs {
		product, err := findProduct(ctx, srv.productRepo, id)
		if err != nil {
			return err
		}
		if supplierID != uuid.Nil && product.SupplierID != supplierID {
			return domainerrors.ErrForbidden
		}
	}

	return srv.publish(ctx, newProductsAvailableEvent(ctx, productIDs))
}

// NotifyProductClaimed enqueues the claimed email for a product that is currently claimed.
func (srv *notificationService) NotifyProductClaimed(ctx context.Context, principal entity.Principal, productID uuid.UUID) error {
	product, err := findProduct(ctx, srv.productRepo, productID)
	if err != nil {
		return err
	}
	if !product.Status.IsClaimed() || product.ClaimedByID == nil {
		return domainerrors.ErrProductNotClaimed
	}

	if principal.Is(entity.RoleNonprofit) {
		nonprofitID, err := callerNonprofitID(ctx, srv.userRepo, principal)
		if err != nil {
			return err
		}
		if *product.ClaimedByID != nonprofitID {
			return domainerrors.ErrForbidden
		}
	}

	return srv.publish(ctx, newProductClaimedEvent(ctx, product))
}

// NotifyApprovalDecision enqueues the decision email. A pending nonprofit has nothing to announce.
func (srv *notificationService) NotifyApprovalDecision(ctx context.Context, nonprofitID uuid.UUID) error {
	nonprofit, err := findNonprofit(ctx, srv.nonprofitRepo, nonprofitID)
	if err != nil {
		return err
	}
	if nonprofit.DocumentApproval == nil {
		return domainerrors.ErrValidationFailed.WithMessage("Nonprofit approval is still pending")
	}

	return srv.publish(ctx, &service.NotificationEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Kind:        service.EventApprovalDecision,
		NonprofitID: nonprofitID.String(),
	})
}

func (srv *notificationService) publish(ctx context.Context, event *service.NotificationEvent) error {
	if err := srv.publisher.PublishNotificationEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to enqueue notification",
			slog.String("kind", string(event.Kind)),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to enqueue notification")
	}

	srv.log(ctx).Info("Notification enqueued", slog.String("kind", string(event.Kind)))

	return nil
}

func newProductsAvailableEvent(ctx context.Context, productIDs []uuid.UUID) *service.NotificationEvent {
	ids := make([]string, 0, len(productIDs))
	for _, id := range productIDs {
		ids = append(ids, id.String())
	}

	return &service.NotificationEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Kind:       service.EventProductsAvailable,
		ProductIDs: ids,
	}
}

func newProductClaimedEvent(ctx context.Context, product *entity.ProductRequest) *service.NotificationEvent {
	event := &service.NotificationEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Kind:       service.EventProductClaimed,
		ProductIDs: []string{product.ID.String()},
	}
	if product.ClaimedByID != nil {
		event.NonprofitID = product.ClaimedByID.String()
	}

	return event
}

// publishBestEffort enqueues event after a committed mutation. Failures are logged, never returned.
func publishBestEffort(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.NotificationEvent) {
	if err := publisher.PublishNotificationEvent(ctx, event); err != nil {
		logger.Error("Failed to enqueue notification",
			slog.String("kind", string(event.Kind)),
			slog.Any("productIDs", event.ProductIDs),
			slog.Any("error", err),
		)
	}
}
