package impl

import (
	"context"
	"testing"

	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	mockRepo "foodbridge/internal/mocks/repository"
	mockSvc "foodbridge/internal/mocks/service"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service       usecase.NotificationUsecase
	productRepo   *mockRepo.MockProductRepository
	nonprofitRepo *mockRepo.MockNonprofitRepository
	userRepo      *mockRepo.MockUserRepository
	publisher     *mockSvc.MockEventPublisher
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	f := notificationServiceFixtures{
		productRepo:   mockRepo.NewMockProductRepository(t),
		nonprofitRepo: mockRepo.NewMockNonprofitRepository(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
	}
	f.service = NewNotificationService(NotificationServiceParams{
		ProductRepo:   f.productRepo,
		NonprofitRepo: f.nonprofitRepo,
		UserRepo:      f.userRepo,
		Publisher:     f.publisher,
		Logger:        newTestLogger(),
	})

	return f
}

func TestNotificationService_NotifyProductsAvailable(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	supplierID := uuid.New()
	p1 := &entity.ProductRequest{ID: uuid.New(), SupplierID: supplierID}
	p2 := &entity.ProductRequest{ID: uuid.New(), SupplierID: supplierID}
	principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleSupplier}

	fx.userRepo.EXPECT().FindByID(ctx, principal.UserID).Return(&entity.User{ID: principal.UserID, SupplierID: &supplierID}, nil)
	fx.productRepo.EXPECT().FindByID(ctx, p1.ID).Return(p1, nil)
	fx.productRepo.EXPECT().FindByID(ctx, p2.ID).Return(p2, nil)
	fx.publisher.EXPECT().
		PublishNotificationEvent(ctx, &service.NotificationEvent{
			RequestID:  "req-42",
			Kind:       service.EventProductsAvailable,
			ProductIDs: []string{p1.ID.String(), p2.ID.String()},
		}).
		Return(nil)

	err := fx.service.NotifyProductsAvailable(ctx, principal, []uuid.UUID{p1.ID, p2.ID})
	require.NoError(t, err)
}

func TestNotificationService_NotifyProductsAvailable_Rejections(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		fx := createTestNotificationService(t)

		err := fx.service.NotifyProductsAvailable(context.Background(), adminPrincipal, nil)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("another supplier's product", func(t *testing.T) {
		fx := createTestNotificationService(t)
		supplierID := uuid.New()
		principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleSupplier}
		product := &entity.ProductRequest{ID: uuid.New(), SupplierID: uuid.New()}

		fx.userRepo.EXPECT().FindByID(mock.Anything, principal.UserID).
			Return(&entity.User{ID: principal.UserID, SupplierID: &supplierID}, nil)
		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)

		err := fx.service.NotifyProductsAvailable(context.Background(), principal, []uuid.UUID{product.ID})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unknown product", func(t *testing.T) {
		fx := createTestNotificationService(t)
		productID := uuid.New()
		fx.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(nil, repository.ErrProductNotFound)

		err := fx.service.NotifyProductsAvailable(context.Background(), adminPrincipal, []uuid.UUID{productID})
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})

	t.Run("queue unavailable", func(t *testing.T) {
		fx := createTestNotificationService(t)
		product := &entity.ProductRequest{ID: uuid.New()}
		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
		fx.publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).Return(errors.New("redis: connection refused"))

		err := fx.service.NotifyProductsAvailable(context.Background(), adminPrincipal, []uuid.UUID{product.ID})
		require.Error(t, err)
	})
}

func TestNotificationService_NotifyProductClaimed(t *testing.T) {
	nonprofitID := uuid.New()
	claimed := &entity.ProductRequest{ID: uuid.New(), Status: entity.ProductStatusReserved, ClaimedByID: &nonprofitID}

	t.Run("claimer enqueues", func(t *testing.T) {
		fx := createTestNotificationService(t)
		principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleNonprofit}

		fx.productRepo.EXPECT().FindByID(mock.Anything, claimed.ID).Return(claimed, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, principal.UserID).
			Return(&entity.User{ID: principal.UserID, NonprofitID: &nonprofitID}, nil)
		fx.publisher.EXPECT().
			PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(e *service.NotificationEvent) bool {
				return e.Kind == service.EventProductClaimed && e.NonprofitID == nonprofitID.String()
			})).
			Return(nil)

		require.NoError(t, fx.service.NotifyProductClaimed(context.Background(), principal, claimed.ID))
	})

	t.Run("other nonprofit is forbidden", func(t *testing.T) {
		fx := createTestNotificationService(t)
		principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleNonprofit}
		other := uuid.New()

		fx.productRepo.EXPECT().FindByID(mock.Anything, claimed.ID).Return(claimed, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, principal.UserID).
			Return(&entity.User{ID: principal.UserID, NonprofitID: &other}, nil)

		err := fx.service.NotifyProductClaimed(context.Background(), principal, claimed.ID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("available product", func(t *testing.T) {
		fx := createTestNotificationService(t)
		product := &entity.ProductRequest{ID: uuid.New(), Status: entity.ProductStatusAvailable}
		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)

		err := fx.service.NotifyProductClaimed(context.Background(), adminPrincipal, product.ID)
		assert.ErrorIs(t, err, domainerrors.ErrProductNotClaimed)
	})
}

func TestNotificationService_NotifyApprovalDecision(t *testing.T) {
	nonprofitID := uuid.New()

	t.Run("decided", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.nonprofitRepo.EXPECT().FindByID(mock.Anything, nonprofitID).
			Return(&entity.Nonprofit{ID: nonprofitID, DocumentApproval: ptr(false)}, nil)
		fx.publisher.EXPECT().
			PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(e *service.NotificationEvent) bool {
				return e.Kind == service.EventApprovalDecision && e.NonprofitID == nonprofitID.String()
			})).
			Return(nil)

		require.NoError(t, fx.service.NotifyApprovalDecision(context.Background(), nonprofitID))
	})

	t.Run("pending", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.nonprofitRepo.EXPECT().FindByID(mock.Anything, nonprofitID).Return(&entity.Nonprofit{ID: nonprofitID}, nil)

		err := fx.service.NotifyApprovalDecision(context.Background(), nonprofitID)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown nonprofit", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.nonprofitRepo.EXPECT().FindByID(mock.Anything, nonprofitID).Return(nil, repository.ErrNonprofitNotFound)

		err := fx.service.NotifyApprovalDecision(context.Background(), nonprofitID)
		assert.ErrorIs(t, err, domainerrors.ErrNonprofitNotFound)
	})
}
