package impl

import (
	"context"
	"testing"
	"time"

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

type claimServiceFixtures struct {
	service       usecase.ClaimUsecase
	productRepo   *mockRepo.MockProductRepository
	nonprofitRepo *mockRepo.MockNonprofitRepository
	userRepo      *mockRepo.MockUserRepository
	publisher     *mockSvc.MockEventPublisher
}

func createTestClaimService(t *testing.T) claimServiceFixtures {
	f := claimServiceFixtures{
		productRepo:   mockRepo.NewMockProductRepository(t),
		nonprofitRepo: mockRepo.NewMockNonprofitRepository(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
	}
	srv := NewClaimService(ClaimServiceParams{
		ProductRepo:   f.productRepo,
		NonprofitRepo: f.nonprofitRepo,
		UserRepo:      f.userRepo,
		Publisher:     f.publisher,
		Logger:        newTestLogger(),
	}).(*claimService)
	srv.now = fixedClock
	f.service = srv

	return f
}

// nonprofitCaller returns a NONPROFIT principal linked to nonprofitID and registers the account lookup.
func nonprofitCaller(userRepo *mockRepo.MockUserRepository, nonprofitID uuid.UUID) entity.Principal {
	principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleNonprofit}
	userRepo.EXPECT().FindByID(mock.Anything, principal.UserID).
		Return(&entity.User{ID: principal.UserID, Role: entity.RoleNonprofit, NonprofitID: &nonprofitID}, nil)

	return principal
}

func availableProduct() *entity.ProductRequest {
	return &entity.ProductRequest{
		ID:         uuid.New(),
		Name:       "Apples",
		Status:     entity.ProductStatusAvailable,
		SupplierID: uuid.New(),
		PickupInfo: &entity.PickupInfo{PickupDate: testNow.AddDate(0, 0, 2)},
	}
}

func approvedNonprofit(id uuid.UUID) *entity.Nonprofit {
	return &entity.Nonprofit{ID: id, Name: "Pantry", DocumentApproval: ptr(true)}
}

func TestClaimService_Claim_Success(t *testing.T) {
	fx := createTestClaimService(t)
	ctx := context.Background()
	nonprofitID := uuid.New()
	principal := nonprofitCaller(fx.userRepo, nonprofitID)
	product := availableProduct()

	claimed := *product
	claimed.Status = entity.ProductStatusReserved
	claimed.ClaimedByID = &nonprofitID

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil).Once()
	fx.nonprofitRepo.EXPECT().FindByID(ctx, nonprofitID).Return(approvedNonprofit(nonprofitID), nil)
	fx.productRepo.EXPECT().Claim(ctx, product.ID, nonprofitID, entity.ProductStatusReserved, testNow).Return(nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(&claimed, nil).Once()
	fx.publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.MatchedBy(func(e *service.NotificationEvent) bool {
			return e.Kind == service.EventProductClaimed &&
				len(e.ProductIDs) == 1 && e.ProductIDs[0] == product.ID.String() &&
				e.NonprofitID == nonprofitID.String()
		})).
		Return(nil)

	got, err := fx.service.Claim(ctx, principal, product.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusReserved, got.Status)
	assert.Equal(t, nonprofitID, *got.ClaimedByID)
}

func TestClaimService_Claim_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestClaimService(t)
	ctx := context.Background()
	nonprofitID := uuid.New()
	principal := nonprofitCaller(fx.userRepo, nonprofitID)
	product := availableProduct()

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.nonprofitRepo.EXPECT().FindByID(ctx, nonprofitID).Return(approvedNonprofit(nonprofitID), nil)
	fx.productRepo.EXPECT().Claim(ctx, product.ID, nonprofitID, entity.ProductStatusReserved, testNow).Return(nil)
	fx.publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(errors.New("queue down"))

	_, err := fx.service.Claim(ctx, principal, product.ID)
	require.NoError(t, err)
}

func TestClaimService_Claim_Rejections(t *testing.T) {
	nonprofitID := uuid.New()

	t.Run("supplier cannot claim", func(t *testing.T) {
		fx := createTestClaimService(t)
		principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleSupplier}

		_, err := fx.service.Claim(context.Background(), principal, uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("pending nonprofit", func(t *testing.T) {
		fx := createTestClaimService(t)
		principal := nonprofitCaller(fx.userRepo, nonprofitID)
		product := availableProduct()

		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
		fx.nonprofitRepo.EXPECT().FindByID(mock.Anything, nonprofitID).Return(&entity.Nonprofit{ID: nonprofitID}, nil)

		_, err := fx.service.Claim(context.Background(), principal, product.ID)
		assert.ErrorIs(t, err, domainerrors.ErrNonprofitNotApproved)
	})

	t.Run("rejected nonprofit", func(t *testing.T) {
		fx := createTestClaimService(t)
		principal := nonprofitCaller(fx.userRepo, nonprofitID)
		product := availableProduct()

		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
		fx.nonprofitRepo.EXPECT().FindByID(mock.Anything, nonprofitID).
			Return(&entity.Nonprofit{ID: nonprofitID, DocumentApproval: ptr(false)}, nil)

		_, err := fx.service.Claim(context.Background(), principal, product.ID)
		assert.ErrorIs(t, err, domainerrors.ErrNonprofitNotApproved)
	})

	t.Run("already claimed", func(t *testing.T) {
		fx := createTestClaimService(t)
		principal := nonprofitCaller(fx.userRepo, nonprofitID)
		product := availableProduct()
		product.Status = entity.ProductStatusPending

		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
		fx.nonprofitRepo.EXPECT().FindByID(mock.Anything, nonprofitID).Return(approvedNonprofit(nonprofitID), nil)

		_, err := fx.service.Claim(context.Background(), principal, product.ID)
		assert.ErrorIs(t, err, domainerrors.ErrProductAlreadyClaimed)
	})

	t.Run("lost the race", func(t *testing.T) {
		fx := createTestClaimService(t)
		principal := nonprofitCaller(fx.userRepo, nonprofitID)
		product := availableProduct()

		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
		fx.nonprofitRepo.EXPECT().FindByID(mock.Anything, nonprofitID).Return(approvedNonprofit(nonprofitID), nil)
		fx.productRepo.EXPECT().Claim(mock.Anything, product.ID, nonprofitID, entity.ProductStatusReserved, testNow).
			Return(repository.ErrProductNotAvailable)

		_, err := fx.service.Claim(context.Background(), principal, product.ID)
		assert.ErrorIs(t, err, domainerrors.ErrProductAlreadyClaimed)
	})

	t.Run("unknown product", func(t *testing.T) {
		fx := createTestClaimService(t)
		principal := nonprofitCaller(fx.userRepo, nonprofitID)
		productID := uuid.New()

		fx.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.Claim(context.Background(), principal, productID)
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestClaimService_Unclaim_Success(t *testing.T) {
	fx := createTestClaimService(t)
	ctx := context.Background()
	nonprofitID := uuid.New()
	principal := nonprofitCaller(fx.userRepo, nonprofitID)

	product := availableProduct()
	product.Status = entity.ProductStatusReserved
	product.ClaimedByID = &nonprofitID

	released := *product
	released.Status = entity.ProductStatusAvailable
	released.ClaimedByID = nil

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil).Once()
	fx.productRepo.EXPECT().Unclaim(ctx, product.ID, testNow).Return(nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(&released, nil).Once()

	got, err := fx.service.Unclaim(ctx, principal, product.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusAvailable, got.Status)
	assert.Nil(t, got.ClaimedByID)
}

func TestClaimService_Unclaim_PickupDay(t *testing.T) {
	nonprofitID := uuid.New()

	tests := []struct {
		name       string
		storedDate time.Time
		clientDate *time.Time
		wantErr    error
	}{
		{
			name:       "pickup today is still allowed",
			storedDate: time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "pickup yesterday is rejected",
			storedDate: time.Date(2025, time.March, 14, 23, 0, 0, 0, time.UTC),
			wantErr:    domainerrors.ErrPickupDatePassed,
		},
		{
			name:       "client supplied date wins",
			storedDate: time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC),
			clientDate: ptr(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)),
			wantErr:    domainerrors.ErrPickupDatePassed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestClaimService(t)
			ctx := context.Background()

			product := availableProduct()
			product.Status = entity.ProductStatusReserved
			product.ClaimedByID = &nonprofitID
			product.PickupInfo.PickupDate = tt.storedDate

			fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

			var principal entity.Principal
			if tt.wantErr == nil {
				principal = nonprofitCaller(fx.userRepo, nonprofitID)
				fx.productRepo.EXPECT().Unclaim(ctx, product.ID, testNow).Return(nil)
			} else {
				principal = entity.Principal{UserID: uuid.New(), Role: entity.RoleNonprofit}
			}

			_, err := fx.service.Unclaim(ctx, principal, product.ID, tt.clientDate)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestClaimService_Unclaim_Rejections(t *testing.T) {
	nonprofitID := uuid.New()

	t.Run("not claimed", func(t *testing.T) {
		fx := createTestClaimService(t)
		product := availableProduct()
		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)

		_, err := fx.service.Unclaim(context.Background(), adminPrincipal, product.ID, nil)
		assert.ErrorIs(t, err, domainerrors.ErrProductNotClaimed)
	})

	t.Run("claimed by another nonprofit", func(t *testing.T) {
		fx := createTestClaimService(t)
		principal := nonprofitCaller(fx.userRepo, nonprofitID)
		other := uuid.New()
		product := availableProduct()
		product.Status = entity.ProductStatusReserved
		product.ClaimedByID = &other
		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)

		_, err := fx.service.Unclaim(context.Background(), principal, product.ID, nil)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("supplier cannot unclaim", func(t *testing.T) {
		fx := createTestClaimService(t)

		_, err := fx.service.Unclaim(context.Background(), entity.Principal{UserID: uuid.New(), Role: entity.RoleSupplier}, uuid.New(), nil)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("staff releases any claim", func(t *testing.T) {
		fx := createTestClaimService(t)
		product := availableProduct()
		product.Status = entity.ProductStatusPending
		product.ClaimedByID = &nonprofitID
		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
		fx.productRepo.EXPECT().Unclaim(mock.Anything, product.ID, testNow).Return(nil)

		_, err := fx.service.Unclaim(context.Background(), staffPrincipal, product.ID, nil)
		require.NoError(t, err)
	})
}
