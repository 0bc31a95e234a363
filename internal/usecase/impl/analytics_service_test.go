package impl

import (
	"context"
	"testing"
	"time"

	"foodbridge/internal/domain/analytics"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	mockRepo "foodbridge/internal/mocks/repository"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type analyticsServiceFixtures struct {
	service       usecase.AnalyticsUsecase
	userRepo      *mockRepo.MockUserRepository
	productRepo   *mockRepo.MockProductRepository
	supplierRepo  *mockRepo.MockSupplierRepository
	nonprofitRepo *mockRepo.MockNonprofitRepository
	interestsRepo *mockRepo.MockProductInterestsRepository
}

func createTestAnalyticsService(t *testing.T) analyticsServiceFixtures {
	f := analyticsServiceFixtures{
		userRepo:      mockRepo.NewMockUserRepository(t),
		productRepo:   mockRepo.NewMockProductRepository(t),
		supplierRepo:  mockRepo.NewMockSupplierRepository(t),
		nonprofitRepo: mockRepo.NewMockNonprofitRepository(t),
		interestsRepo: mockRepo.NewMockProductInterestsRepository(t),
	}
	srv := NewAnalyticsService(AnalyticsServiceParams{
		UserRepo:      f.userRepo,
		ProductRepo:   f.productRepo,
		SupplierRepo:  f.supplierRepo,
		NonprofitRepo: f.nonprofitRepo,
		InterestsRepo: f.interestsRepo,
		Logger:        newTestLogger(),
	}).(*analyticsService)
	srv.now = fixedClock
	f.service = srv

	return f
}

func TestAnalyticsService_SystemHealth(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().List(ctx, repository.UserFilter{}).Return([]*entity.User{
		{Role: entity.RoleAdmin}, {Role: entity.RoleSupplier}, {Role: entity.RoleSupplier},
	}, nil)
	fx.productRepo.EXPECT().List(ctx, entity.ProductFilter{}).Return([]*entity.ProductRequest{
		{Status: entity.ProductStatusAvailable},
	}, nil)
	fx.nonprofitRepo.EXPECT().List(ctx, repository.NonprofitFilter{}).Return([]*entity.Nonprofit{
		{DocumentApproval: ptr(true)}, {DocumentApproval: ptr(false)},
	}, nil)

	health, err := fx.service.SystemHealth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, health.TotalUsers)
	assert.Equal(t, 2, health.UserCounts[entity.RoleSupplier])
	assert.Equal(t, 1, health.TotalProducts)
}

func TestAnalyticsService_FetchFailureMessage(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().List(ctx, repository.UserFilter{}).Return(nil, errors.New("timeout"))

	_, err := fx.service.SystemHealth(ctx)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Failed to fetch users", appErr.Message())
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestAnalyticsService_SupplierMetrics_Authorization(t *testing.T) {
	supplierID := uuid.New()

	t.Run("own supplier", func(t *testing.T) {
		fx := createTestAnalyticsService(t)
		principal := supplierCaller(fx.userRepo, supplierID)

		fx.supplierRepo.EXPECT().FindByID(mock.Anything, supplierID).Return(&entity.Supplier{ID: supplierID}, nil)
		fx.productRepo.EXPECT().List(mock.Anything, entity.ProductFilter{SupplierID: &supplierID}).Return(nil, nil)

		metrics, err := fx.service.SupplierMetrics(context.Background(), principal, supplierID)
		require.NoError(t, err)
		assert.Equal(t, supplierID, metrics.SupplierID)
		assert.Zero(t, metrics.TotalProducts)
	})

	t.Run("another supplier", func(t *testing.T) {
		fx := createTestAnalyticsService(t)
		principal := supplierCaller(fx.userRepo, uuid.New())

		_, err := fx.service.SupplierMetrics(context.Background(), principal, supplierID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("nonprofit role", func(t *testing.T) {
		fx := createTestAnalyticsService(t)

		_, err := fx.service.SupplierMetrics(context.Background(), entity.Principal{Role: entity.RoleNonprofit}, supplierID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unknown supplier", func(t *testing.T) {
		fx := createTestAnalyticsService(t)
		fx.supplierRepo.EXPECT().FindByID(mock.Anything, supplierID).Return(nil, repository.ErrSupplierNotFound)

		_, err := fx.service.SupplierMetrics(context.Background(), staffPrincipal, supplierID)
		assert.ErrorIs(t, err, domainerrors.ErrSupplierNotFound)
	})
}

func TestAnalyticsService_NonprofitMetrics_WithoutSurvey(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()
	nonprofitID := uuid.New()
	principal := nonprofitCaller(fx.userRepo, nonprofitID)

	claimed := []*entity.ProductRequest{
		{ID: uuid.New(), Status: entity.ProductStatusReserved, ClaimedByID: &nonprofitID,
			CreatedAt: testNow.Add(-48 * time.Hour), UpdatedAt: testNow.Add(-24 * time.Hour)},
	}

	fx.nonprofitRepo.EXPECT().FindByID(ctx, nonprofitID).Return(&entity.Nonprofit{ID: nonprofitID}, nil)
	fx.productRepo.EXPECT().
		List(ctx, entity.ProductFilter{ClaimedByID: &nonprofitID, Statuses: entity.ClaimedStatuses}).
		Return(claimed, nil)
	fx.productRepo.EXPECT().
		List(ctx, entity.ProductFilter{Statuses: []entity.ProductStatus{entity.ProductStatusAvailable}}).
		Return(nil, nil)
	fx.interestsRepo.EXPECT().FindByNonprofitID(ctx, nonprofitID).Return(nil, repository.ErrInterestsNotFound)

	metrics, err := fx.service.NonprofitMetrics(ctx, principal, nonprofitID)
	require.NoError(t, err)
	assert.Equal(t, 1, metrics.TotalClaimed)
	assert.Empty(t, metrics.AvailabilityTrend)
}

func TestAnalyticsService_ProductStatusTrends_Window(t *testing.T) {
	fx := createTestAnalyticsService(t)
	since := time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)

	fx.productRepo.EXPECT().List(mock.Anything, entity.ProductFilter{CreatedAfter: &since}).Return(nil, nil)

	points, err := fx.service.ProductStatusTrends(context.Background())
	require.NoError(t, err)
	assert.Len(t, points, analytics.TimelineMonths)
}
