package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/domain/analytics"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/errors"
	"foodbridge/internal/usecase"
	"foodbridge/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Resource names used in "Failed to fetch <resource>" errors.
const (
	resourceUsers      = "users"
	resourceProducts   = "product requests"
	resourceNonprofits = "nonprofits"
	resourceSuppliers  = "suppliers"
	resourceInterests  = "product interests"
	resourceSupplier   = "supplier"
	resourceNonprofit  = "nonprofit"
)

// trendLookbackPadding widens the claims query so the oldest trend day is complete.
const trendLookbackPadding = 24 * time.Hour

type analyticsService struct {
	userRepo      repository.UserRepository
	productRepo   repository.ProductRepository
	supplierRepo  repository.SupplierRepository
	nonprofitRepo repository.NonprofitRepository
	interestsRepo repository.ProductInterestsRepository
	logger        *slog.Logger
	now           func() time.Time
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	ProductRepo   repository.ProductRepository
	SupplierRepo  repository.SupplierRepository
	NonprofitRepo repository.NonprofitRepository
	InterestsRepo repository.ProductInterestsRepository
	Logger        *slog.Logger
}

func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		userRepo:      params.UserRepo,
		productRepo:   params.ProductRepo,
		supplierRepo:  params.SupplierRepo,
		nonprofitRepo: params.NonprofitRepo,
		interestsRepo: params.InterestsRepo,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// fetchFailed logs the cause and returns the generic 500.
func (srv *analyticsService) fetchFailed(ctx context.Context, resource string, err error) error {
	srv.log(ctx).Error("Analytics fetch failed", slog.String("resource", resource), slog.Any("error", err))

	return domainerrors.FetchError(resource)
}

func (srv *analyticsService) SystemHealth(ctx context.Context) (*analytics.SystemHealth, error) {
	users, err := srv.userRepo.List(ctx, repository.UserFilter{})
	if err != nil {
		return nil, srv.fetchFailed(ctx, resourceUsers, err)
	}
	products, err := srv.productRepo.List(ctx, entity.ProductFilter{})
	if err != nil {
		return nil, srv.fetchFailed(ctx, resourceProducts, err)
	}
	nonprofits, err := srv.nonprofitRepo.List(ctx, repository.NonprofitFilter{})
	if err != nil {
		return nil, srv.fetchFailed(ctx, resourceNonprofits, err)
	}

	return analytics.ComputeSystemHealth(users, products, nonprofits), nil
}

// SupplierMetrics is visible to operators and to users of the supplier itself.
func (srv *analyticsService) SupplierMetrics(ctx context.Context, principal entity.Principal, supplierID uuid.UUID) (*analytics.SupplierMetrics, error) {
	if err := srv.authorizeOrganization(ctx, principal, entity.RoleSupplier, func(u *entity.User) *uuid.UUID { return u.SupplierID }, supplierID); err != nil {
		return nil, err
	}

	if _, err := srv.supplierRepo.FindByID(ctx, supplierID); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, domainerrors.ErrSupplierNotFound
		}

		return nil, srv.fetchFailed(ctx, resourceSupplier, err)
	}

	products, err := srv.productRepo.List(ctx, entity.ProductFilter{SupplierID: &supplierID})
	if err != nil {
		return nil, srv.fetchFailed(ctx, resourceProducts, err)
	}

	return analytics.ComputeSupplierMetrics(supplierID, products, srv.now()), nil
}

// NonprofitMetrics is visible to operators and to users of the nonprofit itself.
func (srv *analyticsService) NonprofitMetrics(ctx context.Context, principal entity.Principal, nonprofitID uuid.UUID) (*analytics.NonprofitMetrics, error) {
	if err := srv.authorizeOrganization(ctx, principal, entity.RoleNonprofit, func(u *entity.User) *uuid.UUID { return u.NonprofitID }, nonprofitID); err != nil {
		return nil, err
	}

	if _, err := srv.nonprofitRepo.FindByID(ctx, nonprofitID); err != nil {
		if errors.Is(err, repository.ErrNonprofitNotFound) {
			return nil, domainerrors.ErrNonprofitNotFound
		}

		return nil, srv.fetchFailed(ctx, resourceNonprofit, err)
	}

	claimed, err := srv.productRepo.List(ctx, entity.ProductFilter{
		ClaimedByID: &nonprofitID,
		Statuses:    entity.ClaimedStatuses,
	})
	if err != nil {
		return nil, srv.fetchFailed(ctx, resourceProducts, err)
	}

	available, err := srv.productRepo.List(ctx, entity.ProductFilter{
		Statuses: []entity.ProductStatus{entity.ProductStatusAvailable},
	})
	if err != nil {
		return nil, srv.fetchFailed(ctx, resourceProducts, err)
	}

	var flags *entity.CategoryFlags
	interests, err := srv.interestsRepo.FindByNonprofitID(ctx, nonprofitID)
	switch {
	case err == nil:
		flags = &interests.CategoryFlags
	case !errors.Is(err, repository.ErrInterestsNotFound):
		return nil, srv.fetchFailed(ctx, resourceInterests, err)
	}

	return analytics.ComputeNonprofitMetrics(nonprofitID, claimed, available, flags, srv.now()), nil
}

func (srv *analyticsService) NonprofitEngagement(ctx context.Context) (*analytics.NonprofitEngagement, error) {
	nonprofits, err := srv.nonprofitRepo.List(ctx, repository.NonprofitFilter{})
	if err != nil {
		return nil, srv.fetchFailed(ctx, resourceNonprofits, err)
	}
	claimed, err := srv.productRepo.List(ctx, entity.ProductFilter{Statuses: entity.ClaimedStatuses})
	if err != nil {
		return nil, srv.fetchFailed(ctx, resourceProducts, err)
	}

	return analytics.ComputeNonprofitEngagement(nonprofits, claimed), nil
}

func (srv *analyticsService) SupplierActivity(ctx context.Context) (*analytics.SupplierActivity, error) {
	suppliers, err := srv.supplierRepo.List(ctx)
	if err != nil {
		return nil, srv.fetchFailed(ctx, resourceSuppliers, err)
	}
	products, err := srv.productRepo.List(ctx, entity.ProductFilter{})
	if err != nil {
		return nil, srv.fetchFailed(ctx, resourceProducts, err)
	}

	return analytics.ComputeSupplierActivity(suppliers, products), nil
}

func (srv *analyticsService) ProductStatusTrends(ctx context.Context) ([]analytics.StatusTrendPoint, error) {
	now := srv.now()
	since := util.MonthStart(now, -(analytics.TimelineMonths - 1))

	products, err := srv.productRepo.List(ctx, entity.ProductFilter{CreatedAfter: &since})
	if err != nil {
		return nil, srv.fetchFailed(ctx, resourceProducts, err)
	}

	return analytics.StatusTrends(products, now, analytics.TimelineMonths), nil
}

func (srv *analyticsService) ClaimsOverTime(ctx context.Context) ([]analytics.DailyPoint, error) {
	now := srv.now()
	since := util.DayStart(now).Add(-analytics.TrendDays*24*time.Hour - trendLookbackPadding)

	products, err := srv.productRepo.List(ctx, entity.ProductFilter{
		Statuses:     entity.ClaimedStatuses,
		UpdatedAfter: &since,
	})
	if err != nil {
		return nil, srv.fetchFailed(ctx, resourceProducts, err)
	}

	return analytics.ClaimsOverTime(products, now, analytics.TrendDays), nil
}

// authorizeOrganization lets ADMIN and STAFF through, and users holding role whose linked
// organization (picked by orgOf) is orgID.
func (srv *analyticsService) authorizeOrganization(
	ctx context.Context,
	principal entity.Principal,
	role entity.Role,
	orgOf func(*entity.User) *uuid.UUID,
	orgID uuid.UUID,
) error {
	if principal.Role.IsPrivileged() {
		return nil
	}
	if principal.Role != role {
		return domainerrors.ErrForbidden
	}

	user, err := loadCaller(ctx, srv.userRepo, principal)
	if err != nil {
		return err
	}
	if linked := orgOf(user); linked == nil || *linked != orgID {
		return domainerrors.ErrForbidden
	}

	return nil
}
