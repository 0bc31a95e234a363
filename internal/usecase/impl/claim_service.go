package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/errors"
	"foodbridge/internal/usecase"
	"foodbridge/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type claimService struct {
	productRepo   repository.ProductRepository
	nonprofitRepo repository.NonprofitRepository
	userRepo      repository.UserRepository
	publisher     service.EventPublisher
	logger        *slog.Logger
	now           func() time.Time
}

// ClaimServiceParams holds dependencies for ClaimService, injected by Fx.
type ClaimServiceParams struct {
	fx.In

	ProductRepo   repository.ProductRepository
	NonprofitRepo repository.NonprofitRepository
	UserRepo      repository.UserRepository
	Publisher     service.EventPublisher
	Logger        *slog.Logger
}

func NewClaimService(params ClaimServiceParams) usecase.ClaimUsecase {
	return &claimService{
		productRepo:   params.ProductRepo,
		nonprofitRepo: params.NonprofitRepo,
		userRepo:      params.UserRepo,
		publisher:     params.Publisher,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *claimService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Claim reserves the product. The conditional update makes a concurrent loser see a conflict.
func (srv *claimService) Claim(ctx context.Context, principal entity.Principal, productID uuid.UUID) (*entity.ProductRequest, error) {
	if !principal.Is(entity.RoleNonprofit) {
		return nil, domainerrors.ErrForbidden.WithMessage("Only nonprofits can claim products")
	}

	nonprofitID, err := callerNonprofitID(ctx, srv.userRepo, principal)
	if err != nil {
		return nil, err
	}

	product, err := findProduct(ctx, srv.productRepo, productID)
	if err != nil {
		return nil, err
	}

	nonprofit, err := findNonprofit(ctx, srv.nonprofitRepo, nonprofitID)
	if err != nil {
		return nil, err
	}
	if !nonprofit.CanClaim() {
		return nil, domainerrors.ErrNonprofitNotApproved
	}

	if product.Status.IsClaimed() {
		return nil, domainerrors.ErrProductAlreadyClaimed
	}

	if err := srv.productRepo.Claim(ctx, productID, nonprofitID, entity.ProductStatusReserved, srv.now()); err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotAvailable):
			return nil, domainerrors.ErrProductAlreadyClaimed
		case errors.Is(err, repository.ErrProductNotFound):
			return nil, domainerrors.ErrProductNotFound
		default:
			return nil, errors.Wrap(err, "failed to claim product")
		}
	}

	claimed, err := findProduct(ctx, srv.productRepo, productID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product claimed",
		slog.String("productID", productID.String()),
		slog.String("nonprofitID", nonprofitID.String()),
	)

	publishBestEffort(ctx, srv.publisher, srv.log(ctx), newProductClaimedEvent(ctx, claimed))

	return claimed, nil
}

// Unclaim releases a claim. Nonprofits may only release their own; admins and staff release any.
func (srv *claimService) Unclaim(ctx context.Context, principal entity.Principal, productID uuid.UUID, pickupDate *time.Time) (*entity.ProductRequest, error) {
	if !principal.Is(entity.RoleNonprofit, entity.RoleAdmin, entity.RoleStaff) {
		return nil, domainerrors.ErrForbidden
	}

	product, err := findProduct(ctx, srv.productRepo, productID)
	if err != nil {
		return nil, err
	}

	if date := effectivePickupDate(product, pickupDate); date != nil && util.BeforeDay(*date, srv.now()) {
		return nil, domainerrors.ErrPickupDatePassed
	}

	if !product.Status.IsClaimed() {
		return nil, domainerrors.ErrProductNotClaimed
	}

	if principal.Is(entity.RoleNonprofit) {
		nonprofitID, err := callerNonprofitID(ctx, srv.userRepo, principal)
		if err != nil {
			return nil, err
		}
		if product.ClaimedByID == nil || *product.ClaimedByID != nonprofitID {
			return nil, domainerrors.ErrForbidden.WithMessage("Product was claimed by another nonprofit")
		}
	}

	if err := srv.productRepo.Unclaim(ctx, productID, srv.now()); err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotClaimed):
			return nil, domainerrors.ErrProductNotClaimed
		case errors.Is(err, repository.ErrProductNotFound):
			return nil, domainerrors.ErrProductNotFound
		default:
			return nil, errors.Wrap(err, "failed to unclaim product")
		}
	}

	released, err := findProduct(ctx, srv.productRepo, productID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product unclaimed",
		slog.String("productID", productID.String()),
		slog.String("by", principal.UserID.String()),
	)

	return released, nil
}

// effectivePickupDate prefers the client's copy of the pickup date, falling back to the stored one.
func effectivePickupDate(product *entity.ProductRequest, pickupDate *time.Time) *time.Time {
	if pickupDate != nil {
		return pickupDate
	}
	if product.PickupInfo != nil && !product.PickupInfo.PickupDate.IsZero() {
		return &product.PickupInfo.PickupDate
	}

	return nil
}
