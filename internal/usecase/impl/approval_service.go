package impl

import (
	"context"
	"log/slog"

	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/errors"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type approvalService struct {
	nonprofitRepo repository.NonprofitRepository
	logger        *slog.Logger
}

// ApprovalServiceParams holds dependencies for ApprovalService, injected by Fx.
type ApprovalServiceParams struct {
	fx.In

	NonprofitRepo repository.NonprofitRepository
	Logger        *slog.Logger
}

func NewApprovalService(params ApprovalServiceParams) usecase.ApprovalUsecase {
	return &approvalService{
		nonprofitRepo: params.NonprofitRepo,
		logger:        params.Logger,
	}
}

func (srv *approvalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *approvalService) SetApproval(ctx context.Context, nonprofitID uuid.UUID, approved bool) (*entity.Nonprofit, error) {
	if err := srv.nonprofitRepo.SetApproval(ctx, nonprofitID, approved); err != nil {
		if errors.Is(err, repository.ErrNonprofitNotFound) {
			return nil, domainerrors.ErrNonprofitNotFound
		}

		return nil, errors.Wrap(err, "failed to set nonprofit approval")
	}

	srv.log(ctx).Info("Nonprofit approval decided",
		slog.String("nonprofitID", nonprofitID.String()),
		slog.Bool("approved", approved),
	)

	return findNonprofit(ctx, srv.nonprofitRepo, nonprofitID)
}

func (srv *approvalService) ListNonprofits(ctx context.Context, filter repository.NonprofitFilter) ([]*entity.Nonprofit, error) {
	nonprofits, err := srv.nonprofitRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list nonprofits")
	}

	return nonprofits, nil
}

func (srv *approvalService) GetNonprofit(ctx context.Context, nonprofitID uuid.UUID) (*entity.Nonprofit, error) {
	return findNonprofit(ctx, srv.nonprofitRepo, nonprofitID)
}
