package usecase

import (
	"context"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"

	"github.com/google/uuid"
)

// ApprovalUsecase is the admin side of nonprofit eligibility.
type ApprovalUsecase interface {
	// SetApproval records a decision. The decision email is sent separately.
	SetApproval(ctx context.Context, nonprofitID uuid.UUID, approved bool) (*entity.Nonprofit, error)
	ListNonprofits(ctx context.Context, filter repository.NonprofitFilter) ([]*entity.Nonprofit, error)
	GetNonprofit(ctx context.Context, nonprofitID uuid.UUID) (*entity.Nonprofit, error)
}
