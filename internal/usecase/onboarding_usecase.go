package usecase

import (
	"context"

	"foodbridge/internal/domain/entity"
)

type CreateSupplierInput struct {
	Name    string
	Cadence entity.Cadence
}

type CreateNonprofitInput struct {
	Name              string
	OrganizationType  entity.OrganizationType
	HasColdStorage    bool
	HasShelfSpace     bool
	HasTransportation bool
	FundingSources    []string
}

// OnboardingUsecase links a fresh account to its organization.
type OnboardingUsecase interface {
	// CreateSupplier creates the supplier and promotes the caller to SUPPLIER in one transaction.
	CreateSupplier(ctx context.Context, principal entity.Principal, input *CreateSupplierInput) (*entity.Supplier, error)

	// CreateNonprofit creates a pending nonprofit and promotes the caller to NONPROFIT in one transaction.
	CreateNonprofit(ctx context.Context, principal entity.Principal, input *CreateNonprofitInput) (*entity.Nonprofit, error)

	// SaveProductSurvey creates or overwrites the caller's product interests.
	SaveProductSurvey(ctx context.Context, principal entity.Principal, flags entity.CategoryFlags) (*entity.ProductInterests, error)
}
