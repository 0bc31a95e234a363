package repository

import (
	"context"
	"time"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound     = errors.New("product request not found")
	ErrProductNotAvailable = errors.New("product request is not available")
	ErrProductNotClaimed   = errors.New("product request is not claimed")
	ErrInterestsNotFound   = errors.New("product interests not found")
)

type ProductRepository interface {
	// Create persists the product together with its ProductType and PickupInfo.
	Create(ctx context.Context, product *entity.ProductRequest) error

	// FindByID loads the product with ProductType and PickupInfo.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductRequest, error)

	// List loads products matching filter with ProductType and PickupInfo.
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.ProductRequest, error)

	// Claim moves an AVAILABLE product to status with claimedBy set, in a single conditional update.
	// Returns ErrProductNotAvailable when the product exists but is no longer AVAILABLE.
	Claim(ctx context.Context, id, nonprofitID uuid.UUID, status entity.ProductStatus, at time.Time) error

	// Unclaim moves a claimed product back to AVAILABLE and clears claimedBy.
	// Returns ErrProductNotClaimed when the product exists but is AVAILABLE.
	Unclaim(ctx context.Context, id uuid.UUID, at time.Time) error

	// Delete removes the product with its ProductType and PickupInfo.
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductInterestsRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductInterests, error)

	// FindByNonprofitID returns the survey of the first user of the nonprofit that has one.
	FindByNonprofitID(ctx context.Context, nonprofitID uuid.UUID) (*entity.ProductInterests, error)

	// Save inserts the survey when ID is nil, otherwise overwrites it.
	Save(ctx context.Context, interests *entity.ProductInterests) error
}
