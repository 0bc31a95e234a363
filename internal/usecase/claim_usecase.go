package usecase

import (
	"context"
	"time"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// ClaimUsecase moves products between AVAILABLE and claimed.
type ClaimUsecase interface {
	// Claim reserves an AVAILABLE product for the caller's nonprofit, which must be approved.
	Claim(ctx context.Context, principal entity.Principal, productID uuid.UUID) (*entity.ProductRequest, error)

	// Unclaim releases a claimed product. pickupDate falls back to the stored pickup date when nil.
	Unclaim(ctx context.Context, principal entity.Principal, productID uuid.UUID, pickupDate *time.Time) (*entity.ProductRequest, error)
}
