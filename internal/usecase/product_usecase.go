package usecase

import (
	"context"
	"time"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductItemInput is one category entry of a bulk submission.
type ProductItemInput struct {
	Name         string
	Unit         entity.Unit
	Quantity     int
	Description  string
	Category     entity.Category
	ProteinTypes []entity.ProteinType
	Specifics    string
}

// PickupInput is shared by every product of a bulk submission.
type PickupInput struct {
	PickupDate         time.Time
	PickupTimeframes   []entity.Timeframe
	PickupLocation     string
	PickupInstructions string
	ContactName        string
	ContactPhone       string
}

type CreateProductsInput struct {
	Items  []ProductItemInput
	Pickup PickupInput
}

// PickupVerification is the outcome of scanning a pickup pass.
type PickupVerification struct {
	Product     *entity.ProductRequest
	NonprofitID uuid.UUID
}

// ProductUsecase covers posting, browsing and pickup of product requests.
type ProductUsecase interface {
	// CreateProducts creates one product per item and enqueues an availability notification.
	CreateProducts(ctx context.Context, principal entity.Principal, input *CreateProductsInput) ([]*entity.ProductRequest, error)
	ListProducts(ctx context.Context, principal entity.Principal, filter entity.ProductFilter) ([]*entity.ProductRequest, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.ProductRequest, error)

	// DeleteProduct removes a supplier's own AVAILABLE product.
	DeleteProduct(ctx context.Context, principal entity.Principal, id uuid.UUID) error

	// PickupPass renders the QR PNG the claiming nonprofit shows at pickup.
	PickupPass(ctx context.Context, principal entity.Principal, id uuid.UUID) ([]byte, error)

	// VerifyPickup checks a scanned pass against the caller's products.
	VerifyPickup(ctx context.Context, principal entity.Principal, qrData string) (*PickupVerification, error)
}
