package repository

import (
	"context"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrSupplierNotFound      = errors.New("supplier not found")
	ErrDuplicateSupplierName = errors.New("supplier name already exists")
	ErrNonprofitNotFound     = errors.New("nonprofit not found")
)

type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
}

// NonprofitFilter narrows nonprofit listings. A nil Approval lists every nonprofit.
type NonprofitFilter struct {
	Approval *entity.ApprovalState
}

type NonprofitRepository interface {
	Create(ctx context.Context, nonprofit *entity.Nonprofit) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Nonprofit, error)
	List(ctx context.Context, filter NonprofitFilter) ([]*entity.Nonprofit, error)

	// SetApproval records an admin decision. Returns ErrNonprofitNotFound when nothing was updated.
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) error

	// AttachDocument points the nonprofit at documentID and resets approval to pending.
	AttachDocument(ctx context.Context, id uuid.UUID, documentID uuid.UUID) error
}
