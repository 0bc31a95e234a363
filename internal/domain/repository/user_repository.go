// Package repository defines the persistence contracts the usecases depend on.
package repository

import (
	"context"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserFilter narrows ListUsers. A nil Role lists every user.
type UserFilter struct {
	Role *entity.Role
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, filter UserFilter) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindRecipientsBySupplier returns the users linked to a supplier.
	FindRecipientsBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Recipient, error)

	// FindRecipientsByNonprofit returns the users linked to a nonprofit.
	FindRecipientsByNonprofit(ctx context.Context, nonprofitID uuid.UUID) ([]*entity.Recipient, error)

	// FindInterestedRecipients returns users of approved nonprofits whose product survey
	// shares at least one true category flag with flags.
	FindInterestedRecipients(ctx context.Context, flags entity.CategoryFlags) ([]*entity.Recipient, error)
}
