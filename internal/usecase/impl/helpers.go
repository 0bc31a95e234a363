// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"strings"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/errors"

	"github.com/google/uuid"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// loadCaller fetches the principal's account. A principal whose account is gone is unauthenticated.
func loadCaller(ctx context.Context, userRepo repository.UserRepository, principal entity.Principal) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, errors.Wrap(err, "failed to load caller")
	}

	return user, nil
}

// callerNonprofitID resolves the nonprofit the caller acts for.
func callerNonprofitID(ctx context.Context, userRepo repository.UserRepository, principal entity.Principal) (uuid.UUID, error) {
	user, err := loadCaller(ctx, userRepo, principal)
	if err != nil {
		return uuid.Nil, err
	}
	if user.NonprofitID == nil {
		return uuid.Nil, domainerrors.ErrForbidden.WithMessage("Your account is not linked to a nonprofit")
	}

	return *user.NonprofitID, nil
}

// callerSupplierID resolves the supplier the caller acts for.
func callerSupplierID(ctx context.Context, userRepo repository.UserRepository, principal entity.Principal) (uuid.UUID, error) {
	user, err := loadCaller(ctx, userRepo, principal)
	if err != nil {
		return uuid.Nil, err
	}
	if user.SupplierID == nil {
		return uuid.Nil, domainerrors.ErrForbidden.WithMessage("Your account is not linked to a supplier")
	}

	return *user.SupplierID, nil
}

// findProduct maps the repository miss onto the API error.
func findProduct(ctx context.Context, productRepo repository.ProductRepository, id uuid.UUID) (*entity.ProductRequest, error) {
	product, err := productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func findNonprofit(ctx context.Context, nonprofitRepo repository.NonprofitRepository, id uuid.UUID) (*entity.Nonprofit, error) {
	nonprofit, err := nonprofitRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNonprofitNotFound) {
			return nil, domainerrors.ErrNonprofitNotFound
		}

		return nil, errors.Wrap(err, "failed to find nonprofit")
	}

	return nonprofit, nil
}
