package impl

import (
	"context"
	"log/slog"

	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/errors"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) CreateUser(ctx context.Context, principal entity.Principal, input *usecase.CreateUserInput) (*entity.User, error) {
	if !principal.Is(entity.RoleAdmin) {
		return nil, domainerrors.ErrForbidden
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + string(input.Role))
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Email:        normalizeEmail(input.Email),
		Name:         input.Name,
		PasswordHash: hash,
		Role:         input.Role,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created by admin",
		slog.String("userID", user.ID.String()),
		slog.String("role", user.Role.String()),
		slog.String("adminID", principal.UserID.String()),
	)

	return user, nil
}

func (srv *userService) ListUsers(ctx context.Context, principal entity.Principal, filter repository.UserFilter) ([]*entity.User, error) {
	if !principal.Is(entity.RoleAdmin) {
		return nil, domainerrors.ErrForbidden
	}

	users, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) GetUser(ctx context.Context, principal entity.Principal, id uuid.UUID) (*entity.User, error) {
	if principal.UserID != id && !principal.Role.IsPrivileged() {
		return nil, domainerrors.ErrForbidden
	}

	return srv.findUser(ctx, id)
}

func (srv *userService) UpdateUser(ctx context.Context, principal entity.Principal, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	isSelf := principal.UserID == id
	isAdmin := principal.Is(entity.RoleAdmin)
	if !isSelf && !isAdmin {
		return nil, domainerrors.ErrForbidden
	}

	user, err := srv.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Role != nil && *input.Role != user.Role {
		if isSelf {
			return nil, domainerrors.ErrRoleSelfChange
		}
		if !isAdmin {
			return nil, domainerrors.ErrForbidden
		}
		if !input.Role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + string(*input.Role))
		}
		user.Role = *input.Role
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = normalizeEmail(*input.Email)
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, domainerrors.ErrUserAlreadyExists
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, domainerrors.ErrUserNotFound
		default:
			return nil, errors.Wrap(err, "failed to update user")
		}
	}

	return user, nil
}

func (srv *userService) DeleteUser(ctx context.Context, principal entity.Principal, id uuid.UUID) error {
	if !principal.Is(entity.RoleAdmin) {
		return domainerrors.ErrForbidden
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("userID", id.String()), slog.String("adminID", principal.UserID.String()))

	return nil
}

func (srv *userService) findUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
