package impl

import (
	"context"
	"testing"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	mockRepo "foodbridge/internal/mocks/repository"
	mockSvc "foodbridge/internal/mocks/service"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Logger:   newTestLogger(),
	})

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
	}
}

var (
	adminPrincipal = entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}
	staffPrincipal = entity.Principal{UserID: uuid.New(), Role: entity.RoleStaff}
)

func TestUserService_CreateUser(t *testing.T) {
	t.Run("admin creates staff account", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.hasher.EXPECT().Hash("Password123!").Return("hashed", nil)
		fx.userRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.Role == entity.RoleStaff && u.Email == "staff@example.com"
			})).
			Return(nil)

		user, err := fx.service.CreateUser(ctx, adminPrincipal, &usecase.CreateUserInput{
			Name:     "Staff",
			Email:    "Staff@Example.com",
			Password: "Password123!",
			Role:     entity.RoleStaff,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.RoleStaff, user.Role)
	})

	t.Run("staff is forbidden", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.CreateUser(context.Background(), staffPrincipal, &usecase.CreateUserInput{Role: entity.RoleStaff})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unknown role", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.CreateUser(context.Background(), adminPrincipal, &usecase.CreateUserInput{Role: "ROOT"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestUserService_GetUser(t *testing.T) {
	self := entity.Principal{UserID: uuid.New(), Role: entity.RoleSupplier}

	t.Run("self", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(mock.Anything, self.UserID).Return(&entity.User{ID: self.UserID}, nil)

		user, err := fx.service.GetUser(context.Background(), self, self.UserID)
		require.NoError(t, err)
		assert.Equal(t, self.UserID, user.ID)
	})

	t.Run("staff reads anyone", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(mock.Anything, self.UserID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.GetUser(context.Background(), staffPrincipal, self.UserID)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("other user forbidden", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.GetUser(context.Background(), self, uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestUserService_UpdateUser_RoleChanges(t *testing.T) {
	targetID := uuid.New()

	t.Run("admin changes another user's role", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByID(ctx, targetID).Return(&entity.User{ID: targetID, Role: entity.RoleOther}, nil)
		fx.userRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Role == entity.RoleStaff })).
			Return(nil)

		user, err := fx.service.UpdateUser(ctx, adminPrincipal, targetID, &usecase.UpdateUserInput{Role: ptr(entity.RoleStaff)})
		require.NoError(t, err)
		assert.Equal(t, entity.RoleStaff, user.Role)
	})

	t.Run("admin cannot change own role", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByID(ctx, adminPrincipal.UserID).
			Return(&entity.User{ID: adminPrincipal.UserID, Role: entity.RoleAdmin}, nil)

		_, err := fx.service.UpdateUser(ctx, adminPrincipal, adminPrincipal.UserID, &usecase.UpdateUserInput{Role: ptr(entity.RoleStaff)})
		assert.ErrorIs(t, err, domainerrors.ErrRoleSelfChange)
	})

	t.Run("unchanged role on self is allowed", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		self := entity.Principal{UserID: targetID, Role: entity.RoleSupplier}

		fx.userRepo.EXPECT().FindByID(ctx, targetID).Return(&entity.User{ID: targetID, Role: entity.RoleSupplier}, nil)
		fx.userRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Name == "New Name" })).
			Return(nil)

		_, err := fx.service.UpdateUser(ctx, self, targetID, &usecase.UpdateUserInput{
			Name: ptr("New Name"),
			Role: ptr(entity.RoleSupplier),
		})
		require.NoError(t, err)
	})

	t.Run("staff cannot edit others", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.UpdateUser(context.Background(), staffPrincipal, targetID, &usecase.UpdateUserInput{Name: ptr("x")})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestUserService_UpdateUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	self := entity.Principal{UserID: uuid.New(), Role: entity.RoleNonprofit}

	fx.userRepo.EXPECT().FindByID(ctx, self.UserID).Return(&entity.User{ID: self.UserID, Role: entity.RoleNonprofit}, nil)
	fx.userRepo.EXPECT().Update(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := fx.service.UpdateUser(ctx, self, self.UserID, &usecase.UpdateUserInput{Email: ptr("taken@example.com")})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_DeleteUser(t *testing.T) {
	targetID := uuid.New()

	t.Run("admin", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().Delete(mock.Anything, targetID).Return(nil)

		require.NoError(t, fx.service.DeleteUser(context.Background(), adminPrincipal, targetID))
	})

	t.Run("missing user", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().Delete(mock.Anything, targetID).Return(repository.ErrUserNotFound)

		err := fx.service.DeleteUser(context.Background(), adminPrincipal, targetID)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("staff forbidden", func(t *testing.T) {
		fx := createTestUserService(t)

		err := fx.service.DeleteUser(context.Background(), staffPrincipal, targetID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestUserService_ListUsers(t *testing.T) {
	fx := createTestUserService(t)
	role := entity.RoleNonprofit
	filter := repository.UserFilter{Role: &role}

	fx.userRepo.EXPECT().List(mock.Anything, filter).Return([]*entity.User{{ID: uuid.New()}}, nil)

	users, err := fx.service.ListUsers(context.Background(), adminPrincipal, filter)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
