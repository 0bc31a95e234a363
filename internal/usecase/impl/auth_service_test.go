package impl

import (
	"context"
	"testing"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	mockRepo "foodbridge/internal/mocks/repository"
	mockSvc "foodbridge/internal/mocks/service"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newTestLogger(),
	})

	return authServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("Password123!").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "jane@example.com" && u.Role == entity.RoleOther && u.PasswordHash == "hashed"
		})).
		RunAndReturn(func(_ context.Context, u *entity.User) error {
			u.ID = userID
			return nil
		})
	fx.tokenService.EXPECT().GenerateTokens(userID, "OTHER").Return("access", "refresh", nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Jane",
		Email:    "  Jane@Example.com ",
		Password: "Password123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, userID, out.User.ID)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "jane@example.com", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_DuplicateOnInsert(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "jane@example.com", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "jane@example.com", PasswordHash: "hashed", Role: entity.RoleNonprofit}

	t.Run("valid credentials", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
		fx.tokenService.EXPECT().GenerateTokens(user.ID, "NONPROFIT").Return("a", "r", nil)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "JANE@example.com", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, user, out.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "jane@example.com", Password: "nope"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("repository failure", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(nil, errors.New("connection refused"))

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "jane@example.com", Password: "x"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh_ReadsCurrentRole(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateToken("refresh-token").
		Return(&service.Claims{UserID: userID, Role: "OTHER", Type: service.TokenTypeRefresh}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleSupplier}, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID, "SUPPLIER").Return("a2", "r2", nil)

	out, err := fx.service.Refresh(ctx, "refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "a2", out.AccessToken)
}

func TestAuthService_Refresh_Rejected(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name  string
		setup func(fx authServiceFixtures)
	}{
		{
			name: "invalid signature",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("tok").Return(nil, errors.New("bad signature"))
			},
		},
		{
			name: "access token presented",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("tok").
					Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil)
			},
		},
		{
			name: "account deleted",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("tok").
					Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
				fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			_, err := fx.service.Refresh(context.Background(), "tok")
			assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
		})
	}
}
