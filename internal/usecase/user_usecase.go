// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// CreateUserInput is an admin-created account with an explicit role.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// UpdateUserInput carries the fields to change. Nil fields are left as they are.
type UpdateUserInput struct {
	Name  *string
	Email *string
	Role  *entity.Role
}

// --- Output DTOs ---

// AuthOutput returns the token pair issued for a user.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// AuthUsecase issues JWT pairs for email/password accounts.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)
}

// UserUsecase is account administration. Every method authorizes against the principal.
type UserUsecase interface {
	CreateUser(ctx context.Context, principal entity.Principal, input *CreateUserInput) (*entity.User, error)
	ListUsers(ctx context.Context, principal entity.Principal, filter repository.UserFilter) ([]*entity.User, error)
	GetUser(ctx context.Context, principal entity.Principal, id uuid.UUID) (*entity.User, error)

	// UpdateUser changes name and email for self; only admins change roles, never their own.
	UpdateUser(ctx context.Context, principal entity.Principal, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, principal entity.Principal, id uuid.UUID) error
}
