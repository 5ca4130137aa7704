package usecase

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Username string
	Name     string
	Email    string
	Password string
	MobileNo string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput defines a partial self-service profile update.
// Nil fields are left untouched; a non-nil empty Password is ignored.
type UpdateProfileInput struct {
	Username *string
	Name     *string
	Email    *string
	Password *string
	MobileNo *string
}

// AdminUpdateUserInput defines a partial administrative user update.
type AdminUpdateUserInput struct {
	Username *string
	Name     *string
	Email    *string
	MobileNo *string
	IsAdmin  *bool
}

// --- Output DTOs ---

// AuthOutput returns the user together with a fresh token pair.
// Every identity write hands the client a new access token.
type AuthOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for account business operations.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*AuthOutput, error)

	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *AdminUpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
