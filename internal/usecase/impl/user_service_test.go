package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	mockRepo "catalog/internal/mocks/repository"
	mockService "catalog/internal/mocks/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	tokenSvc *mockService.MockTokenService
	hasher   *mockService.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := new(mockRepo.MockUserRepository)
	tokenSvc := new(mockService.MockTokenService)
	hasher := new(mockService.MockPasswordHasher)
	txManager := &mockRepo.FakeTransactionManager{
		Factory: &mockRepo.FakeRepositoryFactory{Users: userRepo},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return userServiceFixtures{
		service:  NewUserService(txManager, tokenSvc, hasher, logger),
		userRepo: userRepo,
		tokenSvc: tokenSvc,
		hasher:   hasher,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Username: "alice",
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret-password",
	}

	fx.hasher.On("Hash", "secret-password").Return("hashed", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.tokenSvc.On("GenerateTokens", mock.AnythingOfType("uuid.UUID"), []string{entity.RoleCustomer}).
		Return("access", "refresh", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", output.User.Email)
	assert.Equal(t, "hashed", output.User.PasswordHash)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.On("Hash", "secret-password").Return("hashed", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists)

	_, err := fx.service.Register(ctx, &usecase.RegisterUserInput{
		Email:    "taken@example.com",
		Password: "secret-password",
	})

	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	fx.tokenSvc.AssertNotCalled(t, "GenerateTokens", mock.Anything, mock.Anything)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{
		ID:           userID,
		Email:        "admin@example.com",
		IsAdmin:      true,
		PasswordHash: "hashed",
	}

	fx.userRepo.On("FindByEmail", ctx, "admin@example.com").Return(stored, nil)
	fx.hasher.On("Check", "secret-password", "hashed").Return(true)
	fx.tokenSvc.On("GenerateTokens", userID, []string{entity.RoleCustomer, entity.RoleAdmin}).
		Return("access", "refresh", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "admin@example.com",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.True(t, output.User.IsAdmin)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{ID: uuid.New(), PasswordHash: "hashed"}

	fx.userRepo.On("FindByEmail", ctx, "user@example.com").Return(stored, nil)
	fx.hasher.On("Check", "wrong", "hashed").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "user@example.com", Password: "wrong"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	// Unknown email and wrong password are indistinguishable to the caller
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_UpdateProfile_PartialAndFreshToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{
		ID:           userID,
		Email:        "old@example.com",
		Name:         "Old Name",
		PasswordHash: "old-hash",
	}

	newName := "New Name"
	emptyPassword := ""
	input := &usecase.UpdateProfileInput{
		Name:     &newName,
		Password: &emptyPassword,
	}

	fx.userRepo.On("FindByID", ctx, userID).Return(stored, nil)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.tokenSvc.On("GenerateTokens", userID, []string{entity.RoleCustomer}).
		Return("fresh-access", "fresh-refresh", nil)

	output, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "New Name", output.User.Name)
	// Untouched fields survive; empty password keeps the old hash
	assert.Equal(t, "old@example.com", output.User.Email)
	assert.Equal(t, "old-hash", output.User.PasswordHash)
	assert.Equal(t, "fresh-access", output.AccessToken)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserService_UpdateProfile_PasswordChange(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{ID: userID, PasswordHash: "old-hash"}

	newPassword := "new-password"
	input := &usecase.UpdateProfileInput{Password: &newPassword}

	fx.userRepo.On("FindByID", ctx, userID).Return(stored, nil)
	fx.hasher.On("Hash", "new-password").Return("new-hash", nil)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.tokenSvc.On("GenerateTokens", userID, []string{entity.RoleCustomer}).
		Return("access", "refresh", nil)

	output, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "new-hash", output.User.PasswordHash)
}

func TestUserService_UpdateUser_AdminFlag(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{ID: userID, Email: "user@example.com"}

	isAdmin := true
	input := &usecase.AdminUpdateUserInput{IsAdmin: &isAdmin}

	fx.userRepo.On("FindByID", ctx, userID).Return(stored, nil)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.UpdateUser(ctx, userID, input)

	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
	assert.Equal(t, "user@example.com", user.Email)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("Delete", ctx, userID).Return(repository.ErrUserNotFound)

	err := fx.service.DeleteUser(ctx, userID)

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
