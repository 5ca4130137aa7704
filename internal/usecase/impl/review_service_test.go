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
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service     usecase.ReviewUsecase
	productRepo *mockRepo.MockProductRepository
	reviewRepo  *mockRepo.MockReviewRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	t.Helper()

	productRepo := new(mockRepo.MockProductRepository)
	reviewRepo := new(mockRepo.MockReviewRepository)
	userRepo := new(mockRepo.MockUserRepository)
	txManager := &mockRepo.FakeTransactionManager{
		Factory: &mockRepo.FakeRepositoryFactory{
			Products: productRepo,
			Reviews:  reviewRepo,
			Users:    userRepo,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return reviewServiceFixtures{
		service:     NewReviewService(txManager, logger),
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
	}
}

func TestReviewService_SubmitReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()
	userID := uuid.New()
	product := &entity.Product{ID: productID, Rating: 4, NumReviews: 1}
	user := &entity.User{ID: userID, Name: "Alice"}

	fx.productRepo.On("FindByIDForUpdate", ctx, productID).Return(product, nil)
	fx.reviewRepo.On("ExistsByUserAndProduct", ctx, userID, productID).Return(false, nil)
	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	fx.reviewRepo.On("Create", ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	fx.reviewRepo.On("AggregateByProduct", ctx, productID).Return(int64(2), 4.5, nil)
	fx.productRepo.On("UpdateRating", ctx, productID, 4.5, 2).Return(nil)

	err := fx.service.SubmitReview(ctx, productID, userID, &usecase.SubmitReviewInput{
		Rating:  float64(5),
		Comment: "great",
	})

	require.NoError(t, err)

	created := fx.reviewRepo.Calls[1].Arguments.Get(1).(*entity.Review)
	assert.Equal(t, "Alice", created.Name)
	assert.InDelta(t, 5.0, created.Rating, 1e-9)
	assert.Equal(t, "great", created.Comment)
	fx.productRepo.AssertExpectations(t)
	fx.reviewRepo.AssertExpectations(t)
}

func TestReviewService_SubmitReview_Duplicate(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()
	userID := uuid.New()

	fx.productRepo.On("FindByIDForUpdate", ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.reviewRepo.On("ExistsByUserAndProduct", ctx, userID, productID).Return(true, nil)

	err := fx.service.SubmitReview(ctx, productID, userID, &usecase.SubmitReviewInput{Rating: float64(4)})

	require.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)
	// The aggregate must stay untouched on a rejected duplicate
	fx.reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.productRepo.AssertNotCalled(t, "UpdateRating", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewService_SubmitReview_DuplicateRejectedRegardlessOfContent(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()
	userID := uuid.New()

	fx.productRepo.On("FindByIDForUpdate", ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.reviewRepo.On("ExistsByUserAndProduct", ctx, userID, productID).Return(true, nil)

	// A repeat submission conflicts even when its rating would not parse
	err := fx.service.SubmitReview(ctx, productID, userID, &usecase.SubmitReviewInput{Rating: "abc"})

	require.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)
	fx.reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewService_SubmitReview_InvalidRating(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()
	userID := uuid.New()

	fx.productRepo.On("FindByIDForUpdate", ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.reviewRepo.On("ExistsByUserAndProduct", ctx, userID, productID).Return(false, nil)

	cases := []struct {
		name   string
		rating any
	}{
		{name: "zero", rating: float64(0)},
		{name: "negative", rating: float64(-1)},
		{name: "non numeric string", rating: "abc"},
		{name: "nil", rating: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := fx.service.SubmitReview(ctx, productID, userID, &usecase.SubmitReviewInput{Rating: tc.rating})

			require.ErrorIs(t, err, domainerrors.ErrInvalidRating)
		})
	}

	// Rejection happens before any write
	fx.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	fx.reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewService_SubmitReview_NumericStringAccepted(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()
	userID := uuid.New()

	fx.productRepo.On("FindByIDForUpdate", ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.reviewRepo.On("ExistsByUserAndProduct", ctx, userID, productID).Return(false, nil)
	fx.userRepo.On("FindByID", ctx, userID).Return(&entity.User{ID: userID, Name: "Bob"}, nil)
	fx.reviewRepo.On("Create", ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	fx.reviewRepo.On("AggregateByProduct", ctx, productID).Return(int64(1), 3.0, nil)
	fx.productRepo.On("UpdateRating", ctx, productID, 3.0, 1).Return(nil)

	err := fx.service.SubmitReview(ctx, productID, userID, &usecase.SubmitReviewInput{Rating: "3"})

	require.NoError(t, err)
}

func TestReviewService_SubmitReview_ProductNotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()
	userID := uuid.New()

	fx.productRepo.On("FindByIDForUpdate", ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	err := fx.service.SubmitReview(ctx, productID, userID, &usecase.SubmitReviewInput{Rating: float64(3)})

	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestParseRating(t *testing.T) {
	cases := []struct {
		name    string
		raw     any
		want    float64
		wantErr bool
	}{
		{name: "float", raw: 4.5, want: 4.5},
		{name: "int", raw: 3, want: 3},
		{name: "string", raw: "2.5", want: 2.5},
		{name: "upper bound not enforced", raw: 42.0, want: 42},
		{name: "zero", raw: 0.0, wantErr: true},
		{name: "negative string", raw: "-1", wantErr: true},
		{name: "garbage", raw: "abc", wantErr: true},
		{name: "bool", raw: true, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseRating(tc.raw)
			if tc.wantErr {
				require.ErrorIs(t, err, domainerrors.ErrInvalidRating)

				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}
