package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		txManager: txManager,
		logger:    logger,
	}
}

// SubmitReview records a review and refreshes the product's rating aggregate.
// The product row stays locked for the whole transaction so concurrent
// submissions serialize instead of overwriting each other's aggregate.
func (srv *reviewService) SubmitReview(ctx context.Context, productID, userID uuid.UUID, input *usecase.SubmitReviewInput) error {
	srv.logger.Info("Submitting review", "productID", productID, "userID", userID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		reviewRepo := repoFactory.ReviewRepo()

		// 1. Lock the product row for the duration of the transaction
		if _, err := productRepo.FindByIDForUpdate(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to lock product")
		}

		// 2. One review per (user, product); the unique index backstops this check
		exists, err := reviewRepo.ExistsByUserAndProduct(ctx, userID, productID)
		if err != nil {
			return errors.Wrap(err, "failed to check existing review")
		}
		if exists {
			return domainerrors.ErrReviewAlreadyExists
		}

		// 3. Validate the rating only after the duplicate check so a repeat
		// submission is rejected as a conflict regardless of its content
		rating, err := parseRating(input.Rating)
		if err != nil {
			return err
		}

		// 4. Snapshot the reviewer's display name
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find reviewer")
		}

		review := &entity.Review{
			ProductID: productID,
			UserID:    userID,
			Name:      user.Name,
			Rating:    rating,
			Comment:   input.Comment,
		}
		if err := reviewRepo.Create(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		// 5. Recompute the denormalized aggregate from all reviews
		count, avg, err := reviewRepo.AggregateByProduct(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to aggregate reviews")
		}

		if err := productRepo.UpdateRating(ctx, productID, avg, int(count)); err != nil {
			return errors.Wrap(err, "failed to update product rating")
		}

		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

// parseRating accepts the loosely typed rating value clients send.
// Only non-numeric and non-positive values are rejected; there is no upper
// bound check.
func parseRating(raw any) (float64, error) {
	var rating float64

	switch value := raw.(type) {
	case float64:
		rating = value
	case int:
		rating = float64(value)
	case json.Number:
		parsed, err := value.Float64()
		if err != nil {
			return 0, domainerrors.ErrInvalidRating
		}
		rating = parsed
	case string:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, domainerrors.ErrInvalidRating
		}
		rating = parsed
	default:
		return 0, domainerrors.ErrInvalidRating
	}

	if rating <= 0 {
		return 0, domainerrors.ErrInvalidRating
	}

	return rating, nil
}
