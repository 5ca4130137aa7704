package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SubmitReviewInput defines the data required to review a product.
// Rating is loosely typed: clients send it as a JSON number or string, and
// the use case parses and validates it.
type SubmitReviewInput struct {
	Rating  any
	Comment string
}

// ReviewUsecase defines the interface for review business operations.
type ReviewUsecase interface {
	// SubmitReview records one review per (user, product) and refreshes the
	// product's denormalized rating aggregate atomically.
	SubmitReview(ctx context.Context, productID, userID uuid.UUID, input *SubmitReviewInput) error
}
