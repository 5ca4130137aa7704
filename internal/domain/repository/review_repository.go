package repository

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// ExistsByUserAndProduct reports whether the user already reviewed the product.
	ExistsByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (bool, error)

	// Create persists a new review. The storage layer enforces the
	// (user, product) uniqueness constraint as a backstop to the fast-path check.
	Create(ctx context.Context, review *entity.Review) error

	// ListByProduct returns all reviews for a product, newest first.
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)

	// AggregateByProduct returns the review count and mean rating for a product.
	// A product without reviews yields (0, 0).
	AggregateByProduct(ctx context.Context, productID uuid.UUID) (count int64, avg float64, err error)
}
