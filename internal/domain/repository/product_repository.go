// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific sentinel errors returned by product persistence.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrImageNotFound   = errors.New("product image not found")
	ErrColorNotFound   = errors.New("product color not found")
)

// ProductRepository defines the standard operations for product persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ProductRepository interface {
	// FindByID retrieves a single product with its images, colors and reviews.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDForUpdate retrieves a product while holding a row-level lock
	// until the surrounding transaction completes. Used by the review
	// aggregation path to serialize concurrent rating recomputations.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List returns one page of products whose name matches the keyword
	// (case-insensitive substring, empty keyword matches all), newest first,
	// along with the total match count.
	List(ctx context.Context, keyword string, offset, limit int) ([]*entity.Product, int64, error)

	// TopRated returns up to limit products with rating >= minRating, ordered by rating descending.
	TopRated(ctx context.Context, minRating float64, limit int) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update persists scalar product fields (not the owned collections).
	Update(ctx context.Context, product *entity.Product) error

	// UpdateRating persists the denormalized rating aggregate.
	UpdateRating(ctx context.Context, id uuid.UUID, rating float64, numReviews int) error

	// Delete removes a product together with its owned images, colors and reviews.
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceColors deletes every color owned by the product and inserts the given set.
	ReplaceColors(ctx context.Context, productID uuid.UUID, colors []*entity.ProductColor) error

	// AddColor appends a single color variant.
	AddColor(ctx context.Context, color *entity.ProductColor) error

	// DeleteColor removes the color only when both ids match an existing row.
	DeleteColor(ctx context.Context, productID, colorID uuid.UUID) error

	// AddImage appends a single extra image row.
	AddImage(ctx context.Context, image *entity.ProductImage) error

	// DeleteImage removes the image row only when both ids match, returning
	// the deleted row so the caller can clean up the stored blob.
	DeleteImage(ctx context.Context, productID, imageID uuid.UUID) (*entity.ProductImage, error)
}
