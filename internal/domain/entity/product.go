// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item. Rating and NumReviews are denormalized
// aggregates over the product's reviews, recomputed on every review write.
type Product struct {
	ID           uuid.UUID       // The unique identifier of the product.
	UserID       uuid.UUID       // The user (admin) who created the product.
	Name         string          // Display name, matched by the listing keyword filter.
	Brand        string          // Manufacturer or brand label.
	Category     string          // Free-form category label.
	Description  string          // Long-form product description.
	Price        float64         // Unit price.
	CountInStock int             // Units currently available.
	Rating       float64         // Mean of all review ratings, 0 when there are none.
	NumReviews   int             // Count of all reviews.
	Images       []*ProductImage // Extra images owned by this product.
	Colors       []*ProductColor // Color variants owned by this product.
	Reviews      []*Review       // Customer reviews referencing this product.
	CreatedAt    time.Time       // Timestamp of product creation.
	UpdatedAt    time.Time       // Timestamp of the last modification.
}

// ProductImage is an extra image owned by a product. Key references the
// stored blob; the bytes themselves live in the image store.
type ProductImage struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Key       string
	CreatedAt time.Time
}

// ProductColor is a color variant owned by a product. The whole set is
// replaced when a product update supplies a colors list.
type ProductColor struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Name      string
	RGB       string
}
