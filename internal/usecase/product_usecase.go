// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ColorInput defines one color variant in a product payload.
type ColorInput struct {
	Name string
	RGB  string
}

// UpdateProductInput defines a partial product update. Nil fields are left
// untouched; a non-nil Colors slice wholesale-replaces the stored colors.
type UpdateProductInput struct {
	Name         *string
	Price        *float64
	Brand        *string
	Category     *string
	CountInStock *int
	Description  *string
	Colors       *[]ColorInput
}

// AddImageInput carries an uploaded image body.
type AddImageInput struct {
	Body        io.Reader
	ContentType string
}

// --- Output DTOs ---

// ProductPage is one page of the product listing.
type ProductPage struct {
	Products []*entity.Product
	Page     int
	Pages    int
	Total    int64
}

// ProductUsecase defines the interface for catalog business operations.
// This is the contract that the delivery layer will depend on.
type ProductUsecase interface {
	ListProducts(ctx context.Context, keyword string, page int) (*ProductPage, error)
	TopProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, creatorID uuid.UUID) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	AddProductImage(ctx context.Context, productID uuid.UUID, input *AddImageInput) (*entity.ProductImage, error)
	DeleteProductImage(ctx context.Context, productID, imageID uuid.UUID) error
	AddProductColor(ctx context.Context, productID uuid.UUID, input *ColorInput) (*entity.ProductColor, error)
	DeleteProductColor(ctx context.Context, productID, colorID uuid.UUID) error
}
