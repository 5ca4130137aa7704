package repository

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a testify mock of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, keyword string, offset, limit int) ([]*entity.Product, int64, error) {
	args := m.Called(ctx, keyword, offset, limit)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) TopRated(ctx context.Context, minRating float64, limit int) ([]*entity.Product, error) {
	args := m.Called(ctx, minRating, limit)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *MockProductRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating float64, numReviews int) error {
	args := m.Called(ctx, id, rating, numReviews)

	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockProductRepository) ReplaceColors(ctx context.Context, productID uuid.UUID, colors []*entity.ProductColor) error {
	args := m.Called(ctx, productID, colors)

	return args.Error(0)
}

func (m *MockProductRepository) AddColor(ctx context.Context, color *entity.ProductColor) error {
	args := m.Called(ctx, color)

	return args.Error(0)
}

func (m *MockProductRepository) DeleteColor(ctx context.Context, productID, colorID uuid.UUID) error {
	args := m.Called(ctx, productID, colorID)

	return args.Error(0)
}

func (m *MockProductRepository) AddImage(ctx context.Context, image *entity.ProductImage) error {
	args := m.Called(ctx, image)

	return args.Error(0)
}

func (m *MockProductRepository) DeleteImage(ctx context.Context, productID, imageID uuid.UUID) (*entity.ProductImage, error) {
	args := m.Called(ctx, productID, imageID)
	if image, ok := args.Get(0).(*entity.ProductImage); ok {
		return image, args.Error(1)
	}

	return nil, args.Error(1)
}
