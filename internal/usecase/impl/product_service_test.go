package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"catalog/config"
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

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	imageStore  *mockService.MockImageStore
}

func createTestProductService(t *testing.T) productServiceFixtures {
	t.Helper()

	productRepo := new(mockRepo.MockProductRepository)
	imageStore := new(mockService.MockImageStore)
	txManager := &mockRepo.FakeTransactionManager{
		Factory: &mockRepo.FakeRepositoryFactory{Products: productRepo},
	}
	cfg := &config.Config{
		Catalog: &config.CatalogConfig{
			PageSize:          4,
			TopRatedLimit:     5,
			TopRatedMinRating: 4,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return productServiceFixtures{
		service:     NewProductService(txManager, imageStore, cfg, logger),
		productRepo: productRepo,
		imageStore:  imageStore,
	}
}

func TestProductService_ListProducts_Pagination(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	products := []*entity.Product{{Name: "Widget"}}

	fx.productRepo.On("List", ctx, "wid", 4, 4).Return(products, int64(9), nil)

	result, err := fx.service.ListProducts(ctx, "wid", 2)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 3, result.Pages)
	assert.Equal(t, int64(9), result.Total)
	assert.Equal(t, products, result.Products)
}

func TestProductService_ListProducts_PageFallsBackToFirst(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.productRepo.On("List", ctx, "", 0, 4).Return([]*entity.Product{}, int64(0), nil)

	result, err := fx.service.ListProducts(ctx, "", -3)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 1, result.Pages)
}

func TestProductService_ListProducts_OutOfRangePageFallsBackToFirst(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	firstPage := []*entity.Product{{Name: "Widget"}}

	// 9 rows means 3 pages of 4; page 99 is past the end
	fx.productRepo.On("List", ctx, "", 392, 4).Return([]*entity.Product{}, int64(9), nil)
	fx.productRepo.On("List", ctx, "", 0, 4).Return(firstPage, int64(9), nil)

	result, err := fx.service.ListProducts(ctx, "", 99)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 3, result.Pages)
	assert.Equal(t, firstPage, result.Products)
}

func TestProductService_TopProducts(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	products := []*entity.Product{{Name: "Best", Rating: 4.8}}

	fx.productRepo.On("TopRated", ctx, 4.0, 5).Return(products, nil)

	result, err := fx.service.TopProducts(ctx)

	require.NoError(t, err)
	assert.Equal(t, products, result)
}

func TestProductService_CreateProduct_Placeholder(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	creatorID := uuid.New()

	fx.productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.CreateProduct(ctx, creatorID)

	require.NoError(t, err)
	assert.Equal(t, creatorID, product.UserID)
	assert.Equal(t, "Sample Name", product.Name)
	assert.Equal(t, "Sample Brand", product.Brand)
	assert.Equal(t, "Sample Category", product.Category)
	assert.Zero(t, product.Price)
	assert.Zero(t, product.CountInStock)
}

func TestProductService_UpdateProduct_PartialFieldsOnly(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	stored := &entity.Product{
		ID:    productID,
		Name:  "Original",
		Brand: "Acme",
		Price: 10,
	}

	newPrice := 25.0
	input := &usecase.UpdateProductInput{Price: &newPrice}

	fx.productRepo.On("FindByID", ctx, productID).Return(stored, nil)
	fx.productRepo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	_, err := fx.service.UpdateProduct(ctx, productID, input)

	require.NoError(t, err)

	updated := fx.productRepo.Calls[1].Arguments.Get(1).(*entity.Product)
	assert.InDelta(t, 25.0, updated.Price, 1e-9)
	// Omitted fields keep their stored values
	assert.Equal(t, "Original", updated.Name)
	assert.Equal(t, "Acme", updated.Brand)
	// No colors in the payload means no replacement
	fx.productRepo.AssertNotCalled(t, "ReplaceColors", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct_EmptyColorsClearsAll(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	stored := &entity.Product{ID: productID, Name: "Original"}

	colors := []usecase.ColorInput{}
	input := &usecase.UpdateProductInput{Colors: &colors}

	fx.productRepo.On("FindByID", ctx, productID).Return(stored, nil)
	fx.productRepo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	fx.productRepo.On("ReplaceColors", ctx, productID, mock.AnythingOfType("[]*entity.ProductColor")).Return(nil)

	_, err := fx.service.UpdateProduct(ctx, productID, input)

	require.NoError(t, err)

	var replaceCall *mock.Call
	for i := range fx.productRepo.Calls {
		if fx.productRepo.Calls[i].Method == "ReplaceColors" {
			replaceCall = &fx.productRepo.Calls[i]
		}
	}
	require.NotNil(t, replaceCall)
	assert.Empty(t, replaceCall.Arguments.Get(2).([]*entity.ProductColor))
}

func TestProductService_UpdateProduct_IncompleteColorsSkipped(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	stored := &entity.Product{ID: productID}

	colors := []usecase.ColorInput{
		{Name: "Red", RGB: "255,0,0"},
		{Name: "", RGB: "0,255,0"},
		{Name: "Blue", RGB: ""},
	}
	input := &usecase.UpdateProductInput{Colors: &colors}

	fx.productRepo.On("FindByID", ctx, productID).Return(stored, nil)
	fx.productRepo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	fx.productRepo.On("ReplaceColors", ctx, productID, mock.AnythingOfType("[]*entity.ProductColor")).Return(nil)

	_, err := fx.service.UpdateProduct(ctx, productID, input)

	require.NoError(t, err)

	for i := range fx.productRepo.Calls {
		if fx.productRepo.Calls[i].Method != "ReplaceColors" {
			continue
		}
		kept := fx.productRepo.Calls[i].Arguments.Get(2).([]*entity.ProductColor)
		require.Len(t, kept, 1)
		assert.Equal(t, "Red", kept[0].Name)
	}
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.On("FindByID", ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.UpdateProduct(ctx, productID, &usecase.UpdateProductInput{})

	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_DeleteProduct_CleansUpBlobs(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	stored := &entity.Product{
		ID: productID,
		Images: []*entity.ProductImage{
			{Key: "img-1"},
			{Key: "img-2"},
		},
	}

	fx.productRepo.On("FindByID", ctx, productID).Return(stored, nil)
	fx.productRepo.On("Delete", ctx, productID).Return(nil)
	fx.imageStore.On("Delete", ctx, "img-1").Return(nil)
	fx.imageStore.On("Delete", ctx, "img-2").Return(nil)

	err := fx.service.DeleteProduct(ctx, productID)

	require.NoError(t, err)
	fx.imageStore.AssertExpectations(t)
}

func TestProductService_AddProductImage(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	body := strings.NewReader("png bytes")

	fx.imageStore.On("Save", ctx, body, "image/png").Return("img-key", nil)
	fx.productRepo.On("FindByID", ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.productRepo.On("AddImage", ctx, mock.AnythingOfType("*entity.ProductImage")).Return(nil)

	image, err := fx.service.AddProductImage(ctx, productID, &usecase.AddImageInput{
		Body:        body,
		ContentType: "image/png",
	})

	require.NoError(t, err)
	assert.Equal(t, "img-key", image.Key)
	assert.Equal(t, productID, image.ProductID)
}

func TestProductService_AddProductImage_OrphanedBlobRemoved(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	body := strings.NewReader("png bytes")

	fx.imageStore.On("Save", ctx, body, "image/png").Return("img-key", nil)
	fx.productRepo.On("FindByID", ctx, productID).Return(nil, repository.ErrProductNotFound)
	fx.imageStore.On("Delete", ctx, "img-key").Return(nil)

	_, err := fx.service.AddProductImage(ctx, productID, &usecase.AddImageInput{
		Body:        body,
		ContentType: "image/png",
	})

	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	fx.imageStore.AssertExpectations(t)
}

func TestProductService_DeleteProductImage_PairMismatch(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	imageID := uuid.New()

	fx.productRepo.On("DeleteImage", ctx, productID, imageID).Return(nil, repository.ErrImageNotFound)

	err := fx.service.DeleteProductImage(ctx, productID, imageID)

	require.ErrorIs(t, err, domainerrors.ErrProductImageNotFound)
	fx.imageStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProductService_DeleteProductColor_PairMismatch(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	colorID := uuid.New()

	fx.productRepo.On("DeleteColor", ctx, productID, colorID).Return(repository.ErrColorNotFound)

	err := fx.service.DeleteProductColor(ctx, productID, colorID)

	require.ErrorIs(t, err, domainerrors.ErrProductColorNotFound)
}

func TestProductService_AddProductColor_RequiresNameAndRGB(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	_, err := fx.service.AddProductColor(ctx, productID, &usecase.ColorInput{Name: "Red"})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}
