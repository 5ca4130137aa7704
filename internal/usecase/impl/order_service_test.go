package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"catalog/config"
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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	t.Helper()

	orderRepo := new(mockRepo.MockOrderRepository)
	productRepo := new(mockRepo.MockProductRepository)
	txManager := &mockRepo.FakeTransactionManager{
		Factory: &mockRepo.FakeRepositoryFactory{
			Orders:   orderRepo,
			Products: productRepo,
		},
	}
	cfg := &config.Config{
		Catalog: &config.CatalogConfig{PageSize: 4, TopRatedLimit: 5, TopRatedMinRating: 4},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return orderServiceFixtures{
		service:     NewOrderService(txManager, cfg, logger),
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func TestOrderService_CreateOrder_EmptyItemsRejected(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	_, err := fx.service.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{})

	require.ErrorIs(t, err, domainerrors.ErrNoOrderItems)
	fx.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_NonPositiveQtyRejected(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	for _, qty := range []int{0, -2} {
		_, err := fx.service.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{
			Items: []usecase.OrderItemInput{{ProductID: uuid.New(), Qty: qty}},
		})

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	}

	// Stock must never be touched for a rejected order
	fx.productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	fx.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_SnapshotsAndDecrementsStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := &entity.Product{
		ID:           productID,
		Name:         "Widget",
		Price:        19.99,
		CountInStock: 10,
		Images:       []*entity.ProductImage{{Key: "img-1"}},
	}

	fx.productRepo.On("FindByIDForUpdate", ctx, productID).Return(product, nil)
	fx.productRepo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	fx.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	order, err := fx.service.CreateOrder(ctx, userID, &usecase.CreateOrderInput{
		Items:         []usecase.OrderItemInput{{ProductID: productID, Qty: 3}},
		PaymentMethod: "PayPal",
		TotalPrice:    59.97,
		ShippingAddress: usecase.ShippingAddressInput{
			Address: "1 Main St",
			City:    "Springfield",
		},
	})

	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Widget", order.Items[0].Name)
	assert.InDelta(t, 19.99, order.Items[0].Price, 1e-9)
	assert.Equal(t, "img-1", order.Items[0].Image)
	assert.Equal(t, 7, product.CountInStock)
	require.NotNil(t, order.ShippingAddress)
	assert.Equal(t, "Springfield", order.ShippingAddress.City)
}

func TestOrderService_CreateOrder_UnknownProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.On("FindByIDForUpdate", ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: productID, Qty: 1}},
	})

	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	fx.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_GetOrder_OwnerAllowed(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	ownerID := uuid.New()
	stored := &entity.Order{ID: orderID, UserID: ownerID}

	fx.orderRepo.On("FindByID", ctx, orderID).Return(stored, nil)

	order, err := fx.service.GetOrder(ctx, orderID, ownerID, false)

	require.NoError(t, err)
	assert.Equal(t, stored, order)
}

func TestOrderService_GetOrder_StrangerForbidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	stored := &entity.Order{ID: orderID, UserID: uuid.New()}

	fx.orderRepo.On("FindByID", ctx, orderID).Return(stored, nil)

	_, err := fx.service.GetOrder(ctx, orderID, uuid.New(), false)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_GetOrder_AdminAllowed(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	stored := &entity.Order{ID: orderID, UserID: uuid.New()}

	fx.orderRepo.On("FindByID", ctx, orderID).Return(stored, nil)

	order, err := fx.service.GetOrder(ctx, orderID, uuid.New(), true)

	require.NoError(t, err)
	assert.Equal(t, stored, order)
}

func TestOrderService_MarkOrderPaid(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	stored := &entity.Order{ID: orderID}

	fx.orderRepo.On("FindByID", ctx, orderID).Return(stored, nil)
	fx.orderRepo.On("Update", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	order, err := fx.service.MarkOrderPaid(ctx, orderID)

	require.NoError(t, err)
	assert.True(t, order.IsPaid)
	require.NotNil(t, order.PaidAt)
	assert.False(t, order.IsDelivered)
}

func TestOrderService_MarkOrderDelivered_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.On("FindByID", ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.MarkOrderDelivered(ctx, orderID)

	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrders_Pagination(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orders := []*entity.Order{{ID: uuid.New()}}

	fx.orderRepo.On("List", ctx, 0, 4).Return(orders, int64(6), nil)

	result, err := fx.service.ListOrders(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 2, result.Pages)
	assert.Equal(t, orders, result.Orders)
}
