package postgres

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindByID retrieves an order with its items and shipping address.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("ShippingAddress").
		First(&orderM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser returns all orders placed by the given user, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("ShippingAddress").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for _, orderM := range orderMs {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// List returns one page of all orders, newest first, with the total count.
func (repo *orderRepository) List(ctx context.Context, offset, limit int) ([]*entity.Order, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderMs []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("ShippingAddress").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orderMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for _, orderM := range orderMs {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// Create persists an order together with its items and shipping address.
// GORM inserts the associations in the same statement batch; callers wrap
// this in a transaction when combining it with stock adjustments.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order references an unknown product or user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = itemM.OrderID
	}
	if orderM.ShippingAddress != nil && order.ShippingAddress != nil {
		order.ShippingAddress.ID = orderM.ShippingAddress.ID
		order.ShippingAddress.OrderID = orderM.ShippingAddress.OrderID
	}

	return nil
}

// Update persists order state changes (paid/delivered flags and timestamps).
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	updates := map[string]any{
		"is_paid":      order.IsPaid,
		"paid_at":      order.PaidAt,
		"is_delivered": order.IsDelivered,
		"delivered_at": order.DeliveredAt,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, &entity.OrderItem{
			ID:        itemM.ID,
			OrderID:   itemM.OrderID,
			ProductID: itemM.ProductID,
			Name:      itemM.Name,
			Qty:       itemM.Qty,
			Price:     itemM.Price,
			Image:     itemM.Image,
		})
	}

	var shipping *entity.ShippingAddress
	if data.ShippingAddress != nil {
		shipping = &entity.ShippingAddress{
			ID:         data.ShippingAddress.ID,
			OrderID:    data.ShippingAddress.OrderID,
			Address:    data.ShippingAddress.Address,
			City:       data.ShippingAddress.City,
			PostalCode: data.ShippingAddress.PostalCode,
			Country:    data.ShippingAddress.Country,
		}
	}

	return &entity.Order{
		ID:              data.ID,
		UserID:          data.UserID,
		PaymentMethod:   data.PaymentMethod,
		ItemsPrice:      data.ItemsPrice,
		ShippingPrice:   data.ShippingPrice,
		TaxPrice:        data.TaxPrice,
		TotalPrice:      data.TotalPrice,
		IsPaid:          data.IsPaid,
		PaidAt:          data.PaidAt,
		IsDelivered:     data.IsDelivered,
		DeliveredAt:     data.DeliveredAt,
		Items:           items,
		ShippingAddress: shipping,
		CreatedAt:       data.CreatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	itemMs := make([]*model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		itemMs = append(itemMs, &model.OrderItemModel{
			ProductID: item.ProductID,
			Name:      item.Name,
			Qty:       item.Qty,
			Price:     item.Price,
			Image:     item.Image,
		})
	}

	var shippingM *model.ShippingAddressModel
	if data.ShippingAddress != nil {
		shippingM = &model.ShippingAddressModel{
			Address:    data.ShippingAddress.Address,
			City:       data.ShippingAddress.City,
			PostalCode: data.ShippingAddress.PostalCode,
			Country:    data.ShippingAddress.Country,
		}
	}

	return &model.OrderModel{
		UserID:          data.UserID,
		PaymentMethod:   data.PaymentMethod,
		ItemsPrice:      data.ItemsPrice,
		ShippingPrice:   data.ShippingPrice,
		TaxPrice:        data.TaxPrice,
		TotalPrice:      data.TotalPrice,
		IsPaid:          data.IsPaid,
		PaidAt:          data.PaidAt,
		IsDelivered:     data.IsDelivered,
		DeliveredAt:     data.DeliveredAt,
		Items:           itemMs,
		ShippingAddress: shippingM,
	}
}
