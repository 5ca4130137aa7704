package usecase

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID uuid.UUID
	Qty       int
}

// ShippingAddressInput is the destination of a new order.
type ShippingAddressInput struct {
	Address    string
	City       string
	PostalCode string
	Country    string
}

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	Items           []OrderItemInput
	ShippingAddress ShippingAddressInput
	PaymentMethod   string
	ItemsPrice      float64
	ShippingPrice   float64
	TaxPrice        float64
	TotalPrice      float64
}

// --- Output DTOs ---

// OrderPage is one page of the administrative order listing.
type OrderPage struct {
	Orders []*entity.Order
	Page   int
	Pages  int
	Total  int64
}

// OrderUsecase defines the interface for order business operations.
type OrderUsecase interface {
	// CreateOrder places an order, snapshotting product name/price/image per
	// line and decrementing stock within one transaction.
	CreateOrder(ctx context.Context, userID uuid.UUID, input *CreateOrderInput) (*entity.Order, error)

	// ListMyOrders returns the caller's orders, newest first.
	ListMyOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// GetOrder returns an order visible to its owner or to admins.
	GetOrder(ctx context.Context, id, requesterID uuid.UUID, isAdmin bool) (*entity.Order, error)

	// ListOrders returns one page of all orders for administrators.
	ListOrders(ctx context.Context, page int) (*OrderPage, error)

	MarkOrderPaid(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	MarkOrderDelivered(ctx context.Context, id uuid.UUID) (*entity.Order, error)
}
