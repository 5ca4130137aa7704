package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order captures a checkout: line items, one shipping address and the
// price breakdown. Items snapshot product name/price/image at order time.
type Order struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	PaymentMethod   string
	ItemsPrice      float64
	ShippingPrice   float64
	TaxPrice        float64
	TotalPrice      float64
	IsPaid          bool
	PaidAt          *time.Time
	IsDelivered     bool
	DeliveredAt     *time.Time
	Items           []*OrderItem
	ShippingAddress *ShippingAddress
	CreatedAt       time.Time
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Name      string
	Qty       int
	Price     float64
	Image     string
}

// ShippingAddress is the destination of an order. One per order.
type ShippingAddress struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	Address    string
	City       string
	PostalCode string
	Country    string
}
