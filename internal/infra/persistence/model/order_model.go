package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;index;not null"`
	PaymentMethod string    `gorm:"type:varchar(100)"`
	ItemsPrice    float64   `gorm:"not null;default:0"`
	ShippingPrice float64   `gorm:"not null;default:0"`
	TaxPrice      float64   `gorm:"not null;default:0"`
	TotalPrice    float64   `gorm:"not null;default:0"`
	IsPaid        bool      `gorm:"not null;default:false"`
	PaidAt        *time.Time
	IsDelivered   bool `gorm:"not null;default:false"`
	DeliveredAt   *time.Time
	CreatedAt     time.Time `gorm:"index"`

	Items           []*OrderItemModel     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ShippingAddress *ShippingAddressModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Name/price/image snapshot
// the product at order time.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Qty       int       `gorm:"not null"`
	Price     float64   `gorm:"not null"`
	Image     string    `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ShippingAddressModel mirrors the 'shipping_addresses' table. One row per order.
type ShippingAddressModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Address    string    `gorm:"type:varchar(255)"`
	City       string    `gorm:"type:varchar(100)"`
	PostalCode string    `gorm:"type:varchar(32)"`
	Country    string    `gorm:"type:varchar(100)"`
}

// TableName explicitly sets the table name for GORM.
func (ShippingAddressModel) TableName() string {
	return "shipping_addresses"
}
