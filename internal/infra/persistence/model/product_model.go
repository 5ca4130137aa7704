package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type ProductModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;index;not null"`
	Name         string    `gorm:"type:varchar(255);not null;index"`
	Brand        string    `gorm:"type:varchar(100)"`
	Category     string    `gorm:"type:varchar(100)"`
	Description  string    `gorm:"type:text"`
	Price        float64   `gorm:"not null;default:0"`
	CountInStock int       `gorm:"not null;default:0"`
	Rating       float64   `gorm:"not null;default:0"`
	NumReviews   int       `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time

	Images  []*ProductImageModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Colors  []*ProductColorModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Reviews []*ReviewModel       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductImageModel mirrors the 'product_images' table. Key references the stored blob.
type ProductImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null"`
	Key       string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}

// ProductColorModel mirrors the 'product_colors' table.
type ProductColorModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	RGB       string    `gorm:"column:rgb;type:varchar(32);not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductColorModel) TableName() string {
	return "product_colors"
}
