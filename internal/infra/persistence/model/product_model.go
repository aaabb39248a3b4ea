package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table. Tags are stored as a JSONB array.
type ProductModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Description      string    `gorm:"type:text"`
	Price            float64   `gorm:"type:numeric(10,2);not null"`
	PromotionalPrice *float64  `gorm:"type:numeric(10,2)"`
	PromotionEndDate *time.Time
	Category         string         `gorm:"type:varchar(100);index"`
	ImageURL         string         `gorm:"type:text"`
	Tags             datatypes.JSON `gorm:"type:jsonb"`
	IsActive         bool           `gorm:"not null;default:true;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Images []ProductImageModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductImageModel mirrors the 'product_images' table.
// (product_id, display_order) is unique so the gallery order stays unambiguous.
type ProductImageModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_images_order"`
	ImageURL     string    `gorm:"type:text;not null"`
	DisplayOrder int       `gorm:"not null;uniqueIndex:idx_product_images_order"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}
