package model

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseModel mirrors the 'purchases' table. Each row is one redeemed loyalty code.
type PurchaseModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	TransactionID string    `gorm:"type:varchar(100)"`
	Amount        float64   `gorm:"type:numeric(10,2);not null;default:0"`
	Verified      bool      `gorm:"not null;default:false"`
	PurchasedAt   time.Time `gorm:"not null;index"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}
