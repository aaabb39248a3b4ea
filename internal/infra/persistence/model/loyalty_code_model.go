package model

import (
	"time"

	"github.com/google/uuid"
)

// LoyaltyCodeModel mirrors the 'loyalty_codes' table.
// The code column carries a unique constraint so concurrent issuance cannot
// produce duplicates, and used_at doubles as the single-use marker.
type LoyaltyCodeModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code      string     `gorm:"type:char(6);unique;not null"`
	Email     string     `gorm:"type:varchar(255);not null;index"`
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UsedAt    *time.Time
	UsedBy    *uuid.UUID `gorm:"type:uuid"`
}

// TableName explicitly sets the table name for GORM.
func (LoyaltyCodeModel) TableName() string {
	return "loyalty_codes"
}
