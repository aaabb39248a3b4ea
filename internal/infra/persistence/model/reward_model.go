package model

import (
	"time"

	"github.com/google/uuid"
)

// RewardModel mirrors the 'rewards' table.
// A partial unique index on user_id (WHERE claimed_at IS NULL) enforces at most
// one unclaimed reward per user; it lives in the migration, not in GORM tags.
type RewardModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	RewardType string    `gorm:"type:varchar(100);not null"`
	ExpiryDate time.Time `gorm:"not null"`
	ClaimedAt  *time.Time
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (RewardModel) TableName() string {
	return "rewards"
}
