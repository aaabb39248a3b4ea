package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email string    `gorm:"type:varchar(255);unique;not null"`
	Name  string    `gorm:"type:varchar(100)"`
	Phone string    `gorm:"type:varchar(20)"`

	// Address is the legacy single-line address kept in sync with the structured fields.
	Address      string `gorm:"type:text"`
	CEP          string `gorm:"column:cep;type:varchar(9)"`
	Street       string `gorm:"type:varchar(255)"`
	Number       string `gorm:"type:varchar(20)"`
	Complement   string `gorm:"type:varchar(100)"`
	Neighborhood string `gorm:"type:varchar(100)"`
	City         string `gorm:"type:varchar(100)"`
	State        string `gorm:"type:varchar(2)"`

	IsAdmin   bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
