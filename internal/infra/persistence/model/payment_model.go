package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table. Amount is stored in rupees;
// conversion to paisa happens only at the gateway boundary.
type PaymentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID    string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Pidx       string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	PaymentURL string    `gorm:"type:text;not null;default:''"`
	Amount     int64     `gorm:"not null"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	PackageID  uuid.UUID `gorm:"type:uuid;not null"`
	Method     string    `gorm:"type:varchar(20);not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User    *UserModel    `gorm:"foreignKey:UserID"`
	Package *PackageModel `gorm:"foreignKey:PackageID"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
