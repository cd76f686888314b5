package model

import (
	"time"

	"github.com/google/uuid"
)

// PackageModel mirrors the 'packages' table. Price is stored in rupees.
type PackageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Price       int64     `gorm:"not null"`
	ExpiryDays  int       `gorm:"not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PackageModel) TableName() string {
	return "packages"
}

// PackageSubscriptionModel mirrors the 'user_package_subscriptions' table.
// The (user_id, package_id) pair is unique so repeated grants are idempotent.
type PackageSubscriptionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sub_user_package"`
	PackageID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sub_user_package"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time

	Package *PackageModel `gorm:"foreignKey:PackageID"`
}

// TableName explicitly sets the table name for GORM.
func (PackageSubscriptionModel) TableName() string {
	return "user_package_subscriptions"
}
