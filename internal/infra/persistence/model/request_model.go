package model

import (
	"time"

	"github.com/google/uuid"
)

// RequestModel mirrors the 'requests' table, the ledger of pending approvals.
// RequestedFor carries the provisional category name for category requests
// and stays empty for admin promotion requests.
type RequestModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Type         string     `gorm:"type:varchar(20);not null;index"`
	Description  string     `gorm:"type:text"`
	Status       string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	RequestedBy  uuid.UUID  `gorm:"type:uuid;not null;index"`
	RequestedFor string     `gorm:"type:varchar(100)"`
	CheckedBy    *uuid.UUID `gorm:"type:uuid"`
	CheckedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Requester *UserModel `gorm:"foreignKey:RequestedBy"`
}

// TableName explicitly sets the table name for GORM.
func (RequestModel) TableName() string {
	return "requests"
}
