package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminRecordModel mirrors the 'admin_records' table, the roster of users
// who were ever promoted to admin. Rows survive deactivation so the
// authorship history stays intact.
type AdminRecordModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100)"`
	Email     string    `gorm:"type:varchar(255)"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User  *UserModel  `gorm:"foreignKey:UserID"`
	Posts []PostModel `gorm:"many2many:admin_posts;joinForeignKey:AdminUserID;joinReferences:PostID"`
}

// TableName explicitly sets the table name for GORM.
func (AdminRecordModel) TableName() string {
	return "admin_records"
}
