package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table. Categories are linked through the
// 'post_categories' join table.
type PostModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title      string    `gorm:"type:varchar(255);not null"`
	Slug       string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Content    string    `gorm:"type:text;not null"`
	CoverImage string    `gorm:"type:varchar(512)"`
	CreatedBy  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Author     *UserModel      `gorm:"foreignKey:CreatedBy"`
	Categories []CategoryModel `gorm:"many2many:post_categories;"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
