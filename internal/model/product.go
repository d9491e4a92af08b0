package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is the single catalog entity. Soft deleted rows stay in the table
// with deleted_at set and are excluded from every read path by GORM.
type Product struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"not null" json:"price" validate:"required,gt=0"`
	Category    string         `gorm:"type:varchar(100);not null;index" json:"category" validate:"required"`
	Stock       int            `gorm:"default:0" json:"stock"`
	ImageURL    *string        `gorm:"type:text" json:"image_url"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

// Hook Before Create to generate the UUID automatically
func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
