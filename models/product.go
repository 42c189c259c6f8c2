package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	SalePrice float64   `gorm:"type:decimal(10,2);not null" json:"salePrice"`
	CostPrice float64   `gorm:"type:decimal(10,2);not null" json:"costPrice"`

	// Stock is mutated only by sale recording and manual adjustments.
	// No floor is enforced; it can go negative.
	Stock    int `gorm:"default:0" json:"stock"`
	MinStock int `gorm:"default:5" json:"minStock"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
