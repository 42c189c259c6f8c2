package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale kinds
const (
	SaleKindService = "service"
	SaleKindProduct = "product"
)

// Sale is an immutable record of one unit-priced transaction. Appending a
// sale is the sole trigger for product stock and client aggregate updates;
// there is no edit or void path.
type Sale struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	ClientID *uuid.UUID `gorm:"type:uuid;index" json:"clientId"`

	Kind   string    `gorm:"type:varchar(10);not null" json:"kind"` // 'service' or 'product'
	ItemID uuid.UUID `gorm:"type:uuid;index;not null" json:"itemId"`
	// ItemName is snapshotted at checkout so reports survive catalog renames.
	ItemName string `gorm:"not null" json:"itemName"`

	Quantity   int     `gorm:"default:1" json:"quantity"`
	UnitPrice  float64 `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	TotalPrice float64 `gorm:"type:decimal(10,2);not null" json:"totalPrice"`

	PaymentMethod string `gorm:"not null" json:"paymentMethod"`

	CreatedAt time.Time `json:"createdAt"`
}

func (s *Sale) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
