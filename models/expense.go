package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense is created manually and immutable thereafter.
type Expense struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Description string    `gorm:"not null" json:"description"`
	Category    string    `gorm:"not null" json:"category"`
	Amount      float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Date        string    `gorm:"type:varchar(10);index;not null" json:"date"` // YYYY-MM-DD

	PaymentMethod string `json:"paymentMethod"`
	Notes         string `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}
