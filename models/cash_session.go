package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cash session statuses
const (
	CashSessionOpen   = "open"
	CashSessionClosed = "closed"
)

// CashSession brackets one day of cash handling. ExpectedAmount and
// Discrepancy are computed on close: expected = opening + sum of the day's
// sale totals, discrepancy = declared - expected (positive = surplus).
type CashSession struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Date string    `gorm:"type:varchar(10);index;not null" json:"date"` // YYYY-MM-DD

	OpeningAmount  float64  `gorm:"type:decimal(10,2);not null" json:"openingAmount"`
	ClosingAmount  *float64 `gorm:"type:decimal(10,2)" json:"closingAmount"`
	ExpectedAmount *float64 `gorm:"type:decimal(10,2)" json:"expectedAmount"`
	Discrepancy    *float64 `gorm:"type:decimal(10,2)" json:"discrepancy"`

	Status string `gorm:"type:varchar(10);not null;default:'open'" json:"status"`

	OpenedAt time.Time  `json:"openedAt"`
	ClosedAt *time.Time `json:"closedAt"`
}

func (s *CashSession) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
