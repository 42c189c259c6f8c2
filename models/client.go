package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	Name      string     `gorm:"not null" json:"name"`
	Phone     string     `gorm:"uniqueIndex;not null" json:"phone"`
	Email     string     `json:"email"`
	BirthDate *time.Time `json:"birthDate"`
	Notes     string     `json:"notes"`

	// Running aggregates maintained exclusively by sale recording.
	TotalSpent  float64 `gorm:"type:decimal(10,2);default:0.0" json:"totalSpent"`
	TotalVisits int     `gorm:"default:0" json:"totalVisits"`

	LastVisit *time.Time `json:"lastVisit"`

	Sales []Sale `gorm:"foreignKey:ClientID" json:"-"`

	gorm.Model `json:"-"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
