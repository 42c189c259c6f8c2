package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment statuses
const (
	AppointmentScheduled = "scheduled"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	ClientID  uuid.UUID `gorm:"type:uuid;index;not null" json:"clientId"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`

	Date  string `gorm:"type:varchar(10);index;not null" json:"date"` // YYYY-MM-DD
	Time  string `gorm:"type:varchar(5);not null" json:"time"`        // HH:MM
	Staff string `json:"staff"`

	Status string `gorm:"type:varchar(20);default:'scheduled'" json:"status"`

	// Price is snapshotted from the service at booking time and never follows
	// later catalog changes.
	Price float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Paid  bool    `gorm:"default:false" json:"paid"`
	Notes string  `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// AppointmentTransitions lists the allowed status changes. completed and
// cancelled are terminal.
var AppointmentTransitions = map[string][]string{
	AppointmentScheduled: {AppointmentConfirmed, AppointmentCancelled},
	AppointmentConfirmed: {AppointmentCompleted, AppointmentCancelled},
	AppointmentCompleted: {},
	AppointmentCancelled: {},
}

// CanTransition reports whether an appointment may move from one status to
// another.
func CanTransition(from, to string) bool {
	for _, next := range AppointmentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
