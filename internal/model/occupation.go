package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OccupationStatus enumerates the booking lifecycle states
type OccupationStatus string

const (
	OccupationActive    OccupationStatus = "active"
	OccupationCompleted OccupationStatus = "completed"
	OccupationCanceled  OccupationStatus = "canceled"
)

// DateLayout is the calendar-date format used for check-in/check-out fields
const DateLayout = "2006-01-02"

// Occupation represents a stay linking one room and one tenant over a date
// range. Dates are calendar dates, stored as ISO strings.
type Occupation struct {
	ID              uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	RoomID          uuid.UUID        `json:"room_id" gorm:"type:uuid;not null;index"`
	TenantID        uuid.UUID        `json:"tenant_id" gorm:"type:uuid;not null;index"`
	CheckInDate     string           `json:"check_in_date" gorm:"type:date;not null"`
	PlannedCheckOut string           `json:"planned_check_out" gorm:"type:date;not null"`
	CheckOutDate    string           `json:"check_out_date,omitempty" gorm:"type:date"`
	PricePerNight   float64          `json:"price_per_night" gorm:"not null"`
	TotalAmount     float64          `json:"total_amount" gorm:"not null"`
	Status          OccupationStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	Notes           string           `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`

	Room   *Room   `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	Tenant *Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
}

func (o *Occupation) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// Nights returns the billable night count for a stay: the calendar-day
// difference between check-in and planned check-out, floored at one night.
// A same-day or inverted range bills as a single night rather than failing.
func Nights(checkIn, plannedCheckOut string) int {
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return 1
	}
	out, err := time.Parse(DateLayout, plannedCheckOut)
	if err != nil {
		return 1
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}
