package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomStatus enumerates the staff-managed room states
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

// Room represents a rentable unit with a status and nightly price
type Room struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Number        string     `json:"number" gorm:"type:varchar(20);not null"`
	Type          string     `json:"type" gorm:"type:varchar(50);not null"`
	Status        RoomStatus `json:"status" gorm:"type:varchar(20);not null;default:'available';index"`
	PricePerNight float64    `json:"price_per_night" gorm:"not null"`
	Description   string     `json:"description,omitempty" gorm:"type:text"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// BeforeCreate assigns the primary key so the model works on any dialect
func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// CurrentTenant is the lightweight projection attached to rooms that have an
// active occupation
type CurrentTenant struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	DocumentNumber string    `json:"document_number"`
}

// RoomWithTenant is a Room enriched with the tenant of its active occupation,
// if any. This is a left-join projection, not a stored field.
type RoomWithTenant struct {
	Room
	CurrentTenant *CurrentTenant `json:"current_tenant,omitempty"`
}
