package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentType enumerates the accepted identity document kinds
type DocumentType string

const (
	DocumentDNI      DocumentType = "DNI"
	DocumentCE       DocumentType = "CE"
	DocumentPassport DocumentType = "PASSPORT"
)

// Tenant represents a person who may occupy rooms
type Tenant struct {
	ID               uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	Name             string       `json:"name" gorm:"type:varchar(255);not null"`
	DocumentType     DocumentType `json:"document_type" gorm:"type:varchar(20);not null"`
	DocumentNumber   string       `json:"document_number" gorm:"type:varchar(50);not null"`
	Phone            string       `json:"phone,omitempty" gorm:"type:varchar(30)"`
	Email            string       `json:"email,omitempty" gorm:"type:varchar(255)"`
	EmergencyContact string       `json:"emergency_contact,omitempty" gorm:"type:varchar(255)"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`

	Occupations []Occupation `json:"occupations,omitempty" gorm:"foreignKey:TenantID"`
}

func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TenantWithStats is a Tenant annotated with recurrence figures derived from
// its occupation history. Recomputed on every fetch.
type TenantWithStats struct {
	Tenant
	OccupationCount    int    `json:"occupation_count"`
	LastOccupationDate string `json:"last_occupation_date,omitempty"`
}
