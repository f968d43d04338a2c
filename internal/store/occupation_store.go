package store

import (
	"errors"
	"fmt"

	"github.com/devbryan02/gestion-hostal-template/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OccupationStore issues booking queries and commands against the database
// handle, including the lifecycle transitions
type OccupationStore struct {
	db *gorm.DB
}

// NewOccupationStore creates an occupation store bound to the given handle
func NewOccupationStore(db *gorm.DB) *OccupationStore {
	return &OccupationStore{db: db}
}

// CreateOccupation carries the inputs for opening a stay. PricePerNight is
// optional; when nil it is copied from the room's current rate.
type CreateOccupation struct {
	RoomID          uuid.UUID
	TenantID        uuid.UUID
	CheckInDate     string
	PlannedCheckOut string
	PricePerNight   *float64
	Status          model.OccupationStatus
	Notes           string
}

// OccupationUpdate carries a free-form partial edit. It deliberately does not
// recompute total_amount nor police status transitions; total_amount stays
// frozen at its creation-time value and transition legality on plain edits is
// the caller's concern.
type OccupationUpdate struct {
	RoomID          *uuid.UUID              `json:"room_id"`
	TenantID        *uuid.UUID              `json:"tenant_id"`
	CheckInDate     *string                 `json:"check_in_date"`
	PlannedCheckOut *string                 `json:"planned_check_out"`
	CheckOutDate    *string                 `json:"check_out_date"`
	PricePerNight   *float64                `json:"price_per_night"`
	Status          *model.OccupationStatus `json:"status"`
	Notes           *string                 `json:"notes"`
}

// List returns the newest n occupations with room and tenant embedded
func (s *OccupationStore) List(n int) ([]model.Occupation, error) {
	var occupations []model.Occupation
	err := s.db.Preload("Room").Preload("Tenant").
		Order("created_at DESC").
		Limit(limitOrDefault(n)).
		Find(&occupations).Error
	if err != nil {
		return nil, fmt.Errorf("fetching occupations: %w", err)
	}
	return occupations, nil
}

// Get fetches a single occupation by id with room and tenant embedded
func (s *OccupationStore) Get(id uuid.UUID) (*model.Occupation, error) {
	var occupation model.Occupation
	err := s.db.Preload("Room").Preload("Tenant").First(&occupation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching occupation: %w", err)
	}
	return &occupation, nil
}

// FetchByStatus returns the newest n occupations in the given state with room
// and tenant embedded
func (s *OccupationStore) FetchByStatus(status model.OccupationStatus) ([]model.Occupation, error) {
	var occupations []model.Occupation
	err := s.db.Preload("Room").Preload("Tenant").
		Where("status = ?", status).
		Order("created_at DESC").
		Limit(defaultLimit).
		Find(&occupations).Error
	if err != nil {
		return nil, fmt.Errorf("filtering occupations: %w", err)
	}
	return occupations, nil
}

// Create opens a stay. The nightly rate defaults to the room's current price,
// total_amount is fixed here as rate times nights and never recomputed, and
// the status defaults to active. Opening an active stay for a room that
// already has one fails with ErrRoomOccupied; the existence check and the
// insert share one transaction.
func (s *OccupationStore) Create(params CreateOccupation) (*model.Occupation, error) {
	var created model.Occupation

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var room model.Room
		if err := tx.First(&room, "id = ?", params.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("fetching room: %w", err)
		}

		price := room.PricePerNight
		if params.PricePerNight != nil {
			price = *params.PricePerNight
		}

		status := params.Status
		if status == "" {
			status = model.OccupationActive
		}

		if status == model.OccupationActive {
			var count int64
			err := tx.Model(&model.Occupation{}).
				Where("room_id = ? AND status = ?", params.RoomID, model.OccupationActive).
				Count(&count).Error
			if err != nil {
				return fmt.Errorf("checking room availability: %w", err)
			}
			if count > 0 {
				return ErrRoomOccupied
			}
		}

		nights := model.Nights(params.CheckInDate, params.PlannedCheckOut)
		created = model.Occupation{
			RoomID:          params.RoomID,
			TenantID:        params.TenantID,
			CheckInDate:     params.CheckInDate,
			PlannedCheckOut: params.PlannedCheckOut,
			PricePerNight:   price,
			TotalAmount:     price * float64(nights),
			Status:          status,
			Notes:           params.Notes,
		}
		if err := tx.Create(&created).Error; err != nil {
			return fmt.Errorf("creating occupation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(created.ID)
}

// CheckOut closes a stay: it stamps the actual departure date and moves the
// occupation to completed. Only an active occupation may be checked out;
// anything else fails with ErrOccupationNotActive.
func (s *OccupationStore) CheckOut(id uuid.UUID, checkOutDate string) (*model.Occupation, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var occupation model.Occupation
		if err := tx.First(&occupation, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("fetching occupation: %w", err)
		}

		if occupation.Status != model.OccupationActive {
			return ErrOccupationNotActive
		}

		updates := map[string]interface{}{
			"check_out_date": checkOutDate,
			"status":         model.OccupationCompleted,
		}
		if err := tx.Model(&occupation).Updates(updates).Error; err != nil {
			return fmt.Errorf("checking out occupation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(id)
}

// Update applies a free-form partial edit by id and returns the updated row
func (s *OccupationStore) Update(id uuid.UUID, patch OccupationUpdate) (*model.Occupation, error) {
	updates := map[string]interface{}{}
	if patch.RoomID != nil {
		updates["room_id"] = *patch.RoomID
	}
	if patch.TenantID != nil {
		updates["tenant_id"] = *patch.TenantID
	}
	if patch.CheckInDate != nil {
		updates["check_in_date"] = *patch.CheckInDate
	}
	if patch.PlannedCheckOut != nil {
		updates["planned_check_out"] = *patch.PlannedCheckOut
	}
	if patch.CheckOutDate != nil {
		updates["check_out_date"] = *patch.CheckOutDate
	}
	if patch.PricePerNight != nil {
		updates["price_per_night"] = *patch.PricePerNight
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}

	if len(updates) > 0 {
		result := s.db.Model(&model.Occupation{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, fmt.Errorf("updating occupation: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return s.Get(id)
}

// Delete removes an occupation by id
func (s *OccupationStore) Delete(id uuid.UUID) error {
	result := s.db.Delete(&model.Occupation{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting occupation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
