package store

import (
	"errors"
	"fmt"

	"github.com/devbryan02/gestion-hostal-template/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomStore issues room queries and commands against the database handle
type RoomStore struct {
	db *gorm.DB
}

// NewRoomStore creates a room store bound to the given database handle
func NewRoomStore(db *gorm.DB) *RoomStore {
	return &RoomStore{db: db}
}

// RoomUpdate carries a partial edit; nil fields are left untouched
type RoomUpdate struct {
	Number        *string           `json:"number"`
	Type          *string           `json:"type"`
	Status        *model.RoomStatus `json:"status"`
	PricePerNight *float64          `json:"price_per_night"`
	Description   *string           `json:"description"`
}

// List returns the newest n rooms, newest first
func (s *RoomStore) List(n int) ([]model.Room, error) {
	var rooms []model.Room
	err := s.db.Order("created_at DESC").Limit(limitOrDefault(n)).Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("fetching rooms: %w", err)
	}
	return rooms, nil
}

// Get fetches a single room by id
func (s *RoomStore) Get(id uuid.UUID) (*model.Room, error) {
	var room model.Room
	err := s.db.First(&room, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching room: %w", err)
	}
	return &room, nil
}

// SearchByText matches a case-insensitive substring against room number or
// type, capped at the default page size
func (s *RoomStore) SearchByText(q string) ([]model.Room, error) {
	pattern := "%" + q + "%"
	var rooms []model.Room
	err := s.db.
		Where("LOWER(number) LIKE LOWER(?) OR LOWER(type) LIKE LOWER(?)", pattern, pattern).
		Limit(defaultLimit).
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("searching rooms: %w", err)
	}
	return rooms, nil
}

// FetchByStatus returns every room in the given state, ordered by room number
func (s *RoomStore) FetchByStatus(status model.RoomStatus) ([]model.Room, error) {
	var rooms []model.Room
	err := s.db.Where("status = ?", status).Order("number ASC").Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("fetching rooms by status: %w", err)
	}
	return rooms, nil
}

// Create inserts a room, defaulting the status to available when omitted
func (s *RoomStore) Create(room *model.Room) error {
	if room.Status == "" {
		room.Status = model.RoomAvailable
	}
	if err := s.db.Create(room).Error; err != nil {
		return fmt.Errorf("creating room: %w", err)
	}
	return nil
}

// Update applies a partial edit by id and returns the updated row
func (s *RoomStore) Update(id uuid.UUID, patch RoomUpdate) (*model.Room, error) {
	updates := map[string]interface{}{}
	if patch.Number != nil {
		updates["number"] = *patch.Number
	}
	if patch.Type != nil {
		updates["type"] = *patch.Type
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.PricePerNight != nil {
		updates["price_per_night"] = *patch.PricePerNight
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}

	if len(updates) > 0 {
		result := s.db.Model(&model.Room{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, fmt.Errorf("updating room: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return s.Get(id)
}

// Delete removes a room by id
func (s *RoomStore) Delete(id uuid.UUID) error {
	result := s.db.Delete(&model.Room{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting room: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListWithCurrentTenant returns the newest n rooms, each annotated with the
// tenant of its active occupation when one exists
func (s *RoomStore) ListWithCurrentTenant(n int) ([]model.RoomWithTenant, error) {
	rooms, err := s.List(n)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}

	var active []model.Occupation
	err = s.db.Preload("Tenant").
		Where("status = ? AND room_id IN ?", model.OccupationActive, ids).
		Find(&active).Error
	if err != nil {
		return nil, fmt.Errorf("fetching active occupations: %w", err)
	}

	tenantByRoom := make(map[uuid.UUID]*model.CurrentTenant, len(active))
	for _, o := range active {
		if o.Tenant == nil {
			continue
		}
		tenantByRoom[o.RoomID] = &model.CurrentTenant{
			ID:             o.Tenant.ID,
			Name:           o.Tenant.Name,
			DocumentNumber: o.Tenant.DocumentNumber,
		}
	}

	enriched := make([]model.RoomWithTenant, 0, len(rooms))
	for _, r := range rooms {
		enriched = append(enriched, model.RoomWithTenant{
			Room:          r,
			CurrentTenant: tenantByRoom[r.ID],
		})
	}
	return enriched, nil
}
