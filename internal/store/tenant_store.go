package store

import (
	"errors"
	"fmt"

	"github.com/devbryan02/gestion-hostal-template/internal/model"
	"github.com/devbryan02/gestion-hostal-template/internal/stats"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantStore issues tenant queries and commands against the database handle
type TenantStore struct {
	db *gorm.DB
}

// NewTenantStore creates a tenant store bound to the given database handle
func NewTenantStore(db *gorm.DB) *TenantStore {
	return &TenantStore{db: db}
}

// TenantUpdate carries a partial edit; nil fields are left untouched
type TenantUpdate struct {
	Name             *string             `json:"name"`
	DocumentType     *model.DocumentType `json:"document_type"`
	DocumentNumber   *string             `json:"document_number"`
	Phone            *string             `json:"phone"`
	Email            *string             `json:"email"`
	EmergencyContact *string             `json:"emergency_contact"`
}

// List returns the newest n tenants, newest first
func (s *TenantStore) List(n int) ([]model.Tenant, error) {
	var tenants []model.Tenant
	err := s.db.Order("created_at DESC").Limit(limitOrDefault(n)).Find(&tenants).Error
	if err != nil {
		return nil, fmt.Errorf("fetching tenants: %w", err)
	}
	return tenants, nil
}

// Get fetches a single tenant by id
func (s *TenantStore) Get(id uuid.UUID) (*model.Tenant, error) {
	var tenant model.Tenant
	err := s.db.First(&tenant, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching tenant: %w", err)
	}
	return &tenant, nil
}

// SearchByText matches a case-insensitive substring against tenant name or
// document number, capped at the default page size
func (s *TenantStore) SearchByText(q string) ([]model.Tenant, error) {
	pattern := "%" + q + "%"
	var tenants []model.Tenant
	err := s.db.
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(document_number) LIKE LOWER(?)", pattern, pattern).
		Limit(defaultLimit).
		Find(&tenants).Error
	if err != nil {
		return nil, fmt.Errorf("searching tenants: %w", err)
	}
	return tenants, nil
}

// Create inserts a tenant
func (s *TenantStore) Create(tenant *model.Tenant) error {
	if err := s.db.Create(tenant).Error; err != nil {
		return fmt.Errorf("creating tenant: %w", err)
	}
	return nil
}

// Update applies a partial edit by id and returns the updated row
func (s *TenantStore) Update(id uuid.UUID, patch TenantUpdate) (*model.Tenant, error) {
	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.DocumentType != nil {
		updates["document_type"] = *patch.DocumentType
	}
	if patch.DocumentNumber != nil {
		updates["document_number"] = *patch.DocumentNumber
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.EmergencyContact != nil {
		updates["emergency_contact"] = *patch.EmergencyContact
	}

	if len(updates) > 0 {
		result := s.db.Model(&model.Tenant{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, fmt.Errorf("updating tenant: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return s.Get(id)
}

// Delete removes a tenant by id
func (s *TenantStore) Delete(id uuid.UUID) error {
	result := s.db.Delete(&model.Tenant{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting tenant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListWithStats returns all tenants annotated with their recurrence figures,
// most recurrent first. The ranking is recomputed on every call.
func (s *TenantStore) ListWithStats() ([]model.TenantWithStats, error) {
	var tenants []model.Tenant
	err := s.db.
		Preload("Occupations", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "tenant_id", "check_in_date")
		}).
		Order("created_at DESC").
		Find(&tenants).Error
	if err != nil {
		return nil, fmt.Errorf("fetching tenants with occupations: %w", err)
	}
	return rankTenants(tenants), nil
}

// SearchWithStats is the text search variant that also carries recurrence
// figures, capped at the default page size
func (s *TenantStore) SearchWithStats(q string) ([]model.TenantWithStats, error) {
	pattern := "%" + q + "%"
	var tenants []model.Tenant
	err := s.db.
		Preload("Occupations", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "tenant_id", "check_in_date")
		}).
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(document_number) LIKE LOWER(?)", pattern, pattern).
		Limit(defaultLimit).
		Find(&tenants).Error
	if err != nil {
		return nil, fmt.Errorf("searching tenants: %w", err)
	}
	return rankTenants(tenants), nil
}

// TopRecurrent returns the n most recurrent tenants
func (s *TenantStore) TopRecurrent(n int) ([]model.TenantWithStats, error) {
	ranked, err := s.ListWithStats()
	if err != nil {
		return nil, err
	}
	n = limitOrDefault(n)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}

func rankTenants(tenants []model.Tenant) []model.TenantWithStats {
	annotated := make([]model.TenantWithStats, 0, len(tenants))
	for _, t := range tenants {
		annotated = append(annotated, stats.Annotate(t))
	}
	stats.SortByRecurrence(annotated)
	return annotated
}
