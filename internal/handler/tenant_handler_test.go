package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/devbryan02/gestion-hostal-template/internal/model"
	"github.com/devbryan02/gestion-hostal-template/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantCreate(t *testing.T) {
	db := setupTestDB(t)
	h := NewTenantHandler(store.NewTenantStore(db))

	c, rec := request(http.MethodPost, "/api/tenants",
		`{"name":"Juan","document_type":"DNI","document_number":"12345678"}`)
	require.NoError(t, h.Create(c))
	assertStatus(t, rec, http.StatusCreated)

	var created model.Tenant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, model.DocumentDNI, created.DocumentType)
}

func TestTenantCreateRejectsUnknownDocumentType(t *testing.T) {
	db := setupTestDB(t)
	h := NewTenantHandler(store.NewTenantStore(db))

	c, rec := request(http.MethodPost, "/api/tenants",
		`{"name":"Juan","document_type":"LICENSE","document_number":"12345678"}`)
	require.NoError(t, h.Create(c))
	assertStatus(t, rec, http.StatusBadRequest)
}

func TestTenantSearchCarriesRecurrence(t *testing.T) {
	db := setupTestDB(t)
	h := NewTenantHandler(store.NewTenantStore(db))

	room := seedRoom(t, db, "101", 50)
	juan := seedTenant(t, db, "Juan", "11111111")
	seedTenant(t, db, "JULIA", "22222222")
	seedTenant(t, db, "Pedro", "33333333")

	require.NoError(t, db.Create(&model.Occupation{
		RoomID:          room.ID,
		TenantID:        juan.ID,
		CheckInDate:     "2024-01-10",
		PlannedCheckOut: "2024-01-12",
		PricePerNight:   50,
		TotalAmount:     100,
		Status:          model.OccupationCompleted,
	}).Error)

	c, rec := request(http.MethodGet, "/api/tenants?q=ju", "")
	require.NoError(t, h.List(c))
	assertStatus(t, rec, http.StatusOK)

	var tenants []model.TenantWithStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tenants))
	require.Len(t, tenants, 2)

	// Juan has a stay on record, so he ranks first
	assert.Equal(t, "Juan", tenants[0].Name)
	assert.Equal(t, 1, tenants[0].OccupationCount)
	assert.Equal(t, "2024-01-10", tenants[0].LastOccupationDate)
	assert.Equal(t, "JULIA", tenants[1].Name)
	assert.Zero(t, tenants[1].OccupationCount)
}
