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

func TestRoomCreateAndFetch(t *testing.T) {
	db := setupTestDB(t)
	h := NewRoomHandler(store.NewRoomStore(db))

	c, rec := request(http.MethodPost, "/api/rooms",
		`{"number":"101","type":"single","price_per_night":50}`)
	require.NoError(t, h.Create(c))
	assertStatus(t, rec, http.StatusCreated)

	var created model.Room
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	// status omitted on create comes back available
	assert.Equal(t, model.RoomAvailable, created.Status)

	c, rec = request(http.MethodGet, "/api/rooms/"+created.ID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(created.ID.String())
	require.NoError(t, h.Get(c))
	assertStatus(t, rec, http.StatusOK)

	var fetched model.Room
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, model.RoomAvailable, fetched.Status)
	assert.Equal(t, "101", fetched.Number)
}

func TestRoomCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	h := NewRoomHandler(store.NewRoomStore(db))

	// missing number and type
	c, rec := request(http.MethodPost, "/api/rooms", `{"price_per_night":50}`)
	require.NoError(t, h.Create(c))
	assertStatus(t, rec, http.StatusBadRequest)

	// negative price
	c, rec = request(http.MethodPost, "/api/rooms",
		`{"number":"101","type":"single","price_per_night":-5}`)
	require.NoError(t, h.Create(c))
	assertStatus(t, rec, http.StatusBadRequest)

	// unknown status value
	c, rec = request(http.MethodPost, "/api/rooms",
		`{"number":"101","type":"single","price_per_night":50,"status":"demolished"}`)
	require.NoError(t, h.Create(c))
	assertStatus(t, rec, http.StatusBadRequest)
}

func TestRoomListWithTenantParam(t *testing.T) {
	db := setupTestDB(t)
	h := NewRoomHandler(store.NewRoomStore(db))

	room := seedRoom(t, db, "101", 50)
	tenant := seedTenant(t, db, "Juan", "11111111")
	require.NoError(t, db.Create(&model.Occupation{
		RoomID:          room.ID,
		TenantID:        tenant.ID,
		CheckInDate:     "2024-05-01",
		PlannedCheckOut: "2024-05-02",
		PricePerNight:   50,
		TotalAmount:     50,
		Status:          model.OccupationActive,
	}).Error)

	c, rec := request(http.MethodGet, "/api/rooms?with_tenant=true", "")
	require.NoError(t, h.List(c))
	assertStatus(t, rec, http.StatusOK)

	var rooms []model.RoomWithTenant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rooms))
	require.Len(t, rooms, 1)
	require.NotNil(t, rooms[0].CurrentTenant)
	assert.Equal(t, "Juan", rooms[0].CurrentTenant.Name)
}

func TestRoomGetInvalidID(t *testing.T) {
	db := setupTestDB(t)
	h := NewRoomHandler(store.NewRoomStore(db))

	c, rec := request(http.MethodGet, "/api/rooms/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	require.NoError(t, h.Get(c))
	assertStatus(t, rec, http.StatusBadRequest)
}

func TestRoomDeleteNotFound(t *testing.T) {
	db := setupTestDB(t)
	h := NewRoomHandler(store.NewRoomStore(db))

	c, rec := request(http.MethodDelete, "/api/rooms/5b6d2b62-4a2e-4df6-9a34-3f2b5f0a2b11", "")
	c.SetParamNames("id")
	c.SetParamValues("5b6d2b62-4a2e-4df6-9a34-3f2b5f0a2b11")
	require.NoError(t, h.Delete(c))
	assertStatus(t, rec, http.StatusNotFound)
}
