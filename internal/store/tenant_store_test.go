package store

import (
	"testing"

	"github.com/devbryan02/gestion-hostal-template/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantSearchByTextCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	store := NewTenantStore(db)

	seedTenant(t, db, "Juan", "11111111")
	seedTenant(t, db, "JULIA", "22222222")
	seedTenant(t, db, "Pedro", "33333333")

	tenants, err := store.SearchByText("ju")
	require.NoError(t, err)
	require.Len(t, tenants, 2)

	names := []string{tenants[0].Name, tenants[1].Name}
	assert.ElementsMatch(t, []string{"Juan", "JULIA"}, names)
}

func TestTenantSearchByDocumentNumber(t *testing.T) {
	db := setupTestDB(t)
	store := NewTenantStore(db)

	seedTenant(t, db, "Juan", "48291034")
	seedTenant(t, db, "Pedro", "70115522")

	tenants, err := store.SearchByText("4829")
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, "Juan", tenants[0].Name)
}

func TestTenantUpdatePartial(t *testing.T) {
	db := setupTestDB(t)
	store := NewTenantStore(db)

	tenant := seedTenant(t, db, "Juan", "11111111")

	phone := "999888777"
	updated, err := store.Update(tenant.ID, TenantUpdate{Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, "999888777", updated.Phone)
	assert.Equal(t, "Juan", updated.Name)
}

func TestTenantListWithStatsRanking(t *testing.T) {
	db := setupTestDB(t)
	store := NewTenantStore(db)

	room := seedRoom(t, db, "101", 50)

	tenantA := seedTenant(t, db, "A", "11111111")
	tenantB := seedTenant(t, db, "B", "22222222")
	tenantC := seedTenant(t, db, "C", "33333333")

	stays := map[*model.Tenant][]string{
		tenantA: {"2023-11-01", "2023-12-01", "2024-01-10"},
		tenantB: {"2023-11-01", "2023-12-01", "2024-01-05"},
		tenantC: {"2024-02-01"},
	}
	for tenant, dates := range stays {
		for _, date := range dates {
			require.NoError(t, db.Create(&model.Occupation{
				RoomID:          room.ID,
				TenantID:        tenant.ID,
				CheckInDate:     date,
				PlannedCheckOut: date,
				PricePerNight:   50,
				TotalAmount:     50,
				Status:          model.OccupationCompleted,
			}).Error)
		}
	}

	ranked, err := store.ListWithStats()
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	// same count, A's latest stay wins; C trails with a single stay
	assert.Equal(t, "A", ranked[0].Name)
	assert.Equal(t, 3, ranked[0].OccupationCount)
	assert.Equal(t, "2024-01-10", ranked[0].LastOccupationDate)
	assert.Equal(t, "B", ranked[1].Name)
	assert.Equal(t, "C", ranked[2].Name)
	assert.Equal(t, "2024-02-01", ranked[2].LastOccupationDate)
}

func TestTenantTopRecurrent(t *testing.T) {
	db := setupTestDB(t)
	store := NewTenantStore(db)

	room := seedRoom(t, db, "101", 50)
	frequent := seedTenant(t, db, "Frequent", "11111111")
	seedTenant(t, db, "Never", "22222222")

	require.NoError(t, db.Create(&model.Occupation{
		RoomID:          room.ID,
		TenantID:        frequent.ID,
		CheckInDate:     "2024-01-01",
		PlannedCheckOut: "2024-01-02",
		PricePerNight:   50,
		TotalAmount:     50,
		Status:          model.OccupationCompleted,
	}).Error)

	top, err := store.TopRecurrent(1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Frequent", top[0].Name)
}
