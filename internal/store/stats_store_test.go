package store

import (
	"testing"
	"time"

	"github.com/devbryan02/gestion-hostal-template/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFetch(t *testing.T) {
	db := setupTestDB(t)
	store := NewStatsStore(db)

	roomA := seedRoom(t, db, "101", 50)
	require.NoError(t, db.Model(roomA).Update("status", model.RoomOccupied).Error)
	seedRoom(t, db, "102", 60)
	roomC := seedRoom(t, db, "103", 70)
	require.NoError(t, db.Model(roomC).Update("status", model.RoomMaintenance).Error)

	tenant := seedTenant(t, db, "Juan", "11111111")
	seedTenant(t, db, "Julia", "22222222")

	occupations := []model.Occupation{
		// active, attributed to its planned check-out in March
		{RoomID: roomA.ID, TenantID: tenant.ID, CheckInDate: "2024-03-01",
			PlannedCheckOut: "2024-03-10", PricePerNight: 50, TotalAmount: 450,
			Status: model.OccupationActive},
		// completed in February
		{RoomID: roomC.ID, TenantID: tenant.ID, CheckInDate: "2024-02-01",
			PlannedCheckOut: "2024-02-05", CheckOutDate: "2024-02-05",
			PricePerNight: 50, TotalAmount: 200, Status: model.OccupationCompleted},
		// canceled in March, must not count
		{RoomID: roomC.ID, TenantID: tenant.ID, CheckInDate: "2024-03-01",
			PlannedCheckOut: "2024-03-05", PricePerNight: 50, TotalAmount: 500,
			Status: model.OccupationCanceled},
	}
	for i := range occupations {
		require.NoError(t, db.Create(&occupations[i]).Error)
	}

	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	dashboard, err := store.Fetch(now)
	require.NoError(t, err)

	assert.Equal(t, 3, dashboard.TotalRooms)
	assert.Equal(t, 1, dashboard.OccupiedRooms)
	assert.Equal(t, 1, dashboard.AvailableRooms)
	assert.Equal(t, 2, dashboard.TotalTenants)
	assert.Equal(t, 1, dashboard.ActiveOccupations)
	assert.Equal(t, 450.0, dashboard.MonthlyRevenue)
	assert.Equal(t, 200.0, dashboard.PreviousMonthlyRevenue)
	assert.Equal(t, 125.0, dashboard.RevenueChangePct)

	require.Len(t, dashboard.MonthlyRevenues, 12)
	assert.Equal(t, "Febrero", dashboard.MonthlyRevenues[1].Month)
	assert.Equal(t, 200.0, dashboard.MonthlyRevenues[1].Revenue)
	assert.Equal(t, 450.0, dashboard.MonthlyRevenues[2].Revenue)
}

func TestStatsFetchEmptyDatabase(t *testing.T) {
	db := setupTestDB(t)
	store := NewStatsStore(db)

	dashboard, err := store.Fetch(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Zero(t, dashboard.TotalRooms)
	assert.Zero(t, dashboard.TotalTenants)
	assert.Zero(t, dashboard.ActiveOccupations)
	assert.Zero(t, dashboard.MonthlyRevenue)
	// both months empty, the delta guard keeps the percentage at zero
	assert.Zero(t, dashboard.RevenueChangePct)
	assert.Len(t, dashboard.MonthlyRevenues, 12)
}
