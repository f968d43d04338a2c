package stats

import (
	"testing"
	"time"

	"github.com/devbryan02/gestion-hostal-template/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"both zero", 0, 0, 0},
		{"previous zero", 100, 0, 100},
		{"increase", 150, 100, 50.0},
		{"decrease", 50, 100, -50.0},
		{"rounded to one decimal", 100, 300, -66.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PercentChange(tt.current, tt.previous))
		})
	}
}

func TestMonthlyRevenueExcludesCanceled(t *testing.T) {
	occupations := []model.Occupation{
		{TotalAmount: 100, CheckOutDate: "2024-03-15", Status: model.OccupationCompleted},
		{TotalAmount: 500, CheckOutDate: "2024-03-20", Status: model.OccupationCanceled},
	}

	assert.Equal(t, 100.0, MonthlyRevenue(occupations, time.March, 2024))
}

func TestMonthlyRevenueUsesEffectiveDate(t *testing.T) {
	occupations := []model.Occupation{
		// checked out in April even though the plan said March
		{TotalAmount: 200, CheckOutDate: "2024-04-02", PlannedCheckOut: "2024-03-30", Status: model.OccupationCompleted},
		// still active, attributed to its planned check-out
		{TotalAmount: 300, PlannedCheckOut: "2024-03-10", Status: model.OccupationActive},
	}

	assert.Equal(t, 300.0, MonthlyRevenue(occupations, time.March, 2024))
	assert.Equal(t, 200.0, MonthlyRevenue(occupations, time.April, 2024))
}

func TestMonthlyRevenueSkipsUnparseableDates(t *testing.T) {
	occupations := []model.Occupation{
		{TotalAmount: 100, Status: model.OccupationActive},
		{TotalAmount: 50, PlannedCheckOut: "2024-03-05", Status: model.OccupationActive},
	}

	assert.Equal(t, 50.0, MonthlyRevenue(occupations, time.March, 2024))
}

func TestPreviousMonth(t *testing.T) {
	month, year := PreviousMonth(time.March, 2024)
	assert.Equal(t, time.February, month)
	assert.Equal(t, 2024, year)

	month, year = PreviousMonth(time.January, 2024)
	assert.Equal(t, time.December, month)
	assert.Equal(t, 2023, year)
}

func TestMonthlySeries(t *testing.T) {
	occupations := []model.Occupation{
		{TotalAmount: 100, CheckOutDate: "2024-03-15", Status: model.OccupationCompleted},
		{TotalAmount: 80, PlannedCheckOut: "2024-03-01", Status: model.OccupationActive},
		{TotalAmount: 999, CheckOutDate: "2023-03-15", Status: model.OccupationCompleted}, // wrong year
	}

	series := MonthlySeries(occupations, 2024)

	assert.Len(t, series, 12)
	assert.Equal(t, "Enero", series[0].Month)
	assert.Equal(t, "Diciembre", series[11].Month)
	assert.Equal(t, 180.0, series[2].Revenue)
	assert.Equal(t, 0.0, series[0].Revenue)
}
