// Package stats holds the dashboard aggregation rules. Everything here is a
// pure computation over rows already fetched by the stores.
package stats

import (
	"math"
	"time"

	"github.com/devbryan02/gestion-hostal-template/internal/model"
)

// monthNames labels the revenue series buckets, fixed Jan-Dec order
var monthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// EffectiveDate resolves the date an occupation's revenue is attributed to:
// the actual check-out date when set, otherwise the planned check-out.
// Returns false when neither parses as a calendar date.
func EffectiveDate(o model.Occupation) (time.Time, bool) {
	raw := o.CheckOutDate
	if raw == "" {
		raw = o.PlannedCheckOut
	}
	date, err := time.Parse(model.DateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// countsForRevenue reports whether an occupation participates in revenue sums.
// Canceled stays are excluded even when their effective date is in-month.
func countsForRevenue(o model.Occupation) bool {
	return o.Status == model.OccupationActive || o.Status == model.OccupationCompleted
}

// MonthlyRevenue sums total_amount over occupations whose effective date falls
// in the given month and year
func MonthlyRevenue(occupations []model.Occupation, month time.Month, year int) float64 {
	var sum float64
	for _, o := range occupations {
		if !countsForRevenue(o) {
			continue
		}
		date, ok := EffectiveDate(o)
		if !ok {
			continue
		}
		if date.Month() == month && date.Year() == year {
			sum += o.TotalAmount
		}
	}
	return sum
}

// PreviousMonth returns the calendar month preceding the given one, wrapping
// January back to December of the prior year
func PreviousMonth(month time.Month, year int) (time.Month, int) {
	if month == time.January {
		return time.December, year - 1
	}
	return month - 1, year
}

// PercentChange computes the month-over-month revenue delta as a percentage,
// rounded to one decimal. A zero previous month yields 100 when the current
// month has revenue and 0 when both are zero, guarding the division.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	change := (current - previous) / previous * 100
	return math.Round(change*10) / 10
}

// MonthlySeries applies the monthly revenue rule independently to each of the
// twelve calendar months of the given year
func MonthlySeries(occupations []model.Occupation, year int) []model.MonthRevenue {
	series := make([]model.MonthRevenue, 0, 12)
	for i, name := range monthNames {
		series = append(series, model.MonthRevenue{
			Month:   name,
			Revenue: MonthlyRevenue(occupations, time.Month(i+1), year),
		})
	}
	return series
}
