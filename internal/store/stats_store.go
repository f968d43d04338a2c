package store

import (
	"fmt"
	"time"

	"github.com/devbryan02/gestion-hostal-template/internal/model"
	"github.com/devbryan02/gestion-hostal-template/internal/stats"
	"gorm.io/gorm"
)

// StatsStore recomputes the dashboard aggregate from raw rows on demand
type StatsStore struct {
	db *gorm.DB
}

// NewStatsStore creates a stats store bound to the given database handle
func NewStatsStore(db *gorm.DB) *StatsStore {
	return &StatsStore{db: db}
}

// Fetch assembles the dashboard statistics as of the given instant. The
// "current month" is derived from now, which the handler passes as time.Now.
func (s *StatsStore) Fetch(now time.Time) (*model.DashboardStats, error) {
	var rooms []model.Room
	if err := s.db.Select("status").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("fetching rooms: %w", err)
	}

	var occupied, available int
	for _, r := range rooms {
		switch r.Status {
		case model.RoomOccupied:
			occupied++
		case model.RoomAvailable:
			available++
		}
	}

	var totalTenants int64
	if err := s.db.Model(&model.Tenant{}).Count(&totalTenants).Error; err != nil {
		return nil, fmt.Errorf("fetching tenants: %w", err)
	}

	var activeOccupations int64
	err := s.db.Model(&model.Occupation{}).
		Where("status = ?", model.OccupationActive).
		Count(&activeOccupations).Error
	if err != nil {
		return nil, fmt.Errorf("fetching occupations: %w", err)
	}

	var revenueRows []model.Occupation
	err = s.db.
		Select("total_amount", "check_out_date", "planned_check_out", "status").
		Find(&revenueRows).Error
	if err != nil {
		return nil, fmt.Errorf("fetching revenue: %w", err)
	}

	month, year := now.Month(), now.Year()
	prevMonth, prevYear := stats.PreviousMonth(month, year)

	current := stats.MonthlyRevenue(revenueRows, month, year)
	previous := stats.MonthlyRevenue(revenueRows, prevMonth, prevYear)

	return &model.DashboardStats{
		TotalRooms:             len(rooms),
		OccupiedRooms:          occupied,
		AvailableRooms:         available,
		TotalTenants:           int(totalTenants),
		ActiveOccupations:      int(activeOccupations),
		MonthlyRevenue:         current,
		PreviousMonthlyRevenue: previous,
		RevenueChangePct:       stats.PercentChange(current, previous),
		MonthlyRevenues:        stats.MonthlySeries(revenueRows, year),
	}, nil
}
