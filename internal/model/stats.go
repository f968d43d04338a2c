package model

// MonthRevenue is one bucket of the dashboard's per-month revenue series
type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// DashboardStats is the read-only aggregate backing the dashboard. It is
// recomputed from raw rows on every request, never stored.
type DashboardStats struct {
	TotalRooms             int            `json:"total_rooms"`
	OccupiedRooms          int            `json:"occupied_rooms"`
	AvailableRooms         int            `json:"available_rooms"`
	TotalTenants           int            `json:"total_tenants"`
	ActiveOccupations      int            `json:"active_occupations"`
	MonthlyRevenue         float64        `json:"monthly_revenue"`
	PreviousMonthlyRevenue float64        `json:"previous_monthly_revenue"`
	RevenueChangePct       float64        `json:"revenue_change_pct"`
	MonthlyRevenues        []MonthRevenue `json:"monthly_revenues"`
}
