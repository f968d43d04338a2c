package handler

import (
	"net/http"
	"time"

	"github.com/devbryan02/gestion-hostal-template/internal/store"
	"github.com/devbryan02/gestion-hostal-template/pkg/logger"
	"github.com/devbryan02/gestion-hostal-template/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// StatsHandler serves the dashboard aggregate
type StatsHandler struct {
	stats *store.StatsStore
}

// NewStatsHandler creates a stats handler backed by the given store
func NewStatsHandler(stats *store.StatsStore) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Get handles GET /api/stats
func (h *StatsHandler) Get(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.StatsRequestsCounter.Inc()

	dashboard, err := h.stats.Fetch(time.Now())
	if err != nil {
		log.Error("Failed to compute dashboard stats", zap.Error(err))
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}

	prometheus.MonthlyRevenueGauge.Set(dashboard.MonthlyRevenue)
	log.Info("Dashboard stats computed",
		zap.Int("total_rooms", dashboard.TotalRooms),
		zap.Int("active_occupations", dashboard.ActiveOccupations),
		zap.Float64("monthly_revenue", dashboard.MonthlyRevenue))
	return c.JSON(http.StatusOK, dashboard)
}
