package handler

import (
	"net/http"
	"time"

	"github.com/devbryan02/gestion-hostal-template/internal/model"
	"github.com/devbryan02/gestion-hostal-template/internal/store"
	"github.com/devbryan02/gestion-hostal-template/pkg/logger"
	"github.com/devbryan02/gestion-hostal-template/prometheus"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// OccupationRequest defines the structure for booking creation requests.
// Room, tenant and both dates are mandatory; the nightly rate defaults to the
// room's current price when omitted.
type OccupationRequest struct {
	RoomID          uuid.UUID              `json:"room_id" validate:"required"`
	TenantID        uuid.UUID              `json:"tenant_id" validate:"required"`
	CheckInDate     string                 `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	PlannedCheckOut string                 `json:"planned_check_out" validate:"required,datetime=2006-01-02"`
	PricePerNight   *float64               `json:"price_per_night" validate:"omitempty,gte=0"`
	Status          model.OccupationStatus `json:"status" validate:"omitempty,oneof=active completed canceled"`
	Notes           string                 `json:"notes"`
}

// CheckOutRequest defines the structure for check-out requests; the date
// defaults to today when omitted
type CheckOutRequest struct {
	CheckOutDate string `json:"check_out_date" validate:"omitempty,datetime=2006-01-02"`
}

// OccupationHandler serves the booking endpoints
type OccupationHandler struct {
	occupations *store.OccupationStore
}

// NewOccupationHandler creates an occupation handler backed by the given store
func NewOccupationHandler(occupations *store.OccupationStore) *OccupationHandler {
	return &OccupationHandler{occupations: occupations}
}

// List handles GET /api/occupations with optional ?status=
func (h *OccupationHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.OccupationOperationsCounter.WithLabelValues("list").Inc()

	if status := c.QueryParam("status"); status != "" {
		log.Info("Filtering occupations by status", zap.String("status", status))
		occupations, err := h.occupations.FetchByStatus(model.OccupationStatus(status))
		if err != nil {
			log.Error("Failed to filter occupations", zap.Error(err))
			return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, occupations)
	}

	occupations, err := h.occupations.List(0)
	if err != nil {
		log.Error("Failed to list occupations", zap.Error(err))
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}
	log.Info("Occupations retrieved", zap.Int("count", len(occupations)))
	return c.JSON(http.StatusOK, occupations)
}

// Get handles GET /api/occupations/:id
func (h *OccupationHandler) Get(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.OccupationOperationsCounter.WithLabelValues("get").Inc()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid occupation id"})
	}

	occupation, err := h.occupations.Get(id)
	if err != nil {
		log.Warn("Occupation not found", zap.String("occupation_id", id.String()), zap.Error(err))
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, occupation)
}

// Create handles POST /api/occupations
func (h *OccupationHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.OccupationOperationsCounter.WithLabelValues("create").Inc()

	var req OccupationRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := validate.Struct(&req); err != nil {
		log.Warn("Occupation validation failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	occupation, err := h.occupations.Create(store.CreateOccupation{
		RoomID:          req.RoomID,
		TenantID:        req.TenantID,
		CheckInDate:     req.CheckInDate,
		PlannedCheckOut: req.PlannedCheckOut,
		PricePerNight:   req.PricePerNight,
		Status:          req.Status,
		Notes:           req.Notes,
	})
	if err != nil {
		if errorStatus(err) == http.StatusConflict {
			prometheus.BookingConflictsCounter.Inc()
			log.Warn("Room already occupied", zap.String("room_id", req.RoomID.String()))
		} else {
			log.Error("Failed to create occupation",
				zap.String("room_id", req.RoomID.String()),
				zap.String("tenant_id", req.TenantID.String()),
				zap.Error(err))
		}
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}

	log.Info("Occupation created",
		zap.String("occupation_id", occupation.ID.String()),
		zap.String("room_id", occupation.RoomID.String()),
		zap.Float64("total_amount", occupation.TotalAmount))
	return c.JSON(http.StatusCreated, occupation)
}

// CheckOut handles POST /api/occupations/:id/checkout
func (h *OccupationHandler) CheckOut(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.OccupationOperationsCounter.WithLabelValues("checkout").Inc()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid occupation id"})
	}

	var req CheckOutRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := validate.Struct(&req); err != nil {
		log.Warn("Check-out validation failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	checkOutDate := req.CheckOutDate
	if checkOutDate == "" {
		checkOutDate = time.Now().Format(model.DateLayout)
	}

	occupation, err := h.occupations.CheckOut(id, checkOutDate)
	if err != nil {
		log.Error("Failed to check out occupation",
			zap.String("occupation_id", id.String()),
			zap.Error(err))
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}

	prometheus.CheckOutsCounter.Inc()
	log.Info("Occupation checked out",
		zap.String("occupation_id", id.String()),
		zap.String("check_out_date", checkOutDate))
	return c.JSON(http.StatusOK, occupation)
}

// Update handles PUT /api/occupations/:id
func (h *OccupationHandler) Update(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.OccupationOperationsCounter.WithLabelValues("update").Inc()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid occupation id"})
	}

	var patch store.OccupationUpdate
	if err := c.Bind(&patch); err != nil {
		log.Warn("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	occupation, err := h.occupations.Update(id, patch)
	if err != nil {
		log.Error("Failed to update occupation", zap.String("occupation_id", id.String()), zap.Error(err))
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}

	log.Info("Occupation updated", zap.String("occupation_id", id.String()))
	return c.JSON(http.StatusOK, occupation)
}

// Delete handles DELETE /api/occupations/:id
func (h *OccupationHandler) Delete(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.OccupationOperationsCounter.WithLabelValues("delete").Inc()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid occupation id"})
	}

	if err := h.occupations.Delete(id); err != nil {
		log.Error("Failed to delete occupation", zap.String("occupation_id", id.String()), zap.Error(err))
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}

	log.Info("Occupation deleted", zap.String("occupation_id", id.String()))
	return c.JSON(http.StatusOK, echo.Map{"message": "occupation deleted"})
}
