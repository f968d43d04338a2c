package handler

import (
	"net/http"

	"github.com/devbryan02/gestion-hostal-template/internal/model"
	"github.com/devbryan02/gestion-hostal-template/internal/store"
	"github.com/devbryan02/gestion-hostal-template/pkg/logger"
	"github.com/devbryan02/gestion-hostal-template/prometheus"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RoomRequest defines the structure for room creation requests
type RoomRequest struct {
	Number        string           `json:"number" validate:"required"`
	Type          string           `json:"type" validate:"required"`
	Status        model.RoomStatus `json:"status" validate:"omitempty,oneof=available occupied maintenance"`
	PricePerNight float64          `json:"price_per_night" validate:"gte=0"`
	Description   string           `json:"description"`
}

// RoomHandler serves the room endpoints
type RoomHandler struct {
	rooms *store.RoomStore
}

// NewRoomHandler creates a room handler backed by the given store
func NewRoomHandler(rooms *store.RoomStore) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

// List handles GET /api/rooms with optional ?q=, ?status= and ?with_tenant=
func (h *RoomHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RoomOperationsCounter.WithLabelValues("list").Inc()

	if q := c.QueryParam("q"); q != "" {
		log.Info("Searching rooms", zap.String("query", q))
		rooms, err := h.rooms.SearchByText(q)
		if err != nil {
			log.Error("Failed to search rooms", zap.Error(err))
			return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, rooms)
	}

	if status := c.QueryParam("status"); status != "" {
		log.Info("Filtering rooms by status", zap.String("status", status))
		rooms, err := h.rooms.FetchByStatus(model.RoomStatus(status))
		if err != nil {
			log.Error("Failed to filter rooms", zap.Error(err))
			return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, rooms)
	}

	if c.QueryParam("with_tenant") == "true" {
		rooms, err := h.rooms.ListWithCurrentTenant(0)
		if err != nil {
			log.Error("Failed to list rooms with tenants", zap.Error(err))
			return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
		}
		log.Info("Rooms with tenants retrieved", zap.Int("count", len(rooms)))
		return c.JSON(http.StatusOK, rooms)
	}

	rooms, err := h.rooms.List(0)
	if err != nil {
		log.Error("Failed to list rooms", zap.Error(err))
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}
	log.Info("Rooms retrieved", zap.Int("count", len(rooms)))
	return c.JSON(http.StatusOK, rooms)
}

// Get handles GET /api/rooms/:id
func (h *RoomHandler) Get(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RoomOperationsCounter.WithLabelValues("get").Inc()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}

	room, err := h.rooms.Get(id)
	if err != nil {
		log.Warn("Room not found", zap.String("room_id", id.String()), zap.Error(err))
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, room)
}

// Create handles POST /api/rooms
func (h *RoomHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RoomOperationsCounter.WithLabelValues("create").Inc()

	var req RoomRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := validate.Struct(&req); err != nil {
		log.Warn("Room validation failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	room := model.Room{
		Number:        req.Number,
		Type:          req.Type,
		Status:        req.Status,
		PricePerNight: req.PricePerNight,
		Description:   req.Description,
	}
	if err := h.rooms.Create(&room); err != nil {
		log.Error("Failed to create room", zap.String("number", req.Number), zap.Error(err))
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}

	log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("number", room.Number))
	return c.JSON(http.StatusCreated, room)
}

// Update handles PUT /api/rooms/:id
func (h *RoomHandler) Update(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RoomOperationsCounter.WithLabelValues("update").Inc()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}

	var patch store.RoomUpdate
	if err := c.Bind(&patch); err != nil {
		log.Warn("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	room, err := h.rooms.Update(id, patch)
	if err != nil {
		log.Error("Failed to update room", zap.String("room_id", id.String()), zap.Error(err))
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}

	log.Info("Room updated", zap.String("room_id", id.String()))
	return c.JSON(http.StatusOK, room)
}

// Delete handles DELETE /api/rooms/:id
func (h *RoomHandler) Delete(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RoomOperationsCounter.WithLabelValues("delete").Inc()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}

	if err := h.rooms.Delete(id); err != nil {
		log.Error("Failed to delete room", zap.String("room_id", id.String()), zap.Error(err))
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}

	log.Info("Room deleted", zap.String("room_id", id.String()))
	return c.JSON(http.StatusOK, echo.Map{"message": "room deleted"})
}
