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

// TenantRequest defines the structure for tenant creation requests
type TenantRequest struct {
	Name             string             `json:"name" validate:"required"`
	DocumentType     model.DocumentType `json:"document_type" validate:"required,oneof=DNI CE PASSPORT"`
	DocumentNumber   string             `json:"document_number" validate:"required"`
	Phone            string             `json:"phone"`
	Email            string             `json:"email" validate:"omitempty,email"`
	EmergencyContact string             `json:"emergency_contact"`
}

// TenantHandler serves the tenant endpoints
type TenantHandler struct {
	tenants *store.TenantStore
}

// NewTenantHandler creates a tenant handler backed by the given store
func NewTenantHandler(tenants *store.TenantStore) *TenantHandler {
	return &TenantHandler{tenants: tenants}
}

// List handles GET /api/tenants with optional ?q= and ?recurrent=true.
// The plain list and the search both carry recurrence figures, matching what
// the tenant registry shows; ?recurrent=true narrows to the top of the
// ranking.
func (h *TenantHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.TenantOperationsCounter.WithLabelValues("list").Inc()

	if q := c.QueryParam("q"); q != "" {
		log.Info("Searching tenants", zap.String("query", q))
		tenants, err := h.tenants.SearchWithStats(q)
		if err != nil {
			log.Error("Failed to search tenants", zap.Error(err))
			return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, tenants)
	}

	if c.QueryParam("recurrent") == "true" {
		tenants, err := h.tenants.TopRecurrent(0)
		if err != nil {
			log.Error("Failed to rank tenants", zap.Error(err))
			return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
		}
		log.Info("Recurrent tenants retrieved", zap.Int("count", len(tenants)))
		return c.JSON(http.StatusOK, tenants)
	}

	tenants, err := h.tenants.ListWithStats()
	if err != nil {
		log.Error("Failed to list tenants", zap.Error(err))
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}
	log.Info("Tenants retrieved", zap.Int("count", len(tenants)))
	return c.JSON(http.StatusOK, tenants)
}

// Get handles GET /api/tenants/:id
func (h *TenantHandler) Get(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.TenantOperationsCounter.WithLabelValues("get").Inc()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid tenant id"})
	}

	tenant, err := h.tenants.Get(id)
	if err != nil {
		log.Warn("Tenant not found", zap.String("tenant_id", id.String()), zap.Error(err))
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, tenant)
}

// Create handles POST /api/tenants
func (h *TenantHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.TenantOperationsCounter.WithLabelValues("create").Inc()

	var req TenantRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if err := validate.Struct(&req); err != nil {
		log.Warn("Tenant validation failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	tenant := model.Tenant{
		Name:             req.Name,
		DocumentType:     req.DocumentType,
		DocumentNumber:   req.DocumentNumber,
		Phone:            req.Phone,
		Email:            req.Email,
		EmergencyContact: req.EmergencyContact,
	}
	if err := h.tenants.Create(&tenant); err != nil {
		log.Error("Failed to create tenant", zap.String("name", req.Name), zap.Error(err))
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}

	log.Info("Tenant created",
		zap.String("tenant_id", tenant.ID.String()),
		zap.String("document_number", tenant.DocumentNumber))
	return c.JSON(http.StatusCreated, tenant)
}

// Update handles PUT /api/tenants/:id
func (h *TenantHandler) Update(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.TenantOperationsCounter.WithLabelValues("update").Inc()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid tenant id"})
	}

	var patch store.TenantUpdate
	if err := c.Bind(&patch); err != nil {
		log.Warn("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	tenant, err := h.tenants.Update(id, patch)
	if err != nil {
		log.Error("Failed to update tenant", zap.String("tenant_id", id.String()), zap.Error(err))
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}

	log.Info("Tenant updated", zap.String("tenant_id", id.String()))
	return c.JSON(http.StatusOK, tenant)
}

// Delete handles DELETE /api/tenants/:id
func (h *TenantHandler) Delete(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.TenantOperationsCounter.WithLabelValues("delete").Inc()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid tenant id"})
	}

	if err := h.tenants.Delete(id); err != nil {
		log.Error("Failed to delete tenant", zap.String("tenant_id", id.String()), zap.Error(err))
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}

	log.Info("Tenant deleted", zap.String("tenant_id", id.String()))
	return c.JSON(http.StatusOK, echo.Map{"message": "tenant deleted"})
}
