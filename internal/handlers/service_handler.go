package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atelierbarbier/reservation-api/internal/audit"
	"github.com/atelierbarbier/reservation-api/internal/httperr"
	"github.com/atelierbarbier/reservation-api/internal/httpresp"
	"github.com/atelierbarbier/reservation-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Type          string  `json:"type"`
	NameEn        string  `json:"name_en" binding:"required"`
	NameFr        string  `json:"name_fr" binding:"required"`
	DescriptionEn string  `json:"description_en"`
	DescriptionFr string  `json:"description_fr"`
	Price         float64 `json:"price"`
	DurationMin   int     `json:"duration_min" binding:"required,min=1"`
	IsPremium     bool    `json:"is_premium"`
}

type UpdateServiceRequest struct {
	Type          *string  `json:"type"`
	NameEn        *string  `json:"name_en"`
	NameFr        *string  `json:"name_fr"`
	DescriptionEn *string  `json:"description_en"`
	DescriptionFr *string  `json:"description_fr"`
	Price         *float64 `json:"price"`
	DurationMin   *int     `json:"duration_min"`
	IsPremium     *bool    `json:"is_premium"`
	IsActive      *bool    `json:"is_active"`
}

// ======================================================
// PUBLIC LIST
// ======================================================

// ListActive is the public catalogue: active services only.
func (h *ServiceHandler) ListActive(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("is_active = ?", true).
		Order("name_en ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

// ======================================================
// ADMIN CRUD
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("name_en ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	var service models.Service
	if err := h.db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	service := models.Service{
		Type:          req.Type,
		NameEn:        req.NameEn,
		NameFr:        req.NameFr,
		DescriptionEn: req.DescriptionEn,
		DescriptionFr: req.DescriptionFr,
		Price:         req.Price,
		DurationMin:   req.DurationMin,
		IsPremium:     req.IsPremium,
		IsActive:      true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create the service.")
		return
	}

	h.dispatch(c, "service_created", &service.ID)
	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var service models.Service
	if err := h.db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.DurationMin != nil && *req.DurationMin < 1 {
		httperr.BadRequest(c, "invalid_duration", "duration_min must be at least 1.")
		return
	}

	if req.Type != nil {
		service.Type = *req.Type
	}
	if req.NameEn != nil {
		service.NameEn = *req.NameEn
	}
	if req.NameFr != nil {
		service.NameFr = *req.NameFr
	}
	if req.DescriptionEn != nil {
		service.DescriptionEn = *req.DescriptionEn
	}
	if req.DescriptionFr != nil {
		service.DescriptionFr = *req.DescriptionFr
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.IsPremium != nil {
		service.IsPremium = *req.IsPremium
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update the service.")
		return
	}

	h.dispatch(c, "service_updated", &service.ID)
	httpresp.OK(c, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.Service{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete the service.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	h.dispatch(c, "service_deleted", &id)
	httpresp.NoContent(c)
}

func (h *ServiceHandler) dispatch(c *gin.Context, action string, entityID *string) {
	h.audit.Dispatch(audit.Event{
		UserID:   auditUserID(c),
		Action:   action,
		Entity:   "service",
		EntityID: entityID,
	})
}
