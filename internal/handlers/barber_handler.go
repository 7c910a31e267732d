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

type BarberHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewBarberHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{db: db, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBarberRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	GoogleCalendarID string `json:"google_calendar_id"`
}

type UpdateBarberRequest struct {
	Name             *string `json:"name"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	GoogleCalendarID *string `json:"google_calendar_id"`
}

// ======================================================
// CRUD
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("name ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not list barbers.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	httpresp.OK(c, barber)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	barber := models.Barber{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		GoogleCalendarID: req.GoogleCalendarID,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Could not create the barber.")
		return
	}

	h.dispatch(c, "barber_created", &barber.ID)
	httpresp.Created(c, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Email != nil {
		barber.Email = *req.Email
	}
	if req.Phone != nil {
		barber.Phone = *req.Phone
	}
	if req.GoogleCalendarID != nil {
		barber.GoogleCalendarID = *req.GoogleCalendarID
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Could not update the barber.")
		return
	}

	h.dispatch(c, "barber_updated", &barber.ID)
	httpresp.OK(c, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.Barber{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Could not delete the barber.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	h.dispatch(c, "barber_deleted", &id)
	httpresp.NoContent(c)
}

func (h *BarberHandler) dispatch(c *gin.Context, action string, entityID *string) {
	h.audit.Dispatch(audit.Event{
		UserID:   auditUserID(c),
		Action:   action,
		Entity:   "barber",
		EntityID: entityID,
	})
}
