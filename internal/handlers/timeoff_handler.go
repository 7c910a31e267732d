package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atelierbarbier/reservation-api/internal/audit"
	"github.com/atelierbarbier/reservation-api/internal/cache"
	"github.com/atelierbarbier/reservation-api/internal/httperr"
	"github.com/atelierbarbier/reservation-api/internal/httpresp"
	"github.com/atelierbarbier/reservation-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type TimeOffHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewTimeOffHandler(db *gorm.DB, dispatcher *audit.Dispatcher, cache *cache.Cache) *TimeOffHandler {
	return &TimeOffHandler{db: db, audit: dispatcher, cache: cache}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateTimeOffRequest struct {
	BarberID string `json:"barber_id" binding:"required"`
	StartAt  string `json:"start_at" binding:"required"`
	EndAt    string `json:"end_at" binding:"required"`
	Type     string `json:"type"`
	Note     string `json:"note"`
}

type UpdateTimeOffRequest struct {
	StartAt  *string `json:"start_at"`
	EndAt    *string `json:"end_at"`
	Type     *string `json:"type"`
	Note     *string `json:"note"`
	IsActive *bool   `json:"is_active"`
}

var validTimeOffTypes = map[models.TimeOffType]bool{
	models.TimeOffVacation: true,
	models.TimeOffSick:     true,
	models.TimeOffPersonal: true,
}

func parseInstant(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// ======================================================
// CRUD
// ======================================================

func (h *TimeOffHandler) ListByBarber(c *gin.Context) {
	barberID := c.Param("id")

	var count int64
	h.db.Model(&models.Barber{}).Where("id = ?", barberID).Count(&count)
	if count == 0 {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	var timeOffs []models.BarberTimeOff
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("start_at ASC").
		Find(&timeOffs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_time_offs", "Could not list time offs.")
		return
	}

	httpresp.List(c, timeOffs)
}

func (h *TimeOffHandler) Create(c *gin.Context) {
	var req CreateTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	startAt, err := parseInstant(req.StartAt)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_at", "start_at must be RFC3339.")
		return
	}

	endAt, err := parseInstant(req.EndAt)
	if err != nil {
		httperr.BadRequest(c, "invalid_end_at", "end_at must be RFC3339.")
		return
	}

	if !endAt.After(startAt) {
		httperr.BadRequest(c, "invalid_interval", "end_at must be after start_at.")
		return
	}

	toType := models.TimeOffVacation
	if req.Type != "" {
		toType = models.TimeOffType(req.Type)
		if !validTimeOffTypes[toType] {
			httperr.BadRequest(c, "invalid_type", "type must be VACATION, SICK or PERSONAL.")
			return
		}
	}

	var count int64
	h.db.Model(&models.Barber{}).Where("id = ?", req.BarberID).Count(&count)
	if count == 0 {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	timeOff := models.BarberTimeOff{
		BarberID: req.BarberID,
		StartAt:  startAt,
		EndAt:    endAt,
		Type:     toType,
		Note:     req.Note,
		IsActive: true,
	}

	if err := h.db.Create(&timeOff).Error; err != nil {
		httperr.Internal(c, "failed_to_create_time_off", "Could not create the time off.")
		return
	}

	h.invalidate(c, timeOff.BarberID)
	h.dispatch(c, "time_off_created", &timeOff.ID)
	httpresp.Created(c, timeOff)
}

func (h *TimeOffHandler) Update(c *gin.Context) {
	var timeOff models.BarberTimeOff
	if err := h.db.First(&timeOff, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "time_off_not_found", "Time off not found.")
		return
	}

	var req UpdateTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	startAt := timeOff.StartAt
	endAt := timeOff.EndAt

	if req.StartAt != nil {
		parsed, err := parseInstant(*req.StartAt)
		if err != nil {
			httperr.BadRequest(c, "invalid_start_at", "start_at must be RFC3339.")
			return
		}
		startAt = parsed
	}
	if req.EndAt != nil {
		parsed, err := parseInstant(*req.EndAt)
		if err != nil {
			httperr.BadRequest(c, "invalid_end_at", "end_at must be RFC3339.")
			return
		}
		endAt = parsed
	}

	if !endAt.After(startAt) {
		httperr.BadRequest(c, "invalid_interval", "end_at must be after start_at.")
		return
	}

	if req.Type != nil {
		toType := models.TimeOffType(*req.Type)
		if !validTimeOffTypes[toType] {
			httperr.BadRequest(c, "invalid_type", "type must be VACATION, SICK or PERSONAL.")
			return
		}
		timeOff.Type = toType
	}

	timeOff.StartAt = startAt
	timeOff.EndAt = endAt
	if req.Note != nil {
		timeOff.Note = *req.Note
	}
	if req.IsActive != nil {
		timeOff.IsActive = *req.IsActive
	}

	if err := h.db.Save(&timeOff).Error; err != nil {
		httperr.Internal(c, "failed_to_update_time_off", "Could not update the time off.")
		return
	}

	h.invalidate(c, timeOff.BarberID)
	h.dispatch(c, "time_off_updated", &timeOff.ID)
	httpresp.OK(c, timeOff)
}

func (h *TimeOffHandler) Delete(c *gin.Context) {
	var timeOff models.BarberTimeOff
	if err := h.db.First(&timeOff, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "time_off_not_found", "Time off not found.")
		return
	}

	if err := h.db.Delete(&timeOff).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_time_off", "Could not delete the time off.")
		return
	}

	h.invalidate(c, timeOff.BarberID)
	h.dispatch(c, "time_off_deleted", &timeOff.ID)
	httpresp.NoContent(c)
}

func (h *TimeOffHandler) invalidate(c *gin.Context, barberID string) {
	if h.cache != nil {
		h.cache.InvalidateBarber(c.Request.Context(), barberID)
	}
}

func (h *TimeOffHandler) dispatch(c *gin.Context, action string, entityID *string) {
	h.audit.Dispatch(audit.Event{
		UserID:   auditUserID(c),
		Action:   action,
		Entity:   "barber_time_off",
		EntityID: entityID,
	})
}
