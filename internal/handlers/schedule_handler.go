package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atelierbarbier/reservation-api/internal/audit"
	"github.com/atelierbarbier/reservation-api/internal/cache"
	domain "github.com/atelierbarbier/reservation-api/internal/domain/reservation"
	"github.com/atelierbarbier/reservation-api/internal/httperr"
	"github.com/atelierbarbier/reservation-api/internal/httpresp"
	"github.com/atelierbarbier/reservation-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewScheduleHandler(db *gorm.DB, dispatcher *audit.Dispatcher, cache *cache.Cache) *ScheduleHandler {
	return &ScheduleHandler{db: db, audit: dispatcher, cache: cache}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateScheduleRequest struct {
	BarberID  string `json:"barber_id" binding:"required"`
	DayOfWeek string `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type UpdateScheduleRequest struct {
	DayOfWeek *string `json:"day_of_week"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	IsActive  *bool   `json:"is_active"`
}

// ======================================================
// VALIDATION
// ======================================================

var validDays = map[models.DayOfWeek]bool{
	models.Sunday: true, models.Monday: true, models.Tuesday: true,
	models.Wednesday: true, models.Thursday: true, models.Friday: true,
	models.Saturday: true,
}

// validateWindow rejects malformed labels and void windows (start must
// come strictly before end) so the grid never has to skip stored rows.
func validateWindow(startTime, endTime string) error {
	startMin, err := domain.ParseTimeToMinutes(startTime)
	if err != nil {
		return httperr.ErrInvalidInput("invalid_start_time", "start_time must be HH:MM.")
	}

	endMin, err := domain.ParseTimeToMinutes(endTime)
	if err != nil {
		return httperr.ErrInvalidInput("invalid_end_time", "end_time must be HH:MM.")
	}

	if startMin >= endMin {
		return httperr.ErrInvalidInput("void_window", "start_time must be before end_time.")
	}

	return nil
}

// ======================================================
// CRUD
// ======================================================

func (h *ScheduleHandler) ListByBarber(c *gin.Context) {
	barberID := c.Param("id")

	var count int64
	h.db.Model(&models.Barber{}).Where("id = ?", barberID).Count(&count)
	if count == 0 {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	var schedules []models.BarberSchedule
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("day_of_week ASC, start_time ASC").
		Find(&schedules).Error; err != nil {
		httperr.Internal(c, "failed_to_list_schedules", "Could not list schedules.")
		return
	}

	httpresp.List(c, schedules)
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	day := models.DayOfWeek(req.DayOfWeek)
	if !validDays[day] {
		httperr.BadRequest(c, "invalid_day_of_week", "day_of_week must be SUNDAY..SATURDAY.")
		return
	}

	if err := validateWindow(req.StartTime, req.EndTime); err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	var count int64
	h.db.Model(&models.Barber{}).Where("id = ?", req.BarberID).Count(&count)
	if count == 0 {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	schedule := models.BarberSchedule{
		BarberID:  req.BarberID,
		DayOfWeek: day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsActive:  true,
	}

	if err := h.db.Create(&schedule).Error; err != nil {
		httperr.Internal(c, "failed_to_create_schedule", "Could not create the schedule.")
		return
	}

	h.invalidate(c, schedule.BarberID)
	h.dispatch(c, "schedule_created", &schedule.ID)
	httpresp.Created(c, schedule)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	var schedule models.BarberSchedule
	if err := h.db.First(&schedule, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "schedule_not_found", "Schedule not found.")
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.DayOfWeek != nil {
		day := models.DayOfWeek(*req.DayOfWeek)
		if !validDays[day] {
			httperr.BadRequest(c, "invalid_day_of_week", "day_of_week must be SUNDAY..SATURDAY.")
			return
		}
		schedule.DayOfWeek = day
	}

	startTime := schedule.StartTime
	endTime := schedule.EndTime
	if req.StartTime != nil {
		startTime = *req.StartTime
	}
	if req.EndTime != nil {
		endTime = *req.EndTime
	}

	if err := validateWindow(startTime, endTime); err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	schedule.StartTime = startTime
	schedule.EndTime = endTime
	if req.IsActive != nil {
		schedule.IsActive = *req.IsActive
	}

	if err := h.db.Save(&schedule).Error; err != nil {
		httperr.Internal(c, "failed_to_update_schedule", "Could not update the schedule.")
		return
	}

	h.invalidate(c, schedule.BarberID)
	h.dispatch(c, "schedule_updated", &schedule.ID)
	httpresp.OK(c, schedule)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	var schedule models.BarberSchedule
	if err := h.db.First(&schedule, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "schedule_not_found", "Schedule not found.")
		return
	}

	if err := h.db.Delete(&schedule).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_schedule", "Could not delete the schedule.")
		return
	}

	h.invalidate(c, schedule.BarberID)
	h.dispatch(c, "schedule_deleted", &schedule.ID)
	httpresp.NoContent(c)
}

func (h *ScheduleHandler) invalidate(c *gin.Context, barberID string) {
	if h.cache != nil {
		h.cache.InvalidateBarber(c.Request.Context(), barberID)
	}
}

func (h *ScheduleHandler) dispatch(c *gin.Context, action string, entityID *string) {
	h.audit.Dispatch(audit.Event{
		UserID:   auditUserID(c),
		Action:   action,
		Entity:   "barber_schedule",
		EntityID: entityID,
	})
}
