package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/atelierbarbier/reservation-api/internal/domain/reservation"
	"github.com/atelierbarbier/reservation-api/internal/dto"
	"github.com/atelierbarbier/reservation-api/internal/httperr"
	"github.com/atelierbarbier/reservation-api/internal/httpresp"
	"github.com/atelierbarbier/reservation-api/internal/timezone"
	ucReservation "github.com/atelierbarbier/reservation-api/internal/usecase/reservation"
	"github.com/atelierbarbier/reservation-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	repo domain.Repository

	availabilityUC *ucReservation.GetAvailability
	createUC       *ucReservation.CreateReservation
	updateUC       *ucReservation.UpdateReservation
	cancelUC       *ucReservation.CancelReservation
}

func NewReservationHandler(
	repo domain.Repository,
	availabilityUC *ucReservation.GetAvailability,
	createUC *ucReservation.CreateReservation,
	updateUC *ucReservation.UpdateReservation,
	cancelUC *ucReservation.CancelReservation,
) *ReservationHandler {
	return &ReservationHandler{
		repo:           repo,
		availabilityUC: availabilityUC,
		createUC:       createUC,
		updateUC:       updateUC,
		cancelUC:       cancelUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	BarberID  string `json:"barber_id" binding:"required"`
	ServiceID string `json:"service_id" binding:"required"`

	// Legacy shape: date=YYYY-MM-DD + time=HH:MM local clock.
	// Explicit shape: date as RFC3339 start, endDate optional RFC3339.
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time"`
	EndDate string `json:"endDate"`

	Status string `json:"status"`

	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required,email"`
}

type UpdateReservationRequest struct {
	BarberID  string `json:"barber_id" binding:"required"`
	ServiceID string `json:"service_id" binding:"required"`

	Date    string `json:"date" binding:"required"`
	Time    string `json:"time"`
	EndDate string `json:"endDate"`

	Status string `json:"status" binding:"required"`

	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required,email"`
}

// ======================================================
// AVAILABILITY (public)
// ======================================================

func (h *ReservationHandler) Availability(c *gin.Context) {
	// The legacy client sends camelCase query params.
	barberID := c.Query("barber_id")
	if barberID == "" {
		barberID = c.Query("barberId")
	}
	serviceID := c.Query("service_id")
	if serviceID == "" {
		serviceID = c.Query("serviceId")
	}
	dateStr := c.Query("date")

	if barberID == "" || serviceID == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "barber_id, service_id and date are required.")
		return
	}

	date, err := timezone.ParseLocalDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD.")
		return
	}

	result, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, result)
}

// ======================================================
// CREATE (public booking)
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	// The confirmation email goes to this address, so an undeliverable
	// domain is rejected before the slot is even considered.
	if err := validators.CheckClientEmail(req.ClientEmail); err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	reservation, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		BarberID:    req.BarberID,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		EndDate:     req.EndDate,
		Status:      req.Status,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
	})
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Created(c, reservation)
}

// ======================================================
// ADMIN
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	reservations, err := h.repo.ListReservations(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Could not list reservations.")
		return
	}

	httpresp.List(c, dto.FromReservations(reservations))
}

func (h *ReservationHandler) Get(c *gin.Context) {
	reservation, err := h.repo.GetReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "reservation_not_found", "Reservation not found.")
		return
	}

	httpresp.OK(c, reservation)
}

func (h *ReservationHandler) Update(c *gin.Context) {
	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	reservation, err := h.updateUC.Execute(c.Request.Context(), ucReservation.UpdateReservationInput{
		ID:          c.Param("id"),
		BarberID:    req.BarberID,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		EndDate:     req.EndDate,
		Status:      req.Status,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
	})
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, reservation)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	reservation, err := h.cancelUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, reservation)
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	// Hard delete is an admin escape hatch; cancel is the normal path.
	if _, err := h.repo.GetReservation(c.Request.Context(), id); err != nil {
		httperr.NotFound(c, "reservation_not_found", "Reservation not found.")
		return
	}

	if err := h.repo.DeleteReservation(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_reservation", "Could not delete the reservation.")
		return
	}

	httpresp.NoContent(c)
}
