package dto

import (
	"time"

	"github.com/atelierbarbier/reservation-api/internal/models"
)

// ReservationListDTO flattens the preloaded barber and service into the
// admin list payload.
type ReservationListDTO struct {
	ID          string    `json:"id"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	BarberName  string    `json:"barber_name"`
	ServiceName string    `json:"service_name"`
}

func FromReservation(r *models.Reservation) ReservationListDTO {
	end := r.EndAt
	if end.IsZero() {
		end = r.StartAt.Add(time.Duration(r.Service.DurationMin) * time.Minute)
	}

	return ReservationListDTO{
		ID:          r.ID,
		StartAt:     r.StartAt,
		EndAt:       end,
		Status:      r.Status,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		BarberName:  r.Barber.Name,
		ServiceName: r.Service.NameEn,
	}
}

func FromReservations(rs []models.Reservation) []ReservationListDTO {
	out := make([]ReservationListDTO, 0, len(rs))
	for i := range rs {
		out = append(out, FromReservation(&rs[i]))
	}
	return out
}
