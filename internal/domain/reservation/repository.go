package reservation

import (
	"context"
	"time"

	"github.com/atelierbarbier/reservation-api/internal/models"
)

type Repository interface {
	// -------- Barber / Service --------
	GetBarber(
		ctx context.Context,
		id string,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	// -------- Weekly schedule --------
	ListActiveSchedules(
		ctx context.Context,
		barberID string,
		day models.DayOfWeek,
	) ([]models.BarberSchedule, error)

	// -------- Time off --------
	ListActiveTimeOffs(
		ctx context.Context,
		barberID string,
		windowStart time.Time,
		windowEnd time.Time,
	) ([]models.BarberTimeOff, error)

	HasTimeOffOverlap(
		ctx context.Context,
		barberID string,
		start time.Time,
		end time.Time,
	) (bool, error)

	// -------- Reservations --------
	ListReservationsForDay(
		ctx context.Context,
		barberID string,
		dayStart time.Time,
		dayEnd time.Time,
		excludeID string,
	) ([]models.Reservation, error)

	GetReservation(
		ctx context.Context,
		id string,
	) (*models.Reservation, error)

	ListReservations(
		ctx context.Context,
	) ([]models.Reservation, error)

	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	UpdateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	DeleteReservation(
		ctx context.Context,
		id string,
	) error
}
