package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/atelierbarbier/reservation-api/internal/domain/reservation"
	"github.com/atelierbarbier/reservation-api/internal/httperr"
	"github.com/atelierbarbier/reservation-api/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Barber / Service
// --------------------------------------------------

func (r *ReservationGormRepository) GetBarber(
	ctx context.Context,
	id string,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *ReservationGormRepository) GetService(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Weekly schedule
// --------------------------------------------------

func (r *ReservationGormRepository) ListActiveSchedules(
	ctx context.Context,
	barberID string,
	day models.DayOfWeek,
) ([]models.BarberSchedule, error) {

	var schedules []models.BarberSchedule
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND day_of_week = ? AND is_active = true", barberID, day).
		Order("start_time ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}

	return schedules, nil
}

// --------------------------------------------------
// Time off
// --------------------------------------------------

func (r *ReservationGormRepository) ListActiveTimeOffs(
	ctx context.Context,
	barberID string,
	windowStart time.Time,
	windowEnd time.Time,
) ([]models.BarberTimeOff, error) {

	var timeOffs []models.BarberTimeOff
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND is_active = true AND start_at <= ? AND end_at >= ?",
			barberID, windowEnd, windowStart,
		).
		Order("start_at ASC").
		Find(&timeOffs).Error; err != nil {
		return nil, err
	}

	return timeOffs, nil
}

func (r *ReservationGormRepository) HasTimeOffOverlap(
	ctx context.Context,
	barberID string,
	start time.Time,
	end time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BarberTimeOff{}).
		Where(
			"barber_id = ? AND is_active = true AND start_at < ? AND end_at > ?",
			barberID, end, start,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Reservations
// --------------------------------------------------

func (r *ReservationGormRepository) ListReservationsForDay(
	ctx context.Context,
	barberID string,
	dayStart time.Time,
	dayEnd time.Time,
	excludeID string,
) ([]models.Reservation, error) {

	q := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"barber_id = ? AND status <> ? AND start_at >= ? AND start_at <= ?",
			barberID, string(domain.StatusCancelled), dayStart, dayEnd,
		)

	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var reservations []models.Reservation
	if err := q.Order("start_at ASC").Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *ReservationGormRepository) GetReservation(
	ctx context.Context,
	id string,
) (*models.Reservation, error) {

	var reservation models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		First(&reservation, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &reservation, nil
}

func (r *ReservationGormRepository) ListReservations(
	ctx context.Context,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		Order("start_at ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	reservation *models.Reservation,
) error {
	return translateConflict(
		r.db.WithContext(ctx).Create(reservation).Error,
	)
}

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	reservation *models.Reservation,
) error {
	return translateConflict(
		r.db.WithContext(ctx).Save(reservation).Error,
	)
}

func (r *ReservationGormRepository) DeleteReservation(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Reservation{}, "id = ?", id).Error
}

// translateConflict turns the exclusion/unique constraint violation
// raised when two requests race for the same slot into the scheduling
// conflict the caller expects, instead of a generic server error.
func translateConflict(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23P01 exclusion_violation, 23505 unique_violation
		if pgErr.Code == "23P01" || pgErr.Code == "23505" {
			return httperr.ErrConflict("slot_taken", "Slot is no longer available.")
		}
	}

	return err
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
