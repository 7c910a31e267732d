package reminder

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	domain "github.com/atelierbarbier/reservation-api/internal/domain/reservation"
	"github.com/atelierbarbier/reservation-api/internal/mailer"
	"github.com/atelierbarbier/reservation-api/internal/models"
	"github.com/atelierbarbier/reservation-api/internal/timezone"
)

// Service emails next-day confirmed reservations once a day. A failed
// send is logged and skipped; it never blocks the sweep.
type Service struct {
	db     *gorm.DB
	mailer *mailer.Mailer
}

func New(db *gorm.DB, m *mailer.Mailer) *Service {
	return &Service{db: db, mailer: m}
}

// StartScheduler runs the sweep every day at 09:00 in the deployment zone.
func (s *Service) StartScheduler() {
	if s.mailer == nil {
		log.Println("reminder scheduler disabled: no mailer configured")
		return
	}

	c := cron.New(cron.WithLocation(timezone.Location()))

	if _, err := c.AddFunc("0 9 * * *", s.SendDailyReminders); err != nil {
		log.Printf("failed to schedule reminders: %v", err)
		return
	}

	c.Start()
	log.Println("reminder scheduler started")
}

func (s *Service) SendDailyReminders() {
	now := timezone.Now()
	year, month, day := now.Date()

	// Tomorrow's local civil day, as UTC bounds.
	dayStart := timezone.NextLocalMidnight(year, month, day)
	ty, tm, td := dayStart.Date()
	_, dayEnd := timezone.LocalDayBounds(ty, tm, td)

	var reservations []models.Reservation
	if err := s.db.
		Preload("Barber").
		Preload("Service").
		Where(
			"status = ? AND start_at >= ? AND start_at <= ?",
			string(domain.StatusConfirmed), dayStart, dayEnd,
		).
		Order("start_at ASC").
		Find(&reservations).Error; err != nil {
		log.Printf("reminder sweep query failed: %v", err)
		return
	}

	ctx := context.Background()
	for i := range reservations {
		r := &reservations[i]
		if r.ClientEmail == "" {
			continue
		}
		if err := s.mailer.SendReservationReminder(ctx, r); err != nil {
			log.Printf("reminder email failed for reservation %s: %v", r.ID, err)
		}
	}
}
