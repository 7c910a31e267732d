package mailer

import (
	"fmt"
	"strings"
	"time"

	"github.com/atelierbarbier/reservation-api/internal/models"
	"github.com/atelierbarbier/reservation-api/internal/timezone"
)

// All client-facing times are rendered in the deployment zone, never UTC.

func confirmationSubject(r *models.Reservation) string {
	startLocal := timezone.ToLocal(r.StartAt)
	return fmt.Sprintf(
		"Reservation confirmed • %s • %s %s",
		r.Service.NameEn,
		startLocal.Format("January 2, 2006"),
		startLocal.Format("15:04"),
	)
}

func confirmationBody(r *models.Reservation) string {
	startLocal := timezone.ToLocal(r.StartAt)
	endLocal := timezone.ToLocal(endOf(r))

	lines := []string{
		fmt.Sprintf("Hi %s,", r.ClientName),
		"",
		"Votre réservation est confirmée.",
		"",
		fmt.Sprintf("Service: %s / %s", r.Service.NameEn, r.Service.NameFr),
		fmt.Sprintf("Barbier: %s", r.Barber.Name),
		fmt.Sprintf(
			"Quand: %s %s–%s (%s)",
			startLocal.Format("January 2, 2006"),
			startLocal.Format("15:04"),
			endLocal.Format("15:04"),
			timezone.Location().String(),
		),
	}

	if r.ClientPhone != "" {
		lines = append(lines, fmt.Sprintf("Téléphone: %s", r.ClientPhone))
	}

	lines = append(lines, "", "À bientôt!")
	return strings.Join(lines, "\n")
}

func reminderSubject(r *models.Reservation) string {
	startLocal := timezone.ToLocal(r.StartAt)
	return fmt.Sprintf(
		"Reminder • %s tomorrow at %s",
		r.Service.NameEn,
		startLocal.Format("15:04"),
	)
}

func reminderBody(r *models.Reservation) string {
	startLocal := timezone.ToLocal(r.StartAt)

	return strings.Join([]string{
		fmt.Sprintf("Hi %s,", r.ClientName),
		"",
		"Un rappel de votre réservation demain.",
		"",
		fmt.Sprintf("Service: %s / %s", r.Service.NameEn, r.Service.NameFr),
		fmt.Sprintf("Barbier: %s", r.Barber.Name),
		fmt.Sprintf(
			"Quand: %s %s (%s)",
			startLocal.Format("January 2, 2006"),
			startLocal.Format("15:04"),
			timezone.Location().String(),
		),
		"",
		"À bientôt!",
	}, "\n")
}

func endOf(r *models.Reservation) time.Time {
	if !r.EndAt.IsZero() {
		return r.EndAt
	}
	return r.StartAt.Add(time.Duration(r.Service.DurationMin) * time.Minute)
}
