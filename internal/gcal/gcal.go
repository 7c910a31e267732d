package gcal

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/atelierbarbier/reservation-api/internal/config"
	"github.com/atelierbarbier/reservation-api/internal/models"
	"github.com/atelierbarbier/reservation-api/internal/timezone"
)

// Client syncs reservations into each barber's Google Calendar.
// Credentials are loaded from storage per operation and discarded: no
// OAuth state survives between requests, so one barber's tokens can
// never leak into another barber's sync.
type Client struct {
	oauth *oauth2.Config
	db    *gorm.DB
}

// New returns nil when Google OAuth is not configured; callers treat a
// nil client as sync disabled.
func New(cfg *config.Config, db *gorm.DB) *Client {
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" || cfg.GoogleRedirectURL == "" {
		return nil
	}

	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{calendar.CalendarScope},
			Endpoint:     google.Endpoint,
		},
		db: db,
	}
}

// AuthURL starts the consent flow; state carries the barber id back to
// the callback.
func (c *Client) AuthURL(barberID string) string {
	return c.oauth.AuthCodeURL(
		barberID,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return c.oauth.Exchange(ctx, code)
}

func (c *Client) SaveToken(ctx context.Context, barberID string, token *oauth2.Token) error {
	row := models.BarberGoogleToken{
		BarberID:     barberID,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}

	return c.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "barber_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"access_token", "refresh_token", "expiry", "updated_at"}),
		}).
		Create(&row).Error
}

func (c *Client) HasToken(ctx context.Context, barberID string) bool {
	var count int64
	c.db.WithContext(ctx).
		Model(&models.BarberGoogleToken{}).
		Where("barber_id = ?", barberID).
		Count(&count)
	return count > 0
}

// AddReservationEvent inserts the reservation into the barber's
// calendar. The reservation must carry its Barber and Service.
func (c *Client) AddReservationEvent(ctx context.Context, r *models.Reservation) error {
	if r.Barber.GoogleCalendarID == "" {
		return fmt.Errorf("barber %s has no google calendar id", r.BarberID)
	}

	var row models.BarberGoogleToken
	if err := c.db.WithContext(ctx).
		First(&row, "barber_id = ?", r.BarberID).Error; err != nil {
		return fmt.Errorf("no stored google token for barber %s: %w", r.BarberID, err)
	}

	stored := &oauth2.Token{
		AccessToken:  row.AccessToken,
		RefreshToken: row.RefreshToken,
		Expiry:       row.Expiry,
	}

	// Short-lived token source; refreshes transparently when expired.
	ts := c.oauth.TokenSource(ctx, stored)

	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return fmt.Errorf("failed to create calendar service: %w", err)
	}

	end := r.EndAt
	if end.IsZero() {
		end = r.StartAt.Add(time.Duration(r.Service.DurationMin) * time.Minute)
	}

	event := &calendar.Event{
		Summary: fmt.Sprintf("Client: %s", r.ClientName),
		Description: fmt.Sprintf(
			"Phone: %s | Email: %s\nService: %s",
			r.ClientPhone, r.ClientEmail, r.Service.NameEn,
		),
		Start: &calendar.EventDateTime{
			DateTime: r.StartAt.Format(time.RFC3339),
			TimeZone: timezone.Location().String(),
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: timezone.Location().String(),
		},
	}

	if _, err := svc.Events.Insert(r.Barber.GoogleCalendarID, event).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to insert calendar event: %w", err)
	}

	// Persist the rotated token so the next operation starts fresh.
	if refreshed, err := ts.Token(); err == nil && refreshed.AccessToken != stored.AccessToken {
		_ = c.SaveToken(ctx, r.BarberID, refreshed)
	}

	return nil
}
