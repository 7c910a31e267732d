package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atelierbarbier/reservation-api/internal/gcal"
	"github.com/atelierbarbier/reservation-api/internal/httperr"
	"github.com/atelierbarbier/reservation-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

// GoogleHandler runs the per-barber calendar consent flow. With no
// OAuth credentials configured the routes answer 503 instead of 404 so
// the front end can tell "disabled" from "wrong URL".
type GoogleHandler struct {
	db   *gorm.DB
	gcal *gcal.Client
}

func NewGoogleHandler(db *gorm.DB, client *gcal.Client) *GoogleHandler {
	return &GoogleHandler{db: db, gcal: client}
}

func (h *GoogleHandler) configured(c *gin.Context) bool {
	if h.gcal == nil {
		httperr.Write(c, http.StatusServiceUnavailable,
			"google_sync_disabled", "Google Calendar sync is not configured.")
		return false
	}
	return true
}

// ======================================================
// CONSENT FLOW
// ======================================================

func (h *GoogleHandler) AuthURL(c *gin.Context) {
	if !h.configured(c) {
		return
	}

	barberID := c.Param("id")

	var count int64
	h.db.Model(&models.Barber{}).Where("id = ?", barberID).Count(&count)
	if count == 0 {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	c.JSON(200, gin.H{"auth_url": h.gcal.AuthURL(barberID)})
}

func (h *GoogleHandler) Callback(c *gin.Context) {
	if !h.configured(c) {
		return
	}

	code := c.Query("code")
	barberID := c.Query("state")

	if code == "" || barberID == "" {
		httperr.BadRequest(c, "invalid_callback", "code and state are required.")
		return
	}

	var count int64
	h.db.Model(&models.Barber{}).Where("id = ?", barberID).Count(&count)
	if count == 0 {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	token, err := h.gcal.Exchange(c.Request.Context(), code)
	if err != nil {
		httperr.BadRequest(c, "exchange_failed", "Could not exchange the authorization code.")
		return
	}

	if err := h.gcal.SaveToken(c.Request.Context(), barberID, token); err != nil {
		httperr.Internal(c, "failed_to_save_token", "Could not store the credentials.")
		return
	}

	c.JSON(200, gin.H{"connected": true, "barber_id": barberID})
}

func (h *GoogleHandler) Status(c *gin.Context) {
	if !h.configured(c) {
		return
	}

	barberID := c.Param("id")

	var count int64
	h.db.Model(&models.Barber{}).Where("id = ?", barberID).Count(&count)
	if count == 0 {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	c.JSON(200, gin.H{
		"barber_id": barberID,
		"connected": h.gcal.HasToken(c.Request.Context(), barberID),
	})
}
