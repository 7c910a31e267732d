package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func record(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	FromBusiness(c, err)
	return w
}

func TestFromBusiness_Statuses(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{ErrNotFound("barber_not_found", "Barber not found."), http.StatusNotFound},
		{ErrInvalidInput("invalid_date", "date must be YYYY-MM-DD."), http.StatusBadRequest},
		{ErrConflict("slot_taken", "Slot is no longer available."), http.StatusConflict},
	}

	for _, tc := range cases {
		if w := record(t, tc.err); w.Code != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, w.Code)
		}
	}
}

func TestFromBusiness_WrappedConflict(t *testing.T) {
	wrapped := fmt.Errorf("saving reservation: %w",
		ErrConflict("slot_taken", "Slot is no longer available."))

	w := record(t, wrapped)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for wrapped conflict, got %d", w.Code)
	}
}

func TestFromBusiness_NonBusinessError(t *testing.T) {
	w := record(t, errors.New("connection reset"))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
