package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func commentRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewCommentHandler(nil)
	r := gin.New()
	r.POST("/comments", h.Create)
	return r
}

func postComment(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/comments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCommentCreate_MissingMessage(t *testing.T) {
	r := commentRouter()

	if w := postComment(r, `{"name":"Jean"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCommentCreate_MissingName(t *testing.T) {
	r := commentRouter()

	if w := postComment(r, `{"message":"Best cut in town."}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCommentCreate_BlankMessage(t *testing.T) {
	r := commentRouter()

	// Whitespace passes the required binding but is still rejected.
	if w := postComment(r, `{"name":"Jean","message":"   "}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank message, got %d", w.Code)
	}
}

func TestCommentCreate_InvalidEmail(t *testing.T) {
	r := commentRouter()

	if w := postComment(r, `{"name":"Jean","email":"not-an-email","message":"Merci!"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %d", w.Code)
	}
}
