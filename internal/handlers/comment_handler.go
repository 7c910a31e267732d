package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atelierbarbier/reservation-api/internal/httperr"
	"github.com/atelierbarbier/reservation-api/internal/httpresp"
	"github.com/atelierbarbier/reservation-api/internal/models"
)

type CommentHandler struct {
	db *gorm.DB
}

func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{db: db}
}

// --------- Requests ---------

type CreateCommentRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Message string `json:"message" binding:"required"`
}

// --------- Handlers ---------

// Create is the public contact box. No auth, no echo of the stored
// row; the client only learns that the message went through.
func (h *CommentHandler) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	comment := models.Comment{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Message: strings.TrimSpace(req.Message),
	}

	if comment.Message == "" {
		httperr.BadRequest(c, "invalid_request", "message cannot be blank.")
		return
	}

	if err := h.db.Create(&comment).Error; err != nil {
		httperr.Internal(c, "failed_to_create_comment", "Could not save the message.")
		return
	}

	httpresp.Created(c, gin.H{"message": "Comment created successfully"})
}

// List is admin-only: newest first.
func (h *CommentHandler) List(c *gin.Context) {
	var comments []models.Comment
	if err := h.db.Order("created_at DESC").Find(&comments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_comments", "Could not list comments.")
		return
	}

	httpresp.List(c, comments)
}
