package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelierbarbier/reservation-api/internal/audit"
	"github.com/atelierbarbier/reservation-api/internal/httperr"
	"github.com/atelierbarbier/reservation-api/internal/httpresp"
	"github.com/atelierbarbier/reservation-api/internal/models"
	"github.com/atelierbarbier/reservation-api/internal/storage"
)

// Uploads are decoded and re-encoded server side, so oversized or
// disguised files never reach the bucket as-is.
const maxUploadBytes = 10 << 20

// ======================================================
// HANDLER
// ======================================================

type GalleryHandler struct {
	db      *gorm.DB
	storage *storage.S3Storage
	audit   *audit.Dispatcher
}

func NewGalleryHandler(db *gorm.DB, s3 *storage.S3Storage, dispatcher *audit.Dispatcher) *GalleryHandler {
	return &GalleryHandler{db: db, storage: s3, audit: dispatcher}
}

// ======================================================
// PUBLIC LIST
// ======================================================

func (h *GalleryHandler) List(c *gin.Context) {
	var images []models.GalleryImage
	if err := h.db.Order("position ASC, created_at ASC").Find(&images).Error; err != nil {
		httperr.Internal(c, "failed_to_list_images", "Could not list images.")
		return
	}

	httpresp.List(c, images)
}

// ======================================================
// UPLOAD
// ======================================================

func (h *GalleryHandler) Upload(c *gin.Context) {
	if h.storage == nil {
		httperr.Internal(c, "storage_not_configured", "Image storage is not configured.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}

	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Image must be under 10MB.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Could not read the upload.")
		return
	}
	defer file.Close()

	encoded, err := storage.EncodeWebP(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "File is not a supported image.")
		return
	}

	key := fmt.Sprintf("gallery/%d-%s.webp", time.Now().Unix(), uuid.NewString())

	url, err := h.storage.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Could not store the image.")
		return
	}

	var maxPos int
	h.db.Model(&models.GalleryImage{}).
		Select("COALESCE(MAX(position), 0)").
		Scan(&maxPos)

	image := models.GalleryImage{
		URL:        url,
		StorageKey: key,
		Position:   maxPos + 1,
	}

	if err := h.db.Create(&image).Error; err != nil {
		// Orphaned object; best effort cleanup.
		_ = h.storage.Delete(c.Request.Context(), key)
		httperr.Internal(c, "failed_to_save_image", "Could not save the image.")
		return
	}

	h.dispatch(c, "gallery_image_uploaded", &image.ID)
	httpresp.Created(c, image)
}

// ======================================================
// REORDER
// ======================================================

type ReorderGalleryRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

func (h *GalleryHandler) Reorder(c *gin.Context) {
	var req ReorderGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range req.IDs {
			res := tx.Model(&models.GalleryImage{}).
				Where("id = ?", id).
				Update("position", i+1)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return httperr.ErrNotFound("image_not_found", "Image not found: "+id)
			}
		}
		return nil
	})
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	h.dispatch(c, "gallery_reordered", nil)
	httpresp.NoContent(c)
}

// ======================================================
// DELETE
// ======================================================

func (h *GalleryHandler) Delete(c *gin.Context) {
	var image models.GalleryImage
	if err := h.db.First(&image, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "image_not_found", "Image not found.")
		return
	}

	if err := h.db.Delete(&image).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_image", "Could not delete the image.")
		return
	}

	if h.storage != nil {
		_ = h.storage.Delete(c.Request.Context(), image.StorageKey)
	}

	h.dispatch(c, "gallery_image_deleted", &image.ID)
	httpresp.NoContent(c)
}

func (h *GalleryHandler) dispatch(c *gin.Context, action string, entityID *string) {
	h.audit.Dispatch(audit.Event{
		UserID:   auditUserID(c),
		Action:   action,
		Entity:   "gallery_image",
		EntityID: entityID,
	})
}
