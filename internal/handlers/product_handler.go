package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atelierbarbier/reservation-api/internal/audit"
	"github.com/atelierbarbier/reservation-api/internal/httperr"
	"github.com/atelierbarbier/reservation-api/internal/httpresp"
	"github.com/atelierbarbier/reservation-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ProductHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewProductHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ProductHandler {
	return &ProductHandler{db: db, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Images      []string `json:"images" binding:"required,min=1"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Images      []string `json:"images"`
	IsActive    *bool    `json:"is_active"`
}

// ======================================================
// PUBLIC LIST
// ======================================================

// ListActive is the public shop page: active products only, optional
// free-text filter on name and description.
func (h *ProductHandler) ListActive(c *gin.Context) {
	q := h.db.Where("is_active = ?", true)

	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var products []models.Product
	if err := q.Order("name ASC").Find(&products).Error; err != nil {
		httperr.Internal(c, "failed_to_list_products", "Could not list products.")
		return
	}

	httpresp.List(c, products)
}

// ======================================================
// ADMIN CRUD
// ======================================================

func (h *ProductHandler) List(c *gin.Context) {
	var products []models.Product
	if err := h.db.Order("name ASC").Find(&products).Error; err != nil {
		httperr.Internal(c, "failed_to_list_products", "Could not list products.")
		return
	}

	httpresp.List(c, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	var product models.Product
	if err := h.db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Product not found.")
		return
	}

	httpresp.OK(c, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		IsActive:    true,
	}

	if err := h.db.Create(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_create_product", "Could not create the product.")
		return
	}

	h.dispatch(c, "product_created", &product.ID)
	httpresp.Created(c, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Price != nil && *req.Price <= 0 {
		httperr.BadRequest(c, "invalid_price", "price must be greater than zero.")
		return
	}

	var product models.Product
	if err := h.db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Product not found.")
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "Could not update the product.")
		return
	}

	h.dispatch(c, "product_updated", &product.ID)
	httpresp.OK(c, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_product", "Could not delete the product.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "product_not_found", "Product not found.")
		return
	}

	h.dispatch(c, "product_deleted", &id)
	httpresp.NoContent(c)
}

func (h *ProductHandler) dispatch(c *gin.Context, action string, entityID *string) {
	h.audit.Dispatch(audit.Event{
		UserID:   auditUserID(c),
		Action:   action,
		Entity:   "product",
		EntityID: entityID,
	})
}
