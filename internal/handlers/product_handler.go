package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitreni/coach-scheduler/internal/middleware"
	"github.com/fitreni/coach-scheduler/internal/models"
)

type ProductHandler struct {
	db *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Kind        string  `json:"kind" binding:"required,oneof=digital physical"`
	Price       float64 `json:"price" binding:"required"`
	WeightGrams int     `json:"weight_grams"`
	Stock       *int    `json:"stock"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	WeightGrams *int     `json:"weight_grams,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ProductHandler) List(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	kind := strings.TrimSpace(c.Query("kind"))
	activeStr := strings.TrimSpace(c.Query("active"))

	q := h.db.Where("studio_id = ?", studioID)

	if kind == models.ProductKindDigital || kind == models.ProductKindPhysical {
		q = q.Where("kind = ?", kind)
	}
	if activeStr == "true" {
		q = q.Where("active = true")
	} else if activeStr == "false" {
		q = q.Where("active = false")
	}

	var products []models.Product
	if err := q.Order("id ASC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Kind == models.ProductKindPhysical && req.WeightGrams <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weight_required"})
		return
	}

	stock := -1
	if req.Stock != nil {
		stock = *req.Stock
	}

	product := models.Product{
		StudioID:    studioID,
		Name:        req.Name,
		Description: req.Description,
		Kind:        req.Kind,
		Price:       req.Price,
		WeightGrams: req.WeightGrams,
		Stock:       stock,
		Active:      true,
	}

	if err := h.db.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)
	id := c.Param("id")

	var product models.Product
	if err := h.db.
		Where("id = ? AND studio_id = ?", id, studioID).
		First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
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
	if req.WeightGrams != nil {
		product.WeightGrams = *req.WeightGrams
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := h.db.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_product"})
		return
	}

	c.JSON(http.StatusOK, product)
}
