package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitreni/coach-scheduler/internal/middleware"
	"github.com/fitreni/coach-scheduler/internal/models"
)

type ShippingHandler struct {
	db *gorm.DB
}

func NewShippingHandler(db *gorm.DB) *ShippingHandler {
	return &ShippingHandler{db: db}
}

type CreateShippingMethodRequest struct {
	Name           string  `json:"name" binding:"required"`
	Fee            float64 `json:"fee"`
	FreeAbove      float64 `json:"free_above"`
	MaxWeightGrams int     `json:"max_weight_grams"`
}

type UpdateShippingMethodRequest struct {
	Name           *string  `json:"name,omitempty"`
	Fee            *float64 `json:"fee,omitempty"`
	FreeAbove      *float64 `json:"free_above,omitempty"`
	MaxWeightGrams *int     `json:"max_weight_grams,omitempty"`
	Active         *bool    `json:"active,omitempty"`
}

func (h *ShippingHandler) List(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var methods []models.ShippingMethod
	if err := h.db.
		Where("studio_id = ?", studioID).
		Order("id ASC").
		Find(&methods).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_shipping_methods"})
		return
	}

	c.JSON(http.StatusOK, methods)
}

func (h *ShippingHandler) Create(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var req CreateShippingMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Fee < 0 || req.FreeAbove < 0 || req.MaxWeightGrams < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "negative_value"})
		return
	}

	method := models.ShippingMethod{
		StudioID:       studioID,
		Name:           req.Name,
		Fee:            req.Fee,
		FreeAbove:      req.FreeAbove,
		MaxWeightGrams: req.MaxWeightGrams,
		Active:         true,
	}

	if err := h.db.Create(&method).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_shipping_method"})
		return
	}

	c.JSON(http.StatusCreated, method)
}

func (h *ShippingHandler) Update(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)
	id := c.Param("id")

	var method models.ShippingMethod
	if err := h.db.
		Where("id = ? AND studio_id = ?", id, studioID).
		First(&method).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "shipping_method_not_found"})
		return
	}

	var req UpdateShippingMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if req.Name != nil {
		method.Name = *req.Name
	}
	if req.Fee != nil {
		method.Fee = *req.Fee
	}
	if req.FreeAbove != nil {
		method.FreeAbove = *req.FreeAbove
	}
	if req.MaxWeightGrams != nil {
		method.MaxWeightGrams = *req.MaxWeightGrams
	}
	if req.Active != nil {
		method.Active = *req.Active
	}

	if err := h.db.Save(&method).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_shipping_method"})
		return
	}

	c.JSON(http.StatusOK, method)
}
