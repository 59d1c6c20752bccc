package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitreni/coach-scheduler/internal/middleware"
	"github.com/fitreni/coach-scheduler/internal/models"
	"github.com/fitreni/coach-scheduler/internal/usecase/booking"
)

type ServiceHandler struct {
	db         *gorm.DB
	invalidate booking.InvalidationPublisher
}

func NewServiceHandler(db *gorm.DB, invalidate booking.InvalidationPublisher) *ServiceHandler {
	return &ServiceHandler{db: db, invalidate: invalidate}
}

// serviceSlotsAffected reports whether an edit changes the slot grid:
// duration drives slot length, active drives whether slots exist at all.
func serviceSlotsAffected(prev, next models.Service) bool {
	return prev.DurationMin != next.DurationMin || prev.Active != next.Active
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"required"`
	Mode        string  `json:"mode" binding:"omitempty,oneof=online in_person"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Mode        *string  `json:"mode,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	activeStr := strings.TrimSpace(c.Query("active"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("studio_id = ?", studioID)

	if activeStr == "true" {
		q = q.Where("active = true")
	} else if activeStr == "false" {
		q = q.Where("active = false")
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	mode := req.Mode
	if mode == "" {
		mode = "in_person"
	}

	service := models.Service{
		StudioID:    studioID,
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Mode:        mode,
		Active:      true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service"})
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)
	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Where("id = ? AND studio_id = ?", id, studioID).
		First(&service).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	prev := service

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_duration"})
			return
		}
		service.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Mode != nil {
		if *req.Mode != "online" && *req.Mode != "in_person" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_mode"})
			return
		}
		service.Mode = *req.Mode
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service"})
		return
	}

	if h.invalidate != nil && serviceSlotsAffected(prev, service) {
		if coachIDVal, ok := c.Get(middleware.ContextCoachID); ok {
			h.invalidate.Publish(c.Request.Context(), coachIDVal.(uint))
		}
	}

	c.JSON(http.StatusOK, service)
}
