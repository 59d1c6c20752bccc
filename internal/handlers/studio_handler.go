package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitreni/coach-scheduler/internal/httperr"
	"github.com/fitreni/coach-scheduler/internal/middleware"
	"github.com/fitreni/coach-scheduler/internal/models"
	"github.com/fitreni/coach-scheduler/internal/timezone"
)

type StudioHandler struct {
	db *gorm.DB
}

func NewStudioHandler(db *gorm.DB) *StudioHandler {
	return &StudioHandler{db: db}
}

type UpdateStudioConfigRequest struct {
	MinAdvanceMinutes *int    `json:"min_advance_minutes"`
	Timezone          *string `json:"timezone"`
	DefaultLocale     *string `json:"default_locale"`
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
}

func (h *StudioHandler) GetMeStudio(c *gin.Context) {
	studioIDVal, _ := c.Get(middleware.ContextStudioID)
	studioID := studioIDVal.(uint)

	var shop models.Studio
	if err := h.db.First(&shop, studioID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "studio_not_found", "Studio not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_studio", "Failed to load studio settings.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

func (h *StudioHandler) UpdateMeStudio(c *gin.Context) {
	studioIDVal, _ := c.Get(middleware.ContextStudioID)
	studioID := studioIDVal.(uint)

	var shop models.Studio
	if err := h.db.First(&shop, studioID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "studio_not_found", "Studio not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_studio", "Failed to load studio settings.")
		return
	}

	var req UpdateStudioConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "Minimum advance must be zero or positive (minutes).")
			return
		}
		shop.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown timezone identifier.")
			return
		}
		shop.Timezone = *req.Timezone
	}

	if req.DefaultLocale != nil {
		switch *req.DefaultLocale {
		case "hu", "en", "es":
			shop.DefaultLocale = *req.DefaultLocale
		default:
			httperr.BadRequest(c, "invalid_locale", "Supported locales: hu, en, es.")
			return
		}
	}

	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_studio", "Failed to save studio settings.")
		return
	}

	c.JSON(http.StatusOK, shop)
}
