package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitreni/coach-scheduler/internal/domain/schedule"
	"github.com/fitreni/coach-scheduler/internal/middleware"
	"github.com/fitreni/coach-scheduler/internal/models"
	"github.com/fitreni/coach-scheduler/internal/usecase/booking"
)

type AvailabilityWindowsHandler struct {
	db         *gorm.DB
	invalidate booking.InvalidationPublisher
}

func NewAvailabilityWindowsHandler(db *gorm.DB, invalidate booking.InvalidationPublisher) *AvailabilityWindowsHandler {
	return &AvailabilityWindowsHandler{db: db, invalidate: invalidate}
}

type AvailabilityWindowConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Active    bool   `json:"active"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type AvailabilityWindowsUpdateRequest struct {
	Windows []AvailabilityWindowConfig `json:"windows" binding:"required"`
}

func (h *AvailabilityWindowsHandler) Get(c *gin.Context) {
	coachIDVal, _ := c.Get(middleware.ContextCoachID)
	coachID := coachIDVal.(uint)

	var windows []models.AvailabilityWindow
	if err := h.db.
		Where("coach_id = ?", coachID).
		Order("weekday ASC, start_time ASC").
		Find(&windows).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_availability_windows"})
		return
	}

	c.JSON(http.StatusOK, windows)
}

// Update replaces the coach's whole weekly template in one call.
func (h *AvailabilityWindowsHandler) Update(c *gin.Context) {
	coachIDVal, _ := c.Get(middleware.ContextCoachID)
	coachID := coachIDVal.(uint)

	var req AvailabilityWindowsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	for _, w := range req.Windows {
		start, err := schedule.ToMinutes(w.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_start_time"})
			return
		}
		end, err := schedule.ToMinutes(w.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_end_time"})
			return
		}
		if start >= end {
			c.JSON(http.StatusBadRequest, gin.H{"error": "window_start_after_end"})
			return
		}
	}

	if err := h.db.Where("coach_id = ?", coachID).Delete(&models.AvailabilityWindow{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_clear_existing_windows"})
		return
	}

	var toCreate []models.AvailabilityWindow
	for _, w := range req.Windows {
		toCreate = append(toCreate, models.AvailabilityWindow{
			CoachID:   coachID,
			Weekday:   w.Weekday,
			Active:    w.Active,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
		})
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_availability_windows"})
			return
		}
	}

	if h.invalidate != nil {
		h.invalidate.Publish(c.Request.Context(), coachID)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
