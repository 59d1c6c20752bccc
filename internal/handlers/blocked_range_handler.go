package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitreni/coach-scheduler/internal/domain/schedule"
	"github.com/fitreni/coach-scheduler/internal/middleware"
	"github.com/fitreni/coach-scheduler/internal/models"
	"github.com/fitreni/coach-scheduler/internal/usecase/booking"
)

type BlockedRangeHandler struct {
	db         *gorm.DB
	invalidate booking.InvalidationPublisher
}

func NewBlockedRangeHandler(db *gorm.DB, invalidate booking.InvalidationPublisher) *BlockedRangeHandler {
	return &BlockedRangeHandler{db: db, invalidate: invalidate}
}

type CreateBlockedRangeRequest struct {
	Date      string `json:"date" binding:"required"`
	AllDay    bool   `json:"all_day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason"`
}

func (h *BlockedRangeHandler) List(c *gin.Context) {
	coachIDVal, _ := c.Get(middleware.ContextCoachID)
	coachID := coachIDVal.(uint)

	q := h.db.Where("coach_id = ?", coachID)

	if from := c.Query("from"); from != "" {
		if _, err := time.Parse("2006-01-02", from); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_from_date"})
			return
		}
		q = q.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		if _, err := time.Parse("2006-01-02", to); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_to_date"})
			return
		}
		q = q.Where("date <= ?", to)
	}

	var ranges []models.BlockedRange
	if err := q.Order("date ASC, start_time ASC").Find(&ranges).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_blocked_ranges"})
		return
	}

	c.JSON(http.StatusOK, ranges)
}

func (h *BlockedRangeHandler) Create(c *gin.Context) {
	coachIDVal, _ := c.Get(middleware.ContextCoachID)
	coachID := coachIDVal.(uint)

	var req CreateBlockedRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}

	if !req.AllDay {
		start, err := schedule.ToMinutes(req.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_start_time"})
			return
		}
		end, err := schedule.ToMinutes(req.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_end_time"})
			return
		}
		if start >= end {
			c.JSON(http.StatusBadRequest, gin.H{"error": "range_start_after_end"})
			return
		}
	}

	blocked := models.BlockedRange{
		CoachID:   coachID,
		Date:      req.Date,
		AllDay:    req.AllDay,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	}

	if err := h.db.Create(&blocked).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_blocked_range"})
		return
	}

	if h.invalidate != nil {
		h.invalidate.Publish(c.Request.Context(), coachID)
	}

	c.JSON(http.StatusCreated, blocked)
}

func (h *BlockedRangeHandler) Delete(c *gin.Context) {
	coachIDVal, _ := c.Get(middleware.ContextCoachID)
	coachID := coachIDVal.(uint)
	id := c.Param("id")

	res := h.db.Where("id = ? AND coach_id = ?", id, coachID).Delete(&models.BlockedRange{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_blocked_range"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "blocked_range_not_found"})
		return
	}

	if h.invalidate != nil {
		h.invalidate.Publish(c.Request.Context(), coachID)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
