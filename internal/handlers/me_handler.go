package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitreni/coach-scheduler/internal/middleware"
	"github.com/fitreni/coach-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	coachIDVal, exists := c.Get(middleware.ContextCoachID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "coach_not_in_context"})
		return
	}

	coachID, ok := coachIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_coach_id_type"})
		return
	}

	var coach models.Coach
	if err := h.db.Preload("Studio").First(&coach, coachID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "coach_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"coach": gin.H{
			"id":        coach.ID,
			"name":      coach.Name,
			"email":     coach.Email,
			"phone":     coach.Phone,
			"role":      coach.Role,
			"studio_id": coach.StudioID,
		},
		"studio": gin.H{
			"id":       coach.Studio.ID,
			"name":     coach.Studio.Name,
			"slug":     coach.Studio.Slug,
			"phone":    coach.Studio.Phone,
			"address":  coach.Studio.Address,
			"timezone": coach.Studio.Timezone,
		},
	})
}
