package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fitreni/coach-scheduler/internal/middleware"
	"github.com/fitreni/coach-scheduler/internal/models"
)

type ContentHandler struct {
	db *gorm.DB
}

func NewContentHandler(db *gorm.DB) *ContentHandler {
	return &ContentHandler{db: db}
}

type UpsertContentRequest struct {
	Key    string `json:"key" binding:"required"`
	Locale string `json:"locale" binding:"required,oneof=hu en es"`
	Body   string `json:"body" binding:"required"`
}

func (h *ContentHandler) List(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	q := h.db.Where("studio_id = ?", studioID)

	if locale := c.Query("locale"); locale != "" {
		q = q.Where("locale = ?", locale)
	}

	var blocks []models.ContentBlock
	if err := q.Order("key ASC, locale ASC").Find(&blocks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_content"})
		return
	}

	c.JSON(http.StatusOK, blocks)
}

// Upsert replaces the block body for a key+locale pair, creating
// it on first write.
func (h *ContentHandler) Upsert(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var req UpsertContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	block := models.ContentBlock{
		StudioID: studioID,
		Key:      req.Key,
		Locale:   req.Locale,
		Body:     req.Body,
	}

	if err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}, {Name: "locale"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(&block).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_content"})
		return
	}

	c.JSON(http.StatusOK, block)
}

func (h *ContentHandler) Delete(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)
	id := c.Param("id")

	res := h.db.Where("id = ? AND studio_id = ?", id, studioID).Delete(&models.ContentBlock{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_content"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "content_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
