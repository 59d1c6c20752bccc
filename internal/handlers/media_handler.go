package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitreni/coach-scheduler/internal/media"
)

// 10 MiB is enough for any photo a coach uploads.
const maxUploadBytes = 10 << 20

type MediaHandler struct {
	uploader *media.Uploader
}

func NewMediaHandler(uploader *media.Uploader) *MediaHandler {
	return &MediaHandler{uploader: uploader}
}

// Upload accepts a multipart image, converts it to webp and stores
// it in the media bucket. Responds with the public URL.
func (h *MediaHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "media_storage_disabled"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_file"})
		return
	}

	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_too_large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_read_file"})
		return
	}
	defer f.Close()

	url, err := h.uploader.Upload(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_upload"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
