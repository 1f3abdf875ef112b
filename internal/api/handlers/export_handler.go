package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"crisis-supply-api-server/internal/s3"
	"crisis-supply-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	Store    *store.Store
	Uploader *s3.Uploader
}

// ExportRequests serializes the current request list and uploads it to S3
// as a timestamped archive.
func (h *ExportHandler) ExportRequests(c *gin.Context) {
	if h.Uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "S3 export is not configured"})
		return
	}

	snapshot := h.Store.Snapshot()
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize requests"})
		return
	}

	objectKey := fmt.Sprintf("exports/requests-%s.json", time.Now().Format("20060102-150405"))
	url, err := h.Uploader.UploadJSON(c.Request.Context(), objectKey, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload archive", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":   url,
		"count": len(snapshot),
	})
}
