package handlers

import (
	"os"

	"github.com/gin-gonic/gin"

	"whisper-prompting/internal/api/middleware"
	"whisper-prompting/internal/api/v1/services"
)

// ExportHandler serves transcript history downloads.
type ExportHandler struct {
	service *services.ExportService
}

func NewExportHandler(service *services.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Export handles GET /api/v1/export, returning an xlsx attachment.
func (h *ExportHandler) Export(c *gin.Context) {
	path, err := h.service.ExportXLSX(c.Request.Context(), 0)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	defer os.Remove(path)

	c.FileAttachment(path, "transcripts.xlsx")
}
