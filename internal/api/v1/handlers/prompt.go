package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"whisper-prompting/internal/api/middleware"
	"whisper-prompting/internal/api/v1/dto"
	"whisper-prompting/internal/api/v1/services"
)

// PromptHandler serves prompt generation and preset lookup.
type PromptHandler struct {
	service *services.PromptService
}

func NewPromptHandler(service *services.PromptService) *PromptHandler {
	return &PromptHandler{service: service}
}

// Generate handles POST /api/v1/prompts/generate.
func (h *PromptHandler) Generate(c *gin.Context) {
	var req dto.GeneratePromptRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Presets handles GET /api/v1/presets.
func (h *PromptHandler) Presets(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Presets(c.Request.Context()))
}
