package routes

import (
	"github.com/gin-gonic/gin"

	"whisper-prompting/internal/api/middleware"
	"whisper-prompting/internal/api/v1/handlers"
	"whisper-prompting/internal/api/v1/services"
)

// ServiceContainer bundles the services the v1 routes depend on.
type ServiceContainer struct {
	TranscriptionService *services.TranscriptionService
	PromptService        *services.PromptService
	ExportService        *services.ExportService
}

// RegisterRoutes registers all v1 API routes.
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	router.Use(middleware.RequestID())

	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService)
	transcriptions := router.Group("/transcriptions")
	{
		transcriptions.POST("", transcriptionHandler.Create)
		transcriptions.GET("/:id", transcriptionHandler.Get)
		transcriptions.GET("", transcriptionHandler.List)
	}

	promptHandler := handlers.NewPromptHandler(container.PromptService)
	prompts := router.Group("/prompts")
	{
		prompts.POST("/generate", promptHandler.Generate)
	}
	router.GET("/presets", promptHandler.Presets)

	if container.ExportService != nil {
		exportHandler := handlers.NewExportHandler(container.ExportService)
		router.GET("/export", exportHandler.Export)
	}
}
