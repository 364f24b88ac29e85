package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"whisper-prompting/internal/api/errors"
	"whisper-prompting/internal/api/middleware"
	"whisper-prompting/internal/api/v1/dto"
	"whisper-prompting/internal/api/v1/services"
)

// TranscriptionHandler serves the prompted transcription endpoints.
type TranscriptionHandler struct {
	service *services.TranscriptionService
}

func NewTranscriptionHandler(service *services.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{service: service}
}

// Create handles POST /api/v1/transcriptions: multipart audio upload with
// optional prompt, preset or instruction fields.
func (h *TranscriptionHandler) Create(c *gin.Context) {
	var form dto.CreateTranscriptionForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("invalid form fields"))
		return
	}
	if err := form.Validate(); err != nil {
		middleware.HandleError(c, err)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("audio file is required (multipart field 'file')"))
		return
	}
	defer file.Close()

	response, err := h.service.TranscribeUpload(c.Request.Context(), file, header, form.Spec())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Get handles GET /api/v1/transcriptions/:id.
func (h *TranscriptionHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("invalid transcription id"))
		return
	}

	response, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// List handles GET /api/v1/transcriptions.
func (h *TranscriptionHandler) List(c *gin.Context) {
	var query dto.ListTranscriptionsQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	responses, err := h.service.List(c.Request.Context(), query.Limit)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(len(responses)))
	c.JSON(http.StatusOK, responses)
}
