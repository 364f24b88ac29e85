package handlers_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whisper-prompting/internal/api/middleware"
	"whisper-prompting/internal/api/v1/routes"
	"whisper-prompting/internal/api/v1/services"
	appconfig "whisper-prompting/internal/app/config"
	"whisper-prompting/internal/app/model"
	"whisper-prompting/internal/app/prompter"
)

type fakeTranscriber struct {
	gotPrompt string
	text      string
	err       error
}

func (f *fakeTranscriber) Transcript(_ string, prompt string) (string, error) {
	f.gotPrompt = prompt
	return f.text, f.err
}

type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) Generate(context.Context, string) (string, error) {
	return f.text, f.err
}

func (f *fakeGenerator) Provider() string { return "fake" }

type memoryDAO struct {
	records []model.Transcript
}

func (m *memoryDAO) Close() error { return nil }

func (m *memoryDAO) Record(t model.Transcript) (int64, error) {
	t.ID = len(m.records) + 1
	m.records = append(m.records, t)
	return int64(t.ID), nil
}

func (m *memoryDAO) GetByID(id int) (model.Transcript, error) {
	for _, t := range m.records {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Transcript{}, sql.ErrNoRows
}

func (m *memoryDAO) List(limit int) ([]model.Transcript, error) {
	out := make([]model.Transcript, len(m.records))
	copy(out, m.records)
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryDAO) CheckIfFileProcessed(string) (int, error) {
	return 0, sql.ErrNoRows
}

func newTestRouter(t *testing.T, transcriber *fakeTranscriber, generator *fakeGenerator) (*gin.Engine, *memoryDAO) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dao := &memoryDAO{}
	presets := appconfig.DefaultPresets()
	p := prompter.NewPrompter(transcriber, generator, presets, dao, nil)

	storage, err := services.NewLocalStorageService(t.TempDir())
	require.NoError(t, err)

	container := &routes.ServiceContainer{
		TranscriptionService: services.NewTranscriptionService(p, storage, dao),
		PromptService:        services.NewPromptService(p, presets),
		ExportService:        services.NewExportService(dao),
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	router := gin.New()
	router.Use(middleware.ErrorHandler(logger))
	v1 := router.Group("/api/v1")
	routes.RegisterRoutes(v1, container)
	return router, dao
}

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", "sample.wav")
	require.NoError(t, err)
	_, err = part.Write([]byte("RIFF fake wav payload"))
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestCreateTranscription_LiteralPrompt(t *testing.T) {
	transcriber := &fakeTranscriber{text: "Welcome to Quirk, Quid, Quill, Inc."}
	router, dao := newTestRouter(t, transcriber, &fakeGenerator{})

	body, contentType := multipartBody(t, map[string]string{"prompt": "Quirk, Quid, Quill, Inc."})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Welcome to Quirk, Quid, Quill, Inc.", resp["transcript"])
	assert.Equal(t, "literal", resp["prompt_source"])
	assert.Equal(t, "Quirk, Quid, Quill, Inc.", transcriber.gotPrompt)
	require.Len(t, dao.records, 1)
}

func TestCreateTranscription_PresetPrompt(t *testing.T) {
	transcriber := &fakeTranscriber{text: "text"}
	router, _ := newTestRouter(t, transcriber, &fakeGenerator{})

	body, contentType := multipartBody(t, map[string]string{"preset": "lowercase"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "hi there and welcome to the show.", transcriber.gotPrompt)
}

func TestCreateTranscription_RejectsConflictingPromptFields(t *testing.T) {
	router, _ := newTestRouter(t, &fakeTranscriber{}, &fakeGenerator{})

	body, contentType := multipartBody(t, map[string]string{
		"prompt": "x",
		"preset": "lowercase",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateTranscription_MissingFile(t *testing.T) {
	router, _ := newTestRouter(t, &fakeTranscriber{}, &fakeGenerator{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", bytes.NewBufferString("prompt=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTranscription_UpstreamFailure(t *testing.T) {
	transcriber := &fakeTranscriber{err: errors.New("429 rate limited")}
	router, dao := newTestRouter(t, transcriber, &fakeGenerator{})

	body, contentType := multipartBody(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	// The upstream error text passes through unmodified.
	assert.Contains(t, w.Body.String(), "429 rate limited")
	require.Len(t, dao.records, 1)
	assert.Contains(t, dao.records[0].ErrorMessage, "429 rate limited")
}

func TestGetTranscription(t *testing.T) {
	transcriber := &fakeTranscriber{text: "hello"}
	router, _ := newTestRouter(t, transcriber, &fakeGenerator{})

	body, contentType := multipartBody(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/transcriptions/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/transcriptions/999", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/transcriptions/abc", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeneratePrompt(t *testing.T) {
	generator := &fakeGenerator{text: "oh wow remember that lobster shack in maine"}
	router, _ := newTestRouter(t, &fakeTranscriber{}, generator)

	payload := bytes.NewBufferString(`{"instruction": "Write in all lowercase."}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/prompts/generate", payload)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, generator.text, resp["prompt"])
	assert.EqualValues(t, 224, resp["window_tokens"])
	assert.Equal(t, false, resp["exceeds_window"])
}

func TestGeneratePrompt_MissingInstruction(t *testing.T) {
	router, _ := newTestRouter(t, &fakeTranscriber{}, &fakeGenerator{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/prompts/generate", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestListPresets(t *testing.T) {
	router, _ := newTestRouter(t, &fakeTranscriber{}, &fakeGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/presets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp)
}

func TestRequestIDEchoedAndHonored(t *testing.T) {
	router, _ := newTestRouter(t, &fakeTranscriber{}, &fakeGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/presets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/presets", nil)
	req.Header.Set(middleware.RequestIDHeader, "trace-me-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "trace-me-123", w.Header().Get(middleware.RequestIDHeader))
}

func TestListTranscriptions_LimitValidation(t *testing.T) {
	router, _ := newTestRouter(t, &fakeTranscriber{}, &fakeGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transcriptions?limit=0", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/transcriptions?limit=10", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
