package whisper

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *openai.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-token")
	config.BaseURL = server.URL + "/v1"
	return openai.NewClientWithConfig(config)
}

func writeTestAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF fake wav payload"), 0o644))
	return path
}

// The transcript content itself is service-defined and probabilistic, so the
// tests assert only on request construction: the prompt and model must reach
// the wire unmodified.
func TestRemoteTranscriber_PassesPromptThrough(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
	}{
		{name: "empty prompt for baseline run", prompt: ""},
		{name: "glossary prompt", prompt: "Quirk, Quid, Quill, Inc., P1, P2, O3OMo"},
		{name: "lowercase style prompt", prompt: "hi there and welcome to the show."},
		{
			name: "prompt longer than the service window",
			prompt: strings.Repeat("the quick brown fox jumped over the lazy dog ", 80),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotModel, gotPrompt string
			var gotFile bool

			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")
				require.NoError(t, r.ParseMultipartForm(32<<20))

				gotModel = r.FormValue("model")
				gotPrompt = r.FormValue("prompt")
				if file, _, err := r.FormFile("file"); err == nil {
					gotFile = true
					file.Close()
				}

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"text": "transcribed text"}`))
			})

			transcriber := NewRemoteTranscriber(client)
			text, err := transcriber.Transcript(writeTestAudio(t), tt.prompt)

			require.NoError(t, err)
			assert.Equal(t, "transcribed text", text)
			assert.Equal(t, "whisper-1", gotModel)
			// No local truncation: even an over-window prompt goes out whole.
			assert.Equal(t, tt.prompt, gotPrompt)
			assert.True(t, gotFile)
		})
	}
}

func TestRemoteTranscriber_SurfacesServiceErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantInErr string
	}{
		{
			name:      "unauthorized",
			status:    http.StatusUnauthorized,
			body:      `{"error": {"message": "Invalid API key", "type": "invalid_request_error"}}`,
			wantInErr: "401",
		},
		{
			name:      "rate limited",
			status:    http.StatusTooManyRequests,
			body:      `{"error": {"message": "Rate limit exceeded", "type": "rate_limit_error"}}`,
			wantInErr: "429",
		},
		{
			name:      "server error",
			status:    http.StatusInternalServerError,
			body:      `{"error": {"message": "Internal server error", "type": "server_error"}}`,
			wantInErr: "500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			transcriber := NewRemoteTranscriber(client)
			_, err := transcriber.Transcript(writeTestAudio(t), "")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantInErr)
		})
	}
}

func TestRemoteTranscriber_UnreadableFile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an unreadable file")
	})

	transcriber := NewRemoteTranscriber(client)
	_, err := transcriber.Transcript(filepath.Join(t.TempDir(), "missing.wav"), "prompt")
	require.Error(t, err)
}
