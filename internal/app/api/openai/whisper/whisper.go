package whisper

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// RemoteTranscriber implements prompted transcription against the OpenAI
// audio API.
type RemoteTranscriber struct {
	client *openai.Client
	model  string
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client) *RemoteTranscriber {
	return &RemoteTranscriber{client: client, model: openai.Whisper1}
}

// Transcript sends the audio file and prompt to the transcription endpoint
// and returns the plain transcript text. The prompt is forwarded verbatim;
// the service keeps only its trailing 224 tokens, so no local truncation is
// attempted here.
func (rt *RemoteTranscriber) Transcript(inputFilePath string, prompt string) (string, error) {
	ctx := context.Background()

	req := openai.AudioRequest{
		Model:    rt.model,
		FilePath: inputFilePath,
		Prompt:   prompt,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("createTranscription failed: %w", err)
	}

	return resp.Text, nil
}
