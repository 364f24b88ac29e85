package api

import "context"

// PromptGenerator produces a fictitious transcript from a free-form styling
// instruction. The result is meant to be fed back into a Transcriber as the
// prompt argument.
type PromptGenerator interface {
	Generate(ctx context.Context, instruction string) (string, error)
	// Provider names the backend (openai, gemini), used as a metric label.
	Provider() string
}
