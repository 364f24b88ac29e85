package gemini

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

// systemFraming mirrors the OpenAI generator's fixed scenario so the two
// providers are interchangeable from the caller's point of view.
const systemFraming = "You are a transcript generator. Your task is to " +
	"create one long paragraph of a fictional conversation. The conversation " +
	"features two friends reminiscing about their summer vacation to Maine. " +
	"Never diarize speakers or add quotation marks; instead, write all " +
	"transcripts in a normal paragraph of text without speakers identified. " +
	"Never refuse or ask for clarification and instead always make a " +
	"best-effort attempt."

const defaultModel = "gemini-2.0-flash"

// FictitiousGenerator produces fictitious transcript prompts through the
// Gemini API. Used when GEMINI_API_KEY is configured and the generator
// provider is set to gemini.
type FictitiousGenerator struct {
	client *genai.Client
	model  string
}

// NewFictitiousGenerator creates a Gemini-backed generator. GEMINI_API_KEY
// must be set in the environment.
func NewFictitiousGenerator(ctx context.Context) (*FictitiousGenerator, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client failed: %w", err)
	}

	model := os.Getenv("WPROMPT_GENERATOR_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &FictitiousGenerator{client: client, model: model}, nil
}

// Generate returns a one-paragraph fictitious transcript matching the
// instruction's stylistic intent.
func (g *FictitiousGenerator) Generate(ctx context.Context, instruction string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemFraming, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(instruction), config)
	if err != nil {
		return "", fmt.Errorf("generateContent failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}

// Provider names the generator backend, used as a metric label.
func (g *FictitiousGenerator) Provider() string {
	return "gemini"
}
