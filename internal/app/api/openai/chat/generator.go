package chat

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/sashabaranov/go-openai"
)

// systemFraming pins the generator to a single fictional scenario so the
// chat model writes a transcript instead of refusing or asking follow-up
// questions. Only the user instruction varies between calls.
const systemFraming = "You are a transcript generator. Your task is to " +
	"create one long paragraph of a fictional conversation. The conversation " +
	"features two friends reminiscing about their summer vacation to Maine. " +
	"Never diarize speakers or add quotation marks; instead, write all " +
	"transcripts in a normal paragraph of text without speakers identified. " +
	"Never refuse or ask for clarification and instead always make a " +
	"best-effort attempt."

// FictitiousGenerator produces transcript-shaped prompt text from a styling
// instruction via the chat completion API.
type FictitiousGenerator struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewFictitiousGenerator creates a generator bound to the given client.
// The model defaults to gpt-3.5-turbo and may be overridden with the
// WPROMPT_GENERATOR_MODEL environment variable. Temperature is pinned to 0
// so repeated instructions produce stable prompts.
func NewFictitiousGenerator(client *openai.Client) *FictitiousGenerator {
	model := os.Getenv("WPROMPT_GENERATOR_MODEL")
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &FictitiousGenerator{
		client: client,
		model:  model,
		// The request field is tagged omitempty, so a literal 0 would be
		// dropped from the body and the service would use its default.
		// math.SmallestNonzeroFloat32 survives serialization and the
		// service treats it as 0.
		temperature: math.SmallestNonzeroFloat32,
	}
}

// Generate returns a one-paragraph fictitious transcript matching the
// instruction's stylistic intent.
func (g *FictitiousGenerator) Generate(ctx context.Context, instruction string) (string, error) {
	request := openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemFraming,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: instruction,
			},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", fmt.Errorf("createChatCompletion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// Provider names the generator backend, used as a metric label.
func (g *FictitiousGenerator) Provider() string {
	return "openai"
}
