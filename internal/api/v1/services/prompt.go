package services

import (
	"context"

	"whisper-prompting/internal/api/errors"
	"whisper-prompting/internal/api/v1/dto"
	appconfig "whisper-prompting/internal/app/config"
	"whisper-prompting/internal/app/prompter"
	"whisper-prompting/internal/app/util/tokens"
)

// PromptService exposes fictitious prompt generation and preset lookup.
type PromptService struct {
	prompter *prompter.Prompter
	presets  *appconfig.PresetConfig
}

func NewPromptService(p *prompter.Prompter, presets *appconfig.PresetConfig) *PromptService {
	return &PromptService{prompter: p, presets: presets}
}

// Generate runs the fictitious prompt generator and annotates the result
// with the advisory token estimate.
func (s *PromptService) Generate(ctx context.Context, req dto.GeneratePromptRequest) (dto.GeneratePromptResponse, error) {
	text, err := s.prompter.GeneratePrompt(ctx, req.Instruction)
	if err != nil {
		return dto.GeneratePromptResponse{}, errors.NewUpstreamError(err)
	}

	return dto.GeneratePromptResponse{
		Prompt:          text,
		EstimatedTokens: tokens.Estimate(text),
		WindowTokens:    tokens.PromptTokenWindow,
		ExceedsWindow:   tokens.ExceedsWindow(text),
	}, nil
}

// Presets lists the configured prompt presets.
func (s *PromptService) Presets(_ context.Context) []dto.PresetResponse {
	out := make([]dto.PresetResponse, 0, len(s.presets.Presets))
	for _, p := range s.presets.Presets {
		out = append(out, dto.PresetResponse{
			Name:        p.Name,
			Description: p.Description,
			Prompt:      p.Prompt,
		})
	}
	return out
}
