package prompter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"whisper-prompting/internal/app/api"
	appconfig "whisper-prompting/internal/app/config"
	"whisper-prompting/internal/app/model"
	"whisper-prompting/internal/app/observability"
	"whisper-prompting/internal/app/repository"
	"whisper-prompting/internal/app/util/tokens"
)

// Prompter drives the two-step workflow: optionally generate a fictitious
// prompt from an instruction, then feed prompt plus audio to the
// transcription service. Each run is recorded to the transcript store.
type Prompter struct {
	transcriber api.Transcriber
	generator   api.PromptGenerator
	presets     *appconfig.PresetConfig
	db          repository.TranscriptDAO
	logger      *zap.Logger
}

func NewPrompter(transcriber api.Transcriber, generator api.PromptGenerator,
	presets *appconfig.PresetConfig, dao repository.TranscriptDAO, logger *zap.Logger) *Prompter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Prompter{
		transcriber: transcriber,
		generator:   generator,
		presets:     presets,
		db:          dao,
		logger:      logger,
	}
}

func (p *Prompter) Close() error {
	return p.db.Close()
}

// Store exposes the transcript store so callers hosting additional surfaces
// (the HTTP API) can query history through the same connection.
func (p *Prompter) Store() repository.TranscriptDAO {
	return p.db
}

// GeneratePrompt runs the fictitious prompt generator for the instruction.
func (p *Prompter) GeneratePrompt(ctx context.Context, instruction string) (string, error) {
	text, err := p.generator.Generate(ctx, instruction)
	observability.PromptGenerationsTotal.WithLabelValues(p.generator.Provider(), observability.StatusLabel(err)).Inc()
	if err != nil {
		return "", err
	}
	return text, nil
}

// ResolvePrompt turns a PromptSpec into concrete prompt text. Generated
// specs call the generator; preset specs are looked up in the presets file.
func (p *Prompter) ResolvePrompt(ctx context.Context, spec model.PromptSpec) (string, error) {
	switch spec.Source {
	case model.PromptSourceNone, "":
		return "", nil
	case model.PromptSourceLiteral:
		return spec.Text, nil
	case model.PromptSourcePreset:
		preset, ok := p.presets.Get(spec.Preset)
		if !ok {
			return "", fmt.Errorf("unknown preset %q (available: %v)", spec.Preset, p.presets.Names())
		}
		return preset.Prompt, nil
	case model.PromptSourceGenerated:
		return p.GeneratePrompt(ctx, spec.Instruction)
	default:
		return "", fmt.Errorf("unknown prompt source %q", spec.Source)
	}
}

// Transcribe resolves the prompt, issues a single blocking transcription
// call, and records the outcome. The returned Transcript carries the
// recorded row id.
func (p *Prompter) Transcribe(ctx context.Context, filePath string, spec model.PromptSpec) (model.Transcript, error) {
	record := model.Transcript{
		FileName:     filepath.Base(filePath),
		FilePath:     filePath,
		PromptSource: string(spec.Source),
		Instruction:  spec.Instruction,
		CreatedAt:    time.Now().UTC(),
	}
	if record.PromptSource == "" {
		record.PromptSource = string(model.PromptSourceNone)
	}

	prompt, err := p.ResolvePrompt(ctx, spec)
	if err != nil {
		record.ErrorMessage = fmt.Sprintf("prompt resolution failed: %v", err)
		p.record(&record)
		return record, fmt.Errorf("prompt resolution failed: %w", err)
	}
	record.Prompt = prompt

	if tokens.ExceedsWindow(prompt) {
		observability.PromptWindowWarnings.Inc()
		p.logger.Warn("prompt likely exceeds the trailing token window; its leading portion will be ignored by the service",
			zap.Int("estimated_tokens", tokens.Estimate(prompt)),
			zap.Int("window", tokens.PromptTokenWindow))
	}

	start := time.Now()
	text, err := p.transcriber.Transcript(filePath, prompt)
	observability.TranscriptionSeconds.Observe(time.Since(start).Seconds())
	observability.TranscriptionsTotal.WithLabelValues(observability.StatusLabel(err), record.PromptSource).Inc()
	if err != nil {
		record.ErrorMessage = fmt.Sprintf("transcription error: %v", err)
		p.record(&record)
		return record, fmt.Errorf("transcription error: %w", err)
	}

	record.Transcript = text
	p.record(&record)

	p.logger.Info("transcription completed",
		zap.String("file", record.FileName),
		zap.String("prompt_source", record.PromptSource))
	return record, nil
}

// AlreadyProcessed reports whether a successful run exists for the file name.
func (p *Prompter) AlreadyProcessed(fileName string) (int, bool) {
	id, err := p.db.CheckIfFileProcessed(fileName)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			p.logger.Warn("processed-check failed", zap.String("file", fileName), zap.Error(err))
		}
		return 0, false
	}
	return id, true
}

// History returns the most recent recorded runs.
func (p *Prompter) History(limit int) ([]model.Transcript, error) {
	return p.db.List(limit)
}

func (p *Prompter) record(t *model.Transcript) {
	id, err := p.db.Record(*t)
	if err != nil {
		p.logger.Error("failed to record transcript", zap.String("file", t.FileName), zap.Error(err))
		return
	}
	t.ID = int(id)
}
