package dto

import (
	"time"

	"whisper-prompting/internal/api/errors"
	"whisper-prompting/internal/app/model"
)

// CreateTranscriptionForm is the multipart form accompanying an audio
// upload. At most one prompt mechanism may be supplied; all absent means a
// baseline (unprompted) transcription.
type CreateTranscriptionForm struct {
	Prompt      string `form:"prompt"`
	Preset      string `form:"preset"`
	Instruction string `form:"instruction"`
}

// Validate enforces the one-mechanism rule.
func (f *CreateTranscriptionForm) Validate() error {
	set := 0
	for _, v := range []string{f.Prompt, f.Preset, f.Instruction} {
		if v != "" {
			set++
		}
	}
	if set > 1 {
		return errors.NewValidationError("Validation failed", map[string]string{
			"prompt": "supply at most one of prompt, preset, instruction",
		})
	}
	return nil
}

// Spec converts the form to the orchestrator's prompt spec.
func (f *CreateTranscriptionForm) Spec() model.PromptSpec {
	switch {
	case f.Preset != "":
		return model.PresetPrompt(f.Preset)
	case f.Instruction != "":
		return model.GeneratedPrompt(f.Instruction)
	default:
		return model.LiteralPrompt(f.Prompt)
	}
}

// TranscriptionResponse is the API view of one recorded run.
type TranscriptionResponse struct {
	ID            int       `json:"id"`
	FileName      string    `json:"file_name"`
	Prompt        string    `json:"prompt,omitempty"`
	PromptSource  string    `json:"prompt_source"`
	Instruction   string    `json:"instruction,omitempty"`
	Transcript    string    `json:"transcript"`
	AudioDuration float64   `json:"audio_duration,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Error         string    `json:"error,omitempty"`
}

// ListTranscriptionsQuery bounds history listing.
type ListTranscriptionsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}

// FromTranscript maps the storage model to the response shape.
func FromTranscript(t model.Transcript) TranscriptionResponse {
	return TranscriptionResponse{
		ID:            t.ID,
		FileName:      t.FileName,
		Prompt:        t.Prompt,
		PromptSource:  t.PromptSource,
		Instruction:   t.Instruction,
		Transcript:    t.Transcript,
		AudioDuration: t.AudioDuration,
		CreatedAt:     t.CreatedAt,
		Error:         t.ErrorMessage,
	}
}
