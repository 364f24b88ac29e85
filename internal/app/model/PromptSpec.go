package model

// PromptSource identifies where a transcription prompt came from.
type PromptSource string

const (
	// PromptSourceNone means baseline transcription with no prompt.
	PromptSourceNone PromptSource = "none"
	// PromptSourceLiteral is a prompt passed verbatim by the caller.
	PromptSourceLiteral PromptSource = "literal"
	// PromptSourcePreset is a named prompt from the presets file.
	PromptSourcePreset PromptSource = "preset"
	// PromptSourceGenerated is a fictitious prompt produced by a chat model
	// from a styling instruction.
	PromptSourceGenerated PromptSource = "generated"
)

// PromptSpec describes how to obtain the prompt for a transcription call.
// Exactly one of Text, Preset or Instruction is meaningful, selected by Source.
type PromptSpec struct {
	Source      PromptSource
	Text        string
	Preset      string
	Instruction string
}

// LiteralPrompt builds a spec for a verbatim prompt. An empty string yields
// a baseline (unprompted) spec.
func LiteralPrompt(text string) PromptSpec {
	if text == "" {
		return PromptSpec{Source: PromptSourceNone}
	}
	return PromptSpec{Source: PromptSourceLiteral, Text: text}
}

// PresetPrompt builds a spec referencing a named preset.
func PresetPrompt(name string) PromptSpec {
	return PromptSpec{Source: PromptSourcePreset, Preset: name}
}

// GeneratedPrompt builds a spec whose prompt text is produced on demand by
// the fictitious prompt generator.
func GeneratedPrompt(instruction string) PromptSpec {
	return PromptSpec{Source: PromptSourceGenerated, Instruction: instruction}
}
