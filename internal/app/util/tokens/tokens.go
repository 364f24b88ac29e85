// Package tokens gives a rough, advisory estimate of how much of a prompt
// the transcription service will actually read. The service considers only
// the trailing 224 tokens of the prompt and drops the rest silently; nothing
// here enforces that window, it only helps callers warn about it.
package tokens

import "strings"

// PromptTokenWindow is the trailing slice of prompt tokens the transcription
// model considers.
const PromptTokenWindow = 224

// charsPerToken approximates the service tokenizer for English text. The
// estimate errs low so ExceedsWindow stays quiet near the boundary rather
// than crying wolf.
const charsPerToken = 4

// Estimate returns an approximate token count for the text. It is a
// heuristic, not the service tokenizer.
func Estimate(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	// Average of the character-based and word-based approximations; either
	// alone drifts badly on unusually long or short words.
	byChars := (len(text) + charsPerToken - 1) / charsPerToken
	byWords := len(strings.Fields(text)) * 4 / 3
	return (byChars + byWords) / 2
}

// ExceedsWindow reports whether the prompt likely exceeds the trailing
// window, meaning its leading portion would be ignored by the service.
func ExceedsWindow(prompt string) bool {
	return Estimate(prompt) > PromptTokenWindow
}
