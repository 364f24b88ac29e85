package dto

// GeneratePromptRequest asks the fictitious prompt generator for seed text.
type GeneratePromptRequest struct {
	Instruction string `json:"instruction" binding:"required,min=1,max=2000"`
}

// GeneratePromptResponse carries the generated prompt along with an advisory
// token estimate against the service's trailing window.
type GeneratePromptResponse struct {
	Prompt          string `json:"prompt"`
	EstimatedTokens int    `json:"estimated_tokens"`
	WindowTokens    int    `json:"window_tokens"`
	ExceedsWindow   bool   `json:"exceeds_window"`
}

// PresetResponse is one entry of the presets listing.
type PresetResponse struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Prompt      string `json:"prompt"`
}
