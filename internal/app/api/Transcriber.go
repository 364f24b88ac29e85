package api

// Transcriber converts an audio file to text. The prompt seeds the
// transcription model's style and spelling; it may be empty for a baseline
// run. Only the trailing token window of the prompt is honored by the
// service, and any truncation happens remotely and silently.
type Transcriber interface {
	Transcript(inputFilePath string, prompt string) (string, error)
}
