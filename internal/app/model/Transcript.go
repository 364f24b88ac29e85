package model

import "time"

// Transcript is one recorded transcription run: which audio file was sent,
// which prompt steered it, and what came back.
type Transcript struct {
	ID            int
	FileName      string
	FilePath      string
	Prompt        string
	PromptSource  string
	Instruction   string
	Transcript    string
	AudioDuration float64
	CreatedAt     time.Time
	ErrorMessage  string
}
