package repository

import "whisper-prompting/internal/app/model"

// TranscriptDAO persists transcription runs, including the prompt that
// steered each one.
type TranscriptDAO interface {
	Close() error

	// Record stores one run and returns its id. Failed runs are stored too,
	// with ErrorMessage set and an empty transcript.
	Record(t model.Transcript) (int64, error)

	GetByID(id int) (model.Transcript, error)

	// List returns the most recent runs, newest first. limit <= 0 means all.
	List(limit int) ([]model.Transcript, error)

	// CheckIfFileProcessed returns the id of a previous successful run for
	// the file name, or an error when none exists.
	CheckIfFileProcessed(fileName string) (int, error)
}
