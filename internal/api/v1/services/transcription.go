package services

import (
	"context"
	"database/sql"
	stderrors "errors"
	"mime/multipart"

	"whisper-prompting/internal/api/errors"
	"whisper-prompting/internal/api/v1/dto"
	"whisper-prompting/internal/app/model"
	"whisper-prompting/internal/app/prompter"
	"whisper-prompting/internal/app/repository"
)

// TranscriptionService exposes prompted transcription to the HTTP layer.
type TranscriptionService struct {
	prompter *prompter.Prompter
	storage  StorageService
	dao      repository.TranscriptDAO
}

func NewTranscriptionService(p *prompter.Prompter, storage StorageService, dao repository.TranscriptDAO) *TranscriptionService {
	return &TranscriptionService{prompter: p, storage: storage, dao: dao}
}

// TranscribeUpload lands the uploaded audio locally and runs one prompted
// transcription. Upstream failures are recorded and surfaced unmodified.
func (s *TranscriptionService) TranscribeUpload(ctx context.Context, file multipart.File,
	header *multipart.FileHeader, spec model.PromptSpec) (dto.TranscriptionResponse, error) {

	localPath, err := s.storage.SaveUpload(ctx, file, header)
	if err != nil {
		return dto.TranscriptionResponse{}, errors.NewInternalError(err.Error())
	}

	record, err := s.prompter.Transcribe(ctx, localPath, spec)
	if err != nil {
		return dto.FromTranscript(record), errors.NewUpstreamError(err)
	}
	return dto.FromTranscript(record), nil
}

// Get returns one recorded run by id.
func (s *TranscriptionService) Get(_ context.Context, id int) (dto.TranscriptionResponse, error) {
	record, err := s.dao.GetByID(id)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return dto.TranscriptionResponse{}, errors.NewNotFoundError("transcription")
		}
		return dto.TranscriptionResponse{}, errors.NewInternalError(err.Error())
	}
	return dto.FromTranscript(record), nil
}

// List returns recent runs, newest first.
func (s *TranscriptionService) List(_ context.Context, limit int) ([]dto.TranscriptionResponse, error) {
	records, err := s.dao.List(limit)
	if err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	responses := make([]dto.TranscriptionResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, dto.FromTranscript(r))
	}
	return responses, nil
}
