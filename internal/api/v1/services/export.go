package services

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"whisper-prompting/internal/api/errors"
	"whisper-prompting/internal/app/prompter/export"
	"whisper-prompting/internal/app/repository"
)

// ExportService builds xlsx exports of recorded runs.
type ExportService struct {
	dao repository.TranscriptDAO
}

func NewExportService(dao repository.TranscriptDAO) *ExportService {
	return &ExportService{dao: dao}
}

// ExportXLSX writes the transcript history to a temp workbook and returns
// its path. The caller serves and then removes the file.
func (s *ExportService) ExportXLSX(_ context.Context, limit int) (string, error) {
	records, err := s.dao.List(limit)
	if err != nil {
		return "", errors.NewInternalError(err.Error())
	}

	path := filepath.Join(os.TempDir(), "transcripts_"+uuid.New().String()[:8]+".xlsx")
	if err := export.ToExcel(records, path); err != nil {
		return "", errors.NewInternalError(err.Error())
	}
	return path, nil
}
