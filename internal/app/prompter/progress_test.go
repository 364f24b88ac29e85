package prompter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "whisper-prompting/internal/app/config"
	"whisper-prompting/internal/app/model"
)

// syncTranscriber and syncDAO guard their state with a mutex because
// TranscribeDir runs files concurrently.
type syncTranscriber struct {
	mu    sync.Mutex
	files []string
	fail  map[string]bool
}

func (s *syncTranscriber) Transcript(inputFilePath string, _ string) (string, error) {
	name := filepath.Base(inputFilePath)
	s.mu.Lock()
	s.files = append(s.files, name)
	shouldFail := s.fail[name]
	s.mu.Unlock()

	if shouldFail {
		return "", errors.New("transient service failure")
	}
	return "batch text", nil
}

type syncDAO struct {
	mu sync.Mutex
	memoryDAO
}

func (s *syncDAO) Record(t model.Transcript) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.memoryDAO.Record(t)
}

func (s *syncDAO) CheckIfFileProcessed(fileName string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.memoryDAO.CheckIfFileProcessed(fileName)
}

func writeAudioFile(t *testing.T, dir, name string, mtime time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestTranscribeDir_SkipsProcessedAndHonorsLimit(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	writeAudioFile(t, dir, "a.wav", base)
	writeAudioFile(t, dir, "b.wav", base.Add(time.Minute))
	writeAudioFile(t, dir, "c.wav", base.Add(2*time.Minute))
	writeAudioFile(t, dir, "d.wav", base.Add(3*time.Minute))
	// Non-audio files are ignored entirely.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	transcriber := &syncTranscriber{}
	dao := &syncDAO{}
	dao.records = append(dao.records, model.Transcript{ID: 1, FileName: "b.wav", Transcript: "done"})

	p := NewPrompter(transcriber, &fakeGenerator{}, appconfig.DefaultPresets(), dao, nil)
	bp := NewBatchPrompter(p, ProgressConfig{Enabled: false})

	err := bp.TranscribeDir(context.Background(), dir, model.LiteralPrompt("seed"), 2, 2)
	require.NoError(t, err)

	// b.wav already has a successful record; the limit stops after the
	// next two oldest files, leaving d.wav untouched.
	assert.ElementsMatch(t, []string{"a.wav", "c.wav"}, transcriber.files)
	assert.Len(t, dao.records, 3)
}

func TestTranscribeDir_FailureDoesNotAbortBatch(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	writeAudioFile(t, dir, "first.wav", base)
	writeAudioFile(t, dir, "second.wav", base.Add(time.Minute))

	transcriber := &syncTranscriber{fail: map[string]bool{"first.wav": true}}
	dao := &syncDAO{}
	p := NewPrompter(transcriber, &fakeGenerator{}, appconfig.DefaultPresets(), dao, nil)
	bp := NewBatchPrompter(p, ProgressConfig{Enabled: false})

	err := bp.TranscribeDir(context.Background(), dir, model.LiteralPrompt(""), 0, 1)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"first.wav", "second.wav"}, transcriber.files)

	var failed, succeeded int
	for _, r := range dao.records {
		if r.ErrorMessage != "" {
			failed++
		} else {
			succeeded++
		}
	}
	assert.Equal(t, 1, failed)
	assert.Equal(t, 1, succeeded)
}

func TestTranscribeDir_EmptyDirIsNotAnError(t *testing.T) {
	transcriber := &syncTranscriber{}
	dao := &syncDAO{}
	p := NewPrompter(transcriber, &fakeGenerator{}, appconfig.DefaultPresets(), dao, nil)
	bp := NewBatchPrompter(p, ProgressConfig{Enabled: false})

	err := bp.TranscribeDir(context.Background(), t.TempDir(), model.LiteralPrompt(""), 0, 2)
	require.NoError(t, err)
	assert.Empty(t, transcriber.files)
}
