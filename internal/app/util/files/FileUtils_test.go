package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAudioFile(t *testing.T) {
	assert.True(t, IsAudioFile("bbq_plans.wav"))
	assert.True(t, IsAudioFile("EPISODE.MP3"))
	assert.True(t, IsAudioFile("/some/dir/clip.m4a"))
	assert.False(t, IsAudioFile("notes.txt"))
	assert.False(t, IsAudioFile("archive.wav.bak"))
	assert.False(t, IsAudioFile("noextension"))
}

func TestGetAllAudioFiles(t *testing.T) {
	dir := t.TempDir()

	write := func(name string, modTime time.Time) {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		require.NoError(t, os.Chtimes(path, modTime, modTime))
	}

	now := time.Now()
	write("newer.wav", now)
	write("older.mp3", now.Add(-time.Hour))
	write("ignored.txt", now)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir.wav"), 0o755))

	infos, err := GetAllAudioFiles(dir)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "older.mp3", infos[0].Name)
	assert.Equal(t, "newer.wav", infos[1].Name)
}

func TestGetAllAudioFiles_MissingDir(t *testing.T) {
	_, err := GetAllAudioFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestReadTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte("  glossary: Preseason.\n"), 0o644))

	got, err := ReadTextFile(path)
	require.NoError(t, err)
	assert.Equal(t, "glossary: Preseason.", got)
}

func TestGetProjectRoot(t *testing.T) {
	root, err := GetProjectRoot()
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "go.mod"))
	assert.NoError(t, err)
}
