package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileScanner(t *testing.T) {
	baseDir := "/tmp/test"
	scanner := NewFileScanner(baseDir)

	assert.NotNil(t, scanner)
	assert.Equal(t, baseDir, scanner.baseDir)
	assert.Equal(t, ".log", scanner.extension)
}

func TestFileScannerScanEmptyDirectory(t *testing.T) {
	tempDir := t.TempDir()
	scanner := NewFileScanner(tempDir)

	files, err := scanner.Scan()

	require.NoError(t, err)
	assert.Empty(t, files, "Empty directory should return no files")
}

func TestFileScannerScanNonExistentDirectory(t *testing.T) {
	scanner := NewFileScanner("/path/that/does/not/exist")

	files, err := scanner.Scan()

	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, files)
}

func TestFileScannerScanFiltersAndSorts(t *testing.T) {
	tempDir := t.TempDir()
	scanner := NewFileScanner(tempDir)

	testFiles := []struct {
		path  string
		isLog bool
	}{
		{"chatlog-2024-01-02.log", true},
		{"chatlog-2024-01-01.log", true},
		{"chatlog-2024-01-03.LOG", true},
		{"notes.txt", false},
		{"chatlog-2024-01-04.log.bak", false},
		{"archive/chatlog-2023-12-31.log", false},
	}

	for _, file := range testFiles {
		fullPath := filepath.Join(tempDir, file.path)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
		require.NoError(t, os.WriteFile(fullPath, []byte("test content"), 0644))
	}
	// A directory with a .log name is not a file.
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "folder.log"), 0755))

	files, err := scanner.Scan()

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tempDir, "chatlog-2024-01-01.log"),
		filepath.Join(tempDir, "chatlog-2024-01-02.log"),
		filepath.Join(tempDir, "chatlog-2024-01-03.LOG"),
	}, files)
}
