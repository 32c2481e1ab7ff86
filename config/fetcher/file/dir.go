package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotDirectory is returned when a directory listing is requested for a regular file.
var ErrNotDirectory = errors.New("path is not a directory")

// Entry is one name found in a directory.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
}

// ReadDir lists dir without recursing. Entries are sorted by name.
// Symbolic links are reported as directories when they point to one.
func ReadDir(dir string) ([]Entry, error) {
	cleanDir := filepath.Clean(dir)

	stat, err := os.Stat(cleanDir)
	if err != nil {
		return nil, fmt.Errorf("stat directory %q: %w", cleanDir, err)
	}

	if !stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanDir, ErrNotDirectory)
	}

	dirEntries, err := os.ReadDir(cleanDir)
	if err != nil {
		return nil, fmt.Errorf("listing directory %q: %w", cleanDir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))

	for _, dirEntry := range dirEntries {
		entryPath := filepath.Join(cleanDir, dirEntry.Name())
		isDir := dirEntry.IsDir()

		if dirEntry.Type()&os.ModeSymlink != 0 {
			target, statErr := os.Stat(entryPath)
			isDir = statErr == nil && target.IsDir()
		}

		entries = append(entries, Entry{
			Name:  dirEntry.Name(),
			Path:  entryPath,
			IsDir: isDir,
		})
	}

	return entries, nil
}
