package lineedit

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// MemoryStore keeps documents in a map. It exists for tests and for embedders
// that edit content which never touches the filesystem.
type MemoryStore struct {
	files map[string]string
}

// NewMemoryStore copies the provided documents into a fresh store. A nil map
// starts the store empty.
func NewMemoryStore(files map[string]string) *MemoryStore {
	snapshot := make(map[string]string, len(files))
	for k, v := range files {
		snapshot[k] = v
	}
	return &MemoryStore{files: snapshot}
}

// ReadText returns the stored document, or fs.ErrNotExist when absent.
func (s *MemoryStore) ReadText(path string) (string, error) {
	key, err := memoryKey(path)
	if err != nil {
		return "", err
	}
	content, ok := s.files[key]
	if !ok {
		return "", fmt.Errorf("failed to read %s: %w", key, fs.ErrNotExist)
	}
	return content, nil
}

// WriteText stores content under path, overwriting any previous document.
func (s *MemoryStore) WriteText(path, content string) error {
	key, err := memoryKey(path)
	if err != nil {
		return err
	}
	s.files[key] = content
	return nil
}

// Snapshot returns a copy of the stored documents.
func (s *MemoryStore) Snapshot() map[string]string {
	snapshot := make(map[string]string, len(s.files))
	for k, v := range s.files {
		snapshot[k] = v
	}
	return snapshot
}

func memoryKey(path string) (string, error) {
	key := filepath.Clean(strings.TrimSpace(path))
	if key == "" || key == "." {
		return "", fmt.Errorf("invalid file path")
	}
	return key, nil
}
