package lineedit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store abstracts the file persistence consumed by Editor. Implementations
// must create any missing parent directories before writing.
type Store interface {
	ReadText(path string) (string, error)
	WriteText(path, content string) error
}

// OSStore persists files on the local filesystem. Relative paths are resolved
// against the configured working directory.
type OSStore struct {
	workingDir string
}

// NewOSStore builds a Store rooted at workingDir. An empty workingDir falls
// back to the process working directory.
func NewOSStore(workingDir string) (*OSStore, error) {
	dir := strings.TrimSpace(workingDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		dir = wd
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &OSStore{workingDir: dir}, nil
}

// ReadText returns the full content of the file at path.
func (s *OSStore) ReadText(path string) (string, error) {
	abs, err := s.resolvePath(path)
	if err != nil {
		return "", err
	}
	content, err := os.ReadFile(abs)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// WriteText overwrites (or creates) the file at path with content, creating
// any missing parent directories on the way.
func (s *OSStore) WriteText(path, content string) error {
	abs, err := s.resolvePath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (s *OSStore) resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("invalid file path")
	}
	cleaned := filepath.Clean(trimmed)
	if filepath.IsAbs(cleaned) {
		return cleaned, nil
	}
	return filepath.Clean(filepath.Join(s.workingDir, cleaned)), nil
}
