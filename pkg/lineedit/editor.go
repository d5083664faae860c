package lineedit

import (
	"errors"
	"fmt"
	"strings"
)

// Editor applies whole-file rewrites and diff edits through a Store.
//
// Each call owns an independent line sequence rebuilt from the file content,
// so the engine itself has no shared state. Concurrent calls against the same
// path are not coordinated; callers that need multi-writer support must
// serialize access themselves.
type Editor struct {
	store Store
}

// NewEditor binds an Editor to the provided store.
func NewEditor(store Store) (*Editor, error) {
	if store == nil {
		return nil, errors.New("lineedit: nil store")
	}
	return &Editor{store: store}, nil
}

// RewriteFile unconditionally overwrites (or creates) the file at path with
// content, creating parent directories as needed.
func (e *Editor) RewriteFile(path, content string) error {
	if err := e.store.WriteText(path, content); err != nil {
		return &Error{
			Code:    CodeWriteFailed,
			Message: fmt.Sprintf("failed to write %s: %v", path, err),
			Path:    path,
			Err:     err,
		}
	}
	return nil
}

// ApplyDiff reads the file at path, splits it on newlines, applies each
// operation in order, rejoins with newlines, and writes the result back. On
// any operation failure no write occurs and the original file is untouched.
func (e *Editor) ApplyDiff(path string, operations []Operation) error {
	content, err := e.store.ReadText(path)
	if err != nil {
		return &Error{
			Code:    CodeSourceUnavailable,
			Message: fmt.Sprintf("failed to read %s: %v", path, err),
			Path:    path,
			Err:     err,
		}
	}

	updated, err := Apply(strings.Split(content, "\n"), operations)
	if err != nil {
		var le *Error
		if errors.As(err, &le) {
			le.Path = path
			return le
		}
		return err
	}

	if err := e.store.WriteText(path, strings.Join(updated, "\n")); err != nil {
		return &Error{
			Code:    CodeWriteFailed,
			Message: fmt.Sprintf("failed to write %s: %v", path, err),
			Path:    path,
			Err:     err,
		}
	}
	return nil
}
