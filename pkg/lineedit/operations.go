package lineedit

import (
	"encoding/json"
	"fmt"
)

// OperationType identifies the kind of edit described by a diff operation.
type OperationType string

const (
	// OpInsertBlock inserts a block of lines after a 0-indexed position.
	OpInsertBlock OperationType = "insert_block"
	// OpDeleteRange removes an inclusive 1-indexed line range.
	OpDeleteRange OperationType = "delete_range"
	// OpReplaceRange substitutes an inclusive 1-indexed line range.
	OpReplaceRange OperationType = "replace_range"
	// OpInsertAfter inserts a single line after a substring-matched line.
	OpInsertAfter OperationType = "insert_after"
	// OpInsertBefore inserts a single line before a substring-matched line.
	OpInsertBefore OperationType = "insert_before"
	// OpReplaceContent replaces an exactly-matched run of lines.
	OpReplaceContent OperationType = "replace_content"
	// OpDeleteContent removes an exactly-matched run of lines.
	OpDeleteContent OperationType = "delete_content"
)

// Operation describes a single edit within a diff. It is a closed tagged
// variant: Type selects which of the field groups below is meaningful.
//
// Line-number addressing is resolved against the sequence state at the moment
// the operation executes, so later operations see the effects of earlier ones.
// Content-anchored operations never reference line numbers.
type Operation struct {
	Type OperationType `json:"type"`

	// Absolute addressing. LineNumber is the 0-indexed insert-after position
	// for insert_block (0 prepends, current length appends). StartLine and
	// EndLine are 1-indexed and inclusive for delete_range and replace_range.
	LineNumber int      `json:"lineNumber,omitempty"`
	StartLine  int      `json:"startLine,omitempty"`
	EndLine    int      `json:"endLine,omitempty"`
	Lines      []string `json:"lines,omitempty"`

	// Content-anchored addressing. SearchContent is matched as a substring of
	// individual lines (insert_after, insert_before); Content carries the line
	// to insert for those operations and the exact multi-line pattern for
	// delete_content. OldContent and NewContent are the exact multi-line
	// pattern and replacement for replace_content.
	SearchContent string `json:"searchContent,omitempty"`
	Content       string `json:"content,omitempty"`
	OldContent    string `json:"oldContent,omitempty"`
	NewContent    string `json:"newContent,omitempty"`

	// Occurrence selects which match a content-anchored operation targets,
	// 1-indexed among all non-overlapping matches found top to bottom. Zero
	// or negative values mean the first occurrence.
	Occurrence int `json:"occurrence,omitempty"`
}

func (op Operation) occurrence() int {
	if op.Occurrence < 1 {
		return 1
	}
	return op.Occurrence
}

// ParseOperations decodes a JSON array of diff operations.
func ParseOperations(raw string) ([]Operation, error) {
	var operations []Operation
	if err := json.Unmarshal([]byte(raw), &operations); err != nil {
		return nil, fmt.Errorf("lineedit: decode operations: %w", err)
	}
	return operations, nil
}
