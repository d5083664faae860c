package lineedit

import (
	"fmt"
	"strings"
)

// Code classifies a failure so callers can branch without string matching.
type Code string

const (
	// CodeOutOfBounds reports a line-number argument outside the valid range
	// for the current sequence length.
	CodeOutOfBounds Code = "OUT_OF_BOUNDS"
	// CodeInvalidRange reports a range operation whose start line is after its
	// end line.
	CodeInvalidRange Code = "INVALID_RANGE"
	// CodeContentNotFound reports that the requested occurrence of a search
	// pattern does not exist. MatchesFound carries how many matches the full
	// scan actually produced.
	CodeContentNotFound Code = "CONTENT_NOT_FOUND"
	// CodeSourceUnavailable reports that the target file could not be read.
	CodeSourceUnavailable Code = "SOURCE_UNAVAILABLE"
	// CodeWriteFailed reports that the target file could not be persisted.
	CodeWriteFailed Code = "WRITE_FAILED"
	// CodeUnsupportedOperation reports an operation with an unknown type tag.
	CodeUnsupportedOperation Code = "UNSUPPORTED_OPERATION"
)

// Error represents a structured failure while applying a diff. It satisfies
// the error interface so it can be returned directly from Editor and Apply.
type Error struct {
	Code    Code
	Message string

	// Op and OpIndex identify the failing operation within the diff. OpIndex
	// is 0-based and only meaningful when Op is non-empty.
	Op      OperationType
	OpIndex int

	// Path names the file being edited when the failure came from Editor.
	Path string

	// StartLine, EndLine and LineCount describe the failing absolute address
	// for OUT_OF_BOUNDS and INVALID_RANGE failures.
	StartLine int
	EndLine   int
	LineCount int

	// Pattern, Occurrence and MatchesFound describe CONTENT_NOT_FOUND
	// failures: the search text, the 1-indexed occurrence requested, and the
	// total number of matches the scan found.
	Pattern      string
	Occurrence   int
	MatchesFound int

	// Err preserves the underlying cause when the failure derives from a
	// lower-level error such as the filesystem.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	message := e.Message
	if message == "" {
		message = "line edit error"
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, message)
	}
	return message
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

const fragmentLimit = 64

// fragment shortens long search text so error messages stay readable.
func fragment(s string) string {
	flattened := strings.ReplaceAll(s, "\n", "\\n")
	runes := []rune(flattened)
	if len(runes) <= fragmentLimit {
		return flattened
	}
	return string(runes[:fragmentLimit]) + "..."
}

func outOfBoundsError(startLine, endLine, lineCount int, message string) *Error {
	return &Error{
		Code:      CodeOutOfBounds,
		Message:   message,
		StartLine: startLine,
		EndLine:   endLine,
		LineCount: lineCount,
	}
}

func contentNotFoundError(pattern string, occurrence, matchesFound int) *Error {
	message := fmt.Sprintf("found %d match(es) of \"%s\", occurrence %d requested", matchesFound, fragment(pattern), occurrence)
	return &Error{
		Code:         CodeContentNotFound,
		Message:      message,
		Pattern:      pattern,
		Occurrence:   occurrence,
		MatchesFound: matchesFound,
	}
}

// FormatError renders Error values into a human readable message suitable for
// surfacing to end users or back to an assistant as a tool observation.
func FormatError(err *Error) string {
	if err == nil {
		return "Unknown error occurred."
	}

	var parts []string
	if err.Op != "" {
		parts = append(parts, fmt.Sprintf("Operation %d (%s) failed: %s", err.OpIndex+1, err.Op, err.Message))
	} else {
		parts = append(parts, err.Error())
	}

	if err.Path != "" {
		parts = append(parts, fmt.Sprintf("File: %s", err.Path))
	}

	switch err.Code {
	case CodeOutOfBounds, CodeInvalidRange:
		parts = append(parts, fmt.Sprintf("File has %d line(s).", err.LineCount))
	case CodeContentNotFound:
		parts = append(parts, fmt.Sprintf("Requested occurrence %d but the scan found %d match(es).", err.Occurrence, err.MatchesFound))
	}

	return strings.Join(parts, "\n")
}
