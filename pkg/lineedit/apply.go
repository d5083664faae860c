package lineedit

import (
	"errors"
	"fmt"
	"strings"
)

// Apply runs operations against lines strictly in order and returns the
// resulting line sequence. The input slice is never mutated. On the first
// failing operation the whole call fails with a *Error identifying the
// operation; no partial result is returned.
func Apply(lines []string, operations []Operation) ([]string, error) {
	result := append([]string(nil), lines...)
	for index, op := range operations {
		next, err := applyOperation(result, op)
		if err != nil {
			var le *Error
			if errors.As(err, &le) {
				le.Op = op.Type
				le.OpIndex = index
				return nil, le
			}
			return nil, err
		}
		result = next
	}
	return result, nil
}

func applyOperation(lines []string, op Operation) ([]string, error) {
	switch op.Type {
	case OpInsertBlock:
		return applyInsertBlock(lines, op)
	case OpDeleteRange:
		return applyDeleteRange(lines, op)
	case OpReplaceRange:
		return applyReplaceRange(lines, op)
	case OpInsertAfter:
		return applyInsertRelative(lines, op, false)
	case OpInsertBefore:
		return applyInsertRelative(lines, op, true)
	case OpReplaceContent:
		return applyReplaceContent(lines, op)
	case OpDeleteContent:
		return applyDeleteContent(lines, op)
	default:
		return nil, &Error{
			Code:    CodeUnsupportedOperation,
			Message: fmt.Sprintf("unsupported diff operation type %q", string(op.Type)),
		}
	}
}

// applyInsertBlock splices op.Lines immediately after the 0-indexed position
// op.LineNumber, so 0 prepends and len(lines) appends.
func applyInsertBlock(lines []string, op Operation) ([]string, error) {
	if op.LineNumber < 0 || op.LineNumber > len(lines) {
		message := fmt.Sprintf("insert position %d is out of bounds (file has %d lines)", op.LineNumber, len(lines))
		return nil, outOfBoundsError(op.LineNumber, op.LineNumber, len(lines), message)
	}
	return splice(lines, op.LineNumber, 0, op.Lines), nil
}

func applyDeleteRange(lines []string, op Operation) ([]string, error) {
	if err := validateRange(lines, op); err != nil {
		return nil, err
	}
	return splice(lines, op.StartLine-1, op.EndLine-op.StartLine+1, nil), nil
}

// applyReplaceRange substitutes the inclusive 1-indexed span with op.Lines.
// The replacement may have a different length than the span.
func applyReplaceRange(lines []string, op Operation) ([]string, error) {
	if err := validateRange(lines, op); err != nil {
		return nil, err
	}
	return splice(lines, op.StartLine-1, op.EndLine-op.StartLine+1, op.Lines), nil
}

// validateRange enforces 1 <= StartLine <= EndLine <= len(lines). A reversed
// range is INVALID_RANGE; a bound outside the file is OUT_OF_BOUNDS.
func validateRange(lines []string, op Operation) *Error {
	if op.StartLine > op.EndLine {
		return &Error{
			Code:      CodeInvalidRange,
			Message:   fmt.Sprintf("start line %d is after end line %d", op.StartLine, op.EndLine),
			StartLine: op.StartLine,
			EndLine:   op.EndLine,
			LineCount: len(lines),
		}
	}
	if op.StartLine < 1 || op.EndLine > len(lines) {
		message := fmt.Sprintf("lines %d-%d are out of bounds (file has %d lines)", op.StartLine, op.EndLine, len(lines))
		return outOfBoundsError(op.StartLine, op.EndLine, len(lines), message)
	}
	return nil
}

// applyInsertRelative inserts op.Content as a single new line after (or
// before) the occurrence-th line containing op.SearchContent as a substring.
// Partial matching is intentional here: it lets callers anchor on a short
// unique fragment without reproducing exact whitespace.
func applyInsertRelative(lines []string, op Operation, before bool) ([]string, error) {
	occurrence := op.occurrence()
	target := -1
	matches := 0
	// The scan always walks the whole file so a failure can report an accurate
	// total match count.
	for i, line := range lines {
		if !strings.Contains(line, op.SearchContent) {
			continue
		}
		matches++
		if matches == occurrence {
			target = i
		}
	}
	if target == -1 {
		return nil, contentNotFoundError(op.SearchContent, occurrence, matches)
	}
	insertAt := target + 1
	if before {
		insertAt = target
	}
	return splice(lines, insertAt, 0, []string{op.Content}), nil
}

// applyReplaceContent replaces the occurrence-th exact, non-overlapping match
// of op.OldContent (split on embedded newlines) with op.NewContent. Exact
// matching is intentional for multi-line edits where partial matching would be
// dangerously ambiguous.
func applyReplaceContent(lines []string, op Operation) ([]string, error) {
	pattern := strings.Split(op.OldContent, "\n")
	occurrence := op.occurrence()
	starts := findBlockMatches(lines, pattern)
	if occurrence > len(starts) {
		return nil, contentNotFoundError(op.OldContent, occurrence, len(starts))
	}
	replacement := strings.Split(op.NewContent, "\n")
	return splice(lines, starts[occurrence-1], len(pattern), replacement), nil
}

// applyDeleteContent removes the occurrence-th exact match of op.Content.
// Identical matching algorithm to applyReplaceContent.
func applyDeleteContent(lines []string, op Operation) ([]string, error) {
	pattern := strings.Split(op.Content, "\n")
	occurrence := op.occurrence()
	starts := findBlockMatches(lines, pattern)
	if occurrence > len(starts) {
		return nil, contentNotFoundError(op.Content, occurrence, len(starts))
	}
	return splice(lines, starts[occurrence-1], len(pattern), nil), nil
}

// findBlockMatches returns the start indices of every non-overlapping run of
// lines equal to pattern, scanning top to bottom. Every line in a run must
// equal the corresponding pattern line exactly, including whitespace. A match
// consumes its full line span before scanning continues; a non-matching
// position advances by one line.
func findBlockMatches(lines, pattern []string) []int {
	if len(pattern) == 0 {
		return nil
	}
	var starts []int
	for i := 0; i+len(pattern) <= len(lines); {
		if blockEqual(lines[i:i+len(pattern)], pattern) {
			starts = append(starts, i)
			i += len(pattern)
			continue
		}
		i++
	}
	return starts
}

func blockEqual(window, pattern []string) bool {
	for j := range pattern {
		if window[j] != pattern[j] {
			return false
		}
	}
	return true
}

func splice(target []string, index, deleteCount int, replacement []string) []string {
	if deleteCount == 0 && len(replacement) == 0 {
		return target
	}
	result := make([]string, 0, len(target)-deleteCount+len(replacement))
	result = append(result, target[:index]...)
	result = append(result, replacement...)
	result = append(result, target[index+deleteCount:]...)
	return result
}
