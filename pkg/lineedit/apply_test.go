package lineedit

import (
	"errors"
	"reflect"
	"testing"
)

func TestApplyEmptyDiffLeavesLinesUnchanged(t *testing.T) {
	t.Parallel()

	lines := []string{"alpha", "beta", "gamma"}
	result, err := Apply(lines, nil)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if !reflect.DeepEqual(result, lines) {
		t.Fatalf("unexpected result: got %v want %v", result, lines)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	lines := []string{"a", "b", "c"}
	_, err := Apply(lines, []Operation{{Type: OpDeleteRange, StartLine: 1, EndLine: 2}})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"a", "b", "c"}) {
		t.Fatalf("input slice was mutated: %v", lines)
	}
}

func TestInsertBlockPositions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		lineNumber int
		want       []string
	}{
		{name: "prepend", lineNumber: 0, want: []string{"X", "Y", "a", "b"}},
		{name: "middle", lineNumber: 1, want: []string{"a", "X", "Y", "b"}},
		{name: "append", lineNumber: 2, want: []string{"a", "b", "X", "Y"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result, err := Apply([]string{"a", "b"}, []Operation{{
				Type:       OpInsertBlock,
				LineNumber: tc.lineNumber,
				Lines:      []string{"X", "Y"},
			}})
			if err != nil {
				t.Fatalf("Apply returned error: %v", err)
			}
			if !reflect.DeepEqual(result, tc.want) {
				t.Fatalf("unexpected result: got %v want %v", result, tc.want)
			}
		})
	}
}

func TestInsertBlockOutOfBounds(t *testing.T) {
	t.Parallel()

	for _, lineNumber := range []int{-1, 3} {
		_, err := Apply([]string{"a", "b"}, []Operation{{
			Type:       OpInsertBlock,
			LineNumber: lineNumber,
			Lines:      []string{"X"},
		}})
		le := requireError(t, err)
		if le.Code != CodeOutOfBounds {
			t.Fatalf("unexpected code for position %d: %s", lineNumber, le.Code)
		}
		if le.Op != OpInsertBlock || le.OpIndex != 0 {
			t.Fatalf("error not attributed to failing operation: %+v", le)
		}
	}
}

func TestInsertThenDeleteRoundTrip(t *testing.T) {
	t.Parallel()

	original := []string{"one", "two", "three"}
	inserted, err := Apply(original, []Operation{{
		Type:       OpInsertBlock,
		LineNumber: 1,
		Lines:      []string{"x1", "x2"},
	}})
	if err != nil {
		t.Fatalf("insert returned error: %v", err)
	}

	restored, err := Apply(inserted, []Operation{{
		Type:      OpDeleteRange,
		StartLine: 2,
		EndLine:   3,
	}})
	if err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if !reflect.DeepEqual(restored, original) {
		t.Fatalf("round trip mismatch: got %v want %v", restored, original)
	}
}

func TestDeleteRangeOutOfBounds(t *testing.T) {
	t.Parallel()

	lines := []string{"1", "2", "3", "4", "5"}
	_, err := Apply(lines, []Operation{{Type: OpDeleteRange, StartLine: 99, EndLine: 99}})
	le := requireError(t, err)
	if le.Code != CodeOutOfBounds {
		t.Fatalf("unexpected code: %s", le.Code)
	}
	if le.LineCount != 5 {
		t.Fatalf("unexpected line count: %d", le.LineCount)
	}
}

func TestDeleteRangeReversedBounds(t *testing.T) {
	t.Parallel()

	_, err := Apply([]string{"1", "2", "3"}, []Operation{{Type: OpDeleteRange, StartLine: 3, EndLine: 1}})
	le := requireError(t, err)
	if le.Code != CodeInvalidRange {
		t.Fatalf("unexpected code: %s", le.Code)
	}
}

func TestReplaceRangeChangesLineCount(t *testing.T) {
	t.Parallel()

	lines := []string{"line 1", "line 2", "line 3", "line 4", "line 5"}
	result, err := Apply(lines, []Operation{{
		Type:      OpReplaceRange,
		StartLine: 2,
		EndLine:   4,
		Lines:     []string{"replaced line 1", "replaced line 2"},
	}})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	want := []string{"line 1", "replaced line 1", "replaced line 2", "line 5"}
	if !reflect.DeepEqual(result, want) {
		t.Fatalf("unexpected result: got %v want %v", result, want)
	}
}

func TestInsertAfterTargetsRequestedOccurrence(t *testing.T) {
	t.Parallel()

	lines := []string{"return 1;", "return 2;", "return 3;"}
	result, err := Apply(lines, []Operation{{
		Type:          OpInsertAfter,
		SearchContent: "return",
		Content:       "// x",
		Occurrence:    2,
	}})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	want := []string{"return 1;", "return 2;", "// x", "return 3;"}
	if !reflect.DeepEqual(result, want) {
		t.Fatalf("unexpected result: got %v want %v", result, want)
	}
}

func TestInsertBeforeDefaultsToFirstOccurrence(t *testing.T) {
	t.Parallel()

	lines := []string{"aa", "needle here", "bb", "needle again"}
	result, err := Apply(lines, []Operation{{
		Type:          OpInsertBefore,
		SearchContent: "needle",
		Content:       "inserted",
	}})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	want := []string{"aa", "inserted", "needle here", "bb", "needle again"}
	if !reflect.DeepEqual(result, want) {
		t.Fatalf("unexpected result: got %v want %v", result, want)
	}
}

func TestInsertAfterReportsTotalMatches(t *testing.T) {
	t.Parallel()

	lines := []string{"return 1;", "return 2;"}
	_, err := Apply(lines, []Operation{{
		Type:          OpInsertAfter,
		SearchContent: "return",
		Content:       "// x",
		Occurrence:    3,
	}})
	le := requireError(t, err)
	if le.Code != CodeContentNotFound {
		t.Fatalf("unexpected code: %s", le.Code)
	}
	if le.MatchesFound != 2 || le.Occurrence != 3 {
		t.Fatalf("unexpected match accounting: found=%d requested=%d", le.MatchesFound, le.Occurrence)
	}
}

func TestReplaceContentMultiLine(t *testing.T) {
	t.Parallel()

	lines := []string{"func a() {", "\treturn 1", "}", "func b() {", "\treturn 1", "}"}
	result, err := Apply(lines, []Operation{{
		Type:       OpReplaceContent,
		OldContent: "\treturn 1\n}",
		NewContent: "\treturn 2\n}",
		Occurrence: 2,
	}})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	want := []string{"func a() {", "\treturn 1", "}", "func b() {", "\treturn 2", "}"}
	if !reflect.DeepEqual(result, want) {
		t.Fatalf("unexpected result: got %v want %v", result, want)
	}
}

func TestReplaceContentRequiresExactLines(t *testing.T) {
	t.Parallel()

	// Substring matching must not apply here: "return 1" is contained in the
	// file but the full line differs by indentation.
	_, err := Apply([]string{"\treturn 1"}, []Operation{{
		Type:       OpReplaceContent,
		OldContent: "return 1",
		NewContent: "return 2",
	}})
	le := requireError(t, err)
	if le.Code != CodeContentNotFound {
		t.Fatalf("unexpected code: %s", le.Code)
	}
	if le.MatchesFound != 0 {
		t.Fatalf("expected zero matches, got %d", le.MatchesFound)
	}
}

func TestReplaceContentMatchesDoNotOverlap(t *testing.T) {
	t.Parallel()

	// The 2-line pattern "x/x" appears at indices 0 and 2; the window starting
	// at index 1 reuses a consumed line and must not count as a match.
	lines := []string{"x", "x", "x", "x"}
	_, err := Apply(lines, []Operation{{
		Type:       OpReplaceContent,
		OldContent: "x\nx",
		NewContent: "y",
		Occurrence: 3,
	}})
	le := requireError(t, err)
	if le.Code != CodeContentNotFound {
		t.Fatalf("unexpected code: %s", le.Code)
	}
	if le.MatchesFound != 2 {
		t.Fatalf("expected 2 non-overlapping matches, got %d", le.MatchesFound)
	}
}

func TestReplaceContentChangesLineCount(t *testing.T) {
	t.Parallel()

	result, err := Apply([]string{"a", "b", "c"}, []Operation{{
		Type:       OpReplaceContent,
		OldContent: "b",
		NewContent: "b1\nb2\nb3",
	}})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	want := []string{"a", "b1", "b2", "b3", "c"}
	if !reflect.DeepEqual(result, want) {
		t.Fatalf("unexpected result: got %v want %v", result, want)
	}
}

func TestDeleteContentRemovesMatchedRun(t *testing.T) {
	t.Parallel()

	lines := []string{"keep", "drop 1", "drop 2", "keep too"}
	result, err := Apply(lines, []Operation{{
		Type:    OpDeleteContent,
		Content: "drop 1\ndrop 2",
	}})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	want := []string{"keep", "keep too"}
	if !reflect.DeepEqual(result, want) {
		t.Fatalf("unexpected result: got %v want %v", result, want)
	}
}

func TestDeleteContentReportsZeroMatches(t *testing.T) {
	t.Parallel()

	_, err := Apply([]string{"a", "b"}, []Operation{{
		Type:    OpDeleteContent,
		Content: "nonexistent",
	}})
	le := requireError(t, err)
	if le.Code != CodeContentNotFound {
		t.Fatalf("unexpected code: %s", le.Code)
	}
	if le.MatchesFound != 0 {
		t.Fatalf("expected zero matches, got %d", le.MatchesFound)
	}
}

func TestLineNumbersResolveAgainstCurrentState(t *testing.T) {
	t.Parallel()

	result, err := Apply([]string{"a", "b", "c"}, []Operation{
		{Type: OpDeleteRange, StartLine: 2, EndLine: 2},
		{Type: OpInsertBlock, LineNumber: 2, Lines: []string{"X"}},
	})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	want := []string{"a", "c", "X"}
	if !reflect.DeepEqual(result, want) {
		t.Fatalf("unexpected result: got %v want %v", result, want)
	}
}

func TestApplyStopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	_, err := Apply([]string{"a"}, []Operation{
		{Type: OpInsertBlock, LineNumber: 1, Lines: []string{"b"}},
		{Type: OpDeleteRange, StartLine: 9, EndLine: 9},
		{Type: OpInsertBlock, LineNumber: 0, Lines: []string{"never"}},
	})
	le := requireError(t, err)
	if le.OpIndex != 1 || le.Op != OpDeleteRange {
		t.Fatalf("failure attributed to wrong operation: %+v", le)
	}
}

func TestApplyRejectsUnknownOperationType(t *testing.T) {
	t.Parallel()

	_, err := Apply([]string{"a"}, []Operation{{Type: OperationType("move_lines")}})
	le := requireError(t, err)
	if le.Code != CodeUnsupportedOperation {
		t.Fatalf("unexpected code: %s", le.Code)
	}
}

func requireError(t *testing.T, err error) *Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error")
	}
	var le *Error
	if !errors.As(err, &le) {
		t.Fatalf("expected *lineedit.Error, got %T: %v", err, err)
	}
	return le
}
