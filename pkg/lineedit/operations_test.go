package lineedit

import (
	"reflect"
	"testing"
)

func TestParseOperationsDecodesEveryVariant(t *testing.T) {
	t.Parallel()

	raw := `[
		{"type":"insert_block","lineNumber":0,"lines":["header"]},
		{"type":"delete_range","startLine":1,"endLine":2},
		{"type":"replace_range","startLine":3,"endLine":3,"lines":["new"]},
		{"type":"insert_after","searchContent":"return","content":"// note","occurrence":2},
		{"type":"insert_before","searchContent":"func","content":"// doc"},
		{"type":"replace_content","oldContent":"a\nb","newContent":"c"},
		{"type":"delete_content","content":"obsolete"}
	]`

	operations, err := ParseOperations(raw)
	if err != nil {
		t.Fatalf("ParseOperations returned error: %v", err)
	}
	if len(operations) != 7 {
		t.Fatalf("unexpected operation count: %d", len(operations))
	}

	wantTypes := []OperationType{
		OpInsertBlock, OpDeleteRange, OpReplaceRange,
		OpInsertAfter, OpInsertBefore, OpReplaceContent, OpDeleteContent,
	}
	for i, op := range operations {
		if op.Type != wantTypes[i] {
			t.Fatalf("operation %d: got type %q want %q", i, op.Type, wantTypes[i])
		}
	}

	if operations[3].Occurrence != 2 {
		t.Fatalf("occurrence not decoded: %+v", operations[3])
	}
	if !reflect.DeepEqual(operations[0].Lines, []string{"header"}) {
		t.Fatalf("lines not decoded: %+v", operations[0])
	}
	if operations[5].OldContent != "a\nb" {
		t.Fatalf("multi-line pattern not decoded: %+v", operations[5])
	}
}

func TestParseOperationsRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	if _, err := ParseOperations(`{"type":"delete_range"}`); err == nil {
		t.Fatalf("expected error for non-array payload")
	}
	if _, err := ParseOperations(`not json`); err == nil {
		t.Fatalf("expected error for invalid JSON")
	}
}

func TestOccurrenceDefaultsToOne(t *testing.T) {
	t.Parallel()

	for _, value := range []int{0, -3} {
		op := Operation{Occurrence: value}
		if got := op.occurrence(); got != 1 {
			t.Fatalf("occurrence(%d): got %d want 1", value, got)
		}
	}
}
