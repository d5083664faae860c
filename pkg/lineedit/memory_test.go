package lineedit

import (
	"errors"
	"io/fs"
	"testing"
)

func TestMemoryStoreDoesNotMutateInitialMap(t *testing.T) {
	t.Parallel()

	initial := map[string]string{"doc.txt": "original"}
	store := NewMemoryStore(initial)

	if err := store.WriteText("doc.txt", "changed"); err != nil {
		t.Fatalf("WriteText returned error: %v", err)
	}
	if initial["doc.txt"] != "original" {
		t.Fatalf("initial map mutated: %q", initial["doc.txt"])
	}
}

func TestMemoryStoreMissingFile(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(nil)
	_, err := store.ReadText("absent.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestMemoryStoreSnapshotIsACopy(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(map[string]string{"a.txt": "a"})
	snapshot := store.Snapshot()
	snapshot["a.txt"] = "tampered"

	got, err := store.ReadText("a.txt")
	if err != nil {
		t.Fatalf("ReadText returned error: %v", err)
	}
	if got != "a" {
		t.Fatalf("store mutated through snapshot: %q", got)
	}
}

func TestMemoryStoreRejectsInvalidPaths(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(nil)
	if err := store.WriteText(".", "x"); err == nil {
		t.Fatalf("expected error for invalid path")
	}
	if _, err := store.ReadText(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
