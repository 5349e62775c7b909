package atomicfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mosbergapi/modkit/internal/atomicfile"
)

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.json")

	if err := atomicfile.WriteJSON(path, map[string]int{"count": 3}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	got := string(data)
	if !strings.Contains(got, `"count": 3`) {
		t.Errorf("file content = %q, want indented JSON with count", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("file does not end with a newline")
	}
}

func TestWriteLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	if err := atomicfile.Write(path, []byte("data")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file %s left behind", e.Name())
		}
	}
}

func TestWriteReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	if err := atomicfile.Write(path, []byte("old")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := atomicfile.Write(path, []byte("new")); err != nil {
		t.Fatalf("second Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "new" {
		t.Errorf("file content = %q, want new", data)
	}
}
