package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadVectors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.json")
	if err := os.WriteFile(path, []byte(`[[1.0, 0.0], [0.5, 0.5]]`), 0o644); err != nil {
		t.Fatal(err)
	}

	vectors, err := LoadVectors(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(vectors) != 2 || len(vectors[0]) != 2 {
		t.Fatalf("vectors = %v, want 2x2", vectors)
	}
	if vectors[1][0] != 0.5 {
		t.Errorf("vectors[1][0] = %v, want 0.5", vectors[1][0])
	}
}

func TestLoadVectorsErrors(t *testing.T) {
	if _, err := LoadVectors(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("missing file should error")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"not": "an array"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadVectors(path); err == nil {
		t.Error("malformed snapshot should error")
	}
}
