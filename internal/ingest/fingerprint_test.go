package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestComputeFingerprint(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "doc.pdf")
	if err := os.WriteFile(path, []byte("file contents"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	fp, err := ComputeFingerprint(path)
	if err != nil {
		t.Fatalf("ComputeFingerprint() error = %v", err)
	}

	if fp.Filename != "doc.pdf" {
		t.Errorf("Filename = %q, want %q", fp.Filename, "doc.pdf")
	}
	if len(fp.ContentHash) != 64 {
		t.Errorf("ContentHash length = %d, want 64 hex characters", len(fp.ContentHash))
	}

	// Deterministic across calls
	again, err := ComputeFingerprint(path)
	if err != nil {
		t.Fatalf("ComputeFingerprint() error = %v", err)
	}
	if again.ContentHash != fp.ContentHash {
		t.Errorf("ContentHash not deterministic: %q vs %q", fp.ContentHash, again.ContentHash)
	}
}

func TestComputeFingerprint_HashSensitivity(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "doc.pdf")

	if err := os.WriteFile(path, []byte("original content"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	before, err := ComputeFingerprint(path)
	if err != nil {
		t.Fatalf("ComputeFingerprint() error = %v", err)
	}

	// Same filename, one byte changed
	if err := os.WriteFile(path, []byte("original content!"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	after, err := ComputeFingerprint(path)
	if err != nil {
		t.Fatalf("ComputeFingerprint() error = %v", err)
	}

	if before.Filename != after.Filename {
		t.Errorf("Filename changed: %q vs %q", before.Filename, after.Filename)
	}
	if before.ContentHash == after.ContentHash {
		t.Error("ContentHash unchanged after content modification")
	}
}

func TestComputeFingerprint_MissingFile(t *testing.T) {
	_, err := ComputeFingerprint(filepath.Join(t.TempDir(), "missing.pdf"))
	if err == nil {
		t.Fatal("ComputeFingerprint() expected error for missing file")
	}
}
