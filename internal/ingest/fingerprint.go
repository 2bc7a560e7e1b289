package ingest

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
)

// Fingerprint identifies a document by name and content. Two files with
// identical bytes and identical name are the same logical document.
type Fingerprint struct {
	Filename    string
	ContentHash string
}

// ComputeFingerprint reads the file fully and returns its (filename,
// SHA-256 hex digest) pair. Any change to the file bytes yields a new
// fingerprint, so a modified file is ingested as a new document.
func ComputeFingerprint(path string) (Fingerprint, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	hash := sha256.Sum256(content)
	return Fingerprint{
		Filename:    filepath.Base(path),
		ContentHash: fmt.Sprintf("%x", hash),
	}, nil
}
