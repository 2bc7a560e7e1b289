package storage

import "time"

// ResourceRecord is the top-level knowledge-base entry for one ingested
// document. It is the aggregate root: document metadata and embeddings
// reference it and cannot outlive it.
type ResourceRecord struct {
	ID        string // UUID
	Content   string // Human-readable label, e.g. "PDF: handbook.pdf"
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DocumentRecord tracks one ingested PDF file. The (Filename, ContentHash)
// pair is the dedup key: a document is "already processed" iff a row exists
// for it.
type DocumentRecord struct {
	ID              string // UUID
	ResourceID      string // Foreign key to resources.id
	Filename        string
	ContentHash     string // SHA-256 hex digest of the file bytes
	PageCount       int
	LastProcessedAt time.Time
}

// EmbeddingRecord is one stored chunk of text. Its vector lives in the
// vector store under the same ID.
type EmbeddingRecord struct {
	ID         string // UUID (same as the vector store point ID)
	ResourceID string // Foreign key to resources.id
	Content    string // Chunk text
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PageLinkRecord preserves provenance for one embedding: which page of the
// source document the chunk came from.
type PageLinkRecord struct {
	ID          string // UUID
	EmbeddingID string // Foreign key to embeddings.id
	PageNumber  int
	PageTitle   string
}
