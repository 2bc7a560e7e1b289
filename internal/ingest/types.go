package ingest

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_embedder.go -package=mocks ragforge/internal/ingest Embedder

import (
	"context"
	"time"

	"ragforge/internal/llm"
)

const (
	// maxChunkSize bounds chunk length in characters.
	maxChunkSize = 1000
	// chunkOverlap is the overlap window between consecutive chunks.
	chunkOverlap = 50
	// chunksPerBatch is the number of chunks embedded per provider call.
	chunksPerBatch = 5
	// maxPageSize bounds how much page text is chunked at once.
	maxPageSize = 25000
	// embedTimeout bounds a single embedding batch call.
	embedTimeout = 30 * time.Second
	// batchInterval is the minimum delay between embedding batches.
	batchInterval = 200 * time.Millisecond

	// documentWorkers caps concurrent documents per run.
	documentWorkers = 2
	// pageWorkers caps concurrent pages per document.
	pageWorkers = 3
)

// Embedder generates embeddings for a batch of texts under a deadline.
type Embedder interface {
	EmbedBatchWithTimeout(ctx context.Context, texts []string, timeout time.Duration) ([]llm.Embedding, error)
}

// Result reports the outcome of processing a single document.
type Result struct {
	Filename        string `json:"filename"`
	Processed       bool   `json:"processed"`
	EmbeddingsCount int    `json:"embeddings_count"`
}

// Summary aggregates the outcome of a full pipeline run.
type Summary struct {
	Total           int `json:"total"`
	Processed       int `json:"processed"`
	Skipped         int `json:"skipped"`
	TotalEmbeddings int `json:"total_embeddings"`
}
