package ingest

import (
	"golang.org/x/time/rate"

	"ragforge/internal/extractor"
	"ragforge/internal/storage"
	"ragforge/internal/vectorstore"
)

// Pipeline orchestrates the ingestion of PDF files into SQLite and Qdrant:
// dedup gate, extraction, chunking, batched embedding, and storage.
type Pipeline struct {
	resources  storage.ResourceStore
	embeddings storage.EmbeddingStore
	embedder   Embedder
	vectors    vectorstore.VectorStore
	collection string
	limiter    *rate.Limiter
	extract    func(path string) (extractor.Document, error)
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	resources storage.ResourceStore,
	embeddings storage.EmbeddingStore,
	embedder Embedder,
	vectors vectorstore.VectorStore,
	collection string,
) *Pipeline {
	return &Pipeline{
		resources:  resources,
		embeddings: embeddings,
		embedder:   embedder,
		vectors:    vectors,
		collection: collection,
		limiter:    rate.NewLimiter(rate.Every(batchInterval), 1),
		extract:    extractor.Extract,
	}
}
