package ingest

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"ragforge/internal/contextutil"
	"ragforge/internal/extractor"
	"ragforge/internal/llm"
	"ragforge/internal/storage"
	"ragforge/internal/vectorstore"
)

// processPage chunks, embeds, and stores one page's content, returning the
// number of embeddings inserted. Overlong pages are split into fixed-size
// sections first to bound memory; sections are chunked independently. Chunks
// are embedded in small batches with a throttle between calls; a failed
// batch is logged and skipped without aborting the page.
func (p *Pipeline) processPage(ctx context.Context, page extractor.Page, resourceID string) int {
	logger := contextutil.LoggerFromContext(ctx)

	content := strings.TrimSpace(page.Content)
	if content == "" {
		logger.WarnContext(ctx, "page has no content, skipping", "page", page.Number)
		return 0
	}

	logger.InfoContext(ctx, "processing page", "page", page.Number, "content_length", len(content))

	total := 0
	for sectionStart := 0; sectionStart < len(content); sectionStart += maxPageSize {
		section := content[sectionStart:min(sectionStart+maxPageSize, len(content))]
		chunks := ChunkText(section, maxChunkSize, chunkOverlap)
		logger.DebugContext(ctx, "chunked section", "page", page.Number, "chunks", len(chunks))

		for i := 0; i < len(chunks); i += chunksPerBatch {
			batch := chunks[i:min(i+chunksPerBatch, len(chunks))]

			// Throttle to stay inside provider rate limits
			if err := p.limiter.Wait(ctx); err != nil {
				logger.WarnContext(ctx, "throttle wait aborted", "page", page.Number, "error", err)
				return total
			}

			results, err := p.embedder.EmbedBatchWithTimeout(ctx, batch, embedTimeout)
			if err != nil {
				logger.ErrorContext(ctx, "failed to embed batch", "page", page.Number, "batch_size", len(batch), "error", err)
				continue
			}

			total += p.storeBatch(ctx, results, resourceID, page)
		}
	}

	logger.InfoContext(ctx, "completed page", "page", page.Number, "embeddings", total)
	return total
}

// storeBatch persists one embedded batch: an embedding row plus provenance
// link per chunk in SQLite, then the batch's points in the vector store.
// Row inserts are attempted independently, one failure does not block the
// rest of the batch. Row and point share an ID so they can be correlated
// and deleted together.
func (p *Pipeline) storeBatch(ctx context.Context, results []llm.Embedding, resourceID string, page extractor.Page) int {
	logger := contextutil.LoggerFromContext(ctx)

	points := make([]vectorstore.Point, 0, len(results))
	inserted := 0

	for _, result := range results {
		embeddingID := uuid.New().String()

		record := &storage.EmbeddingRecord{
			ID:         embeddingID,
			ResourceID: resourceID,
			Content:    result.Content,
		}
		link := &storage.PageLinkRecord{
			ID:          uuid.New().String(),
			EmbeddingID: embeddingID,
			PageNumber:  page.Number,
			PageTitle:   page.Title,
		}

		if err := p.embeddings.Insert(ctx, record, link); err != nil {
			logger.ErrorContext(ctx, "failed to insert embedding", "page", page.Number, "error", err)
			continue
		}

		points = append(points, vectorstore.Point{
			ID:  embeddingID,
			Vec: result.Vector,
			Meta: map[string]any{
				"resource_id": resourceID,
				"page_number": page.Number,
				"page_title":  page.Title,
			},
		})
		inserted++
	}

	if len(points) > 0 {
		if err := p.vectors.Upsert(ctx, p.collection, points); err != nil {
			logger.ErrorContext(ctx, "failed to upsert vectors", "page", page.Number, "count", len(points), "error", err)
		}
	}

	return inserted
}
