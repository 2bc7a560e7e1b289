package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"ragforge/internal/contextutil"
	"ragforge/internal/storage"
)

// ProcessDocument ingests a single PDF file: dedup check, extraction,
// resource registration, then page processing under a bounded worker pool.
// An already-ingested file returns Processed=false with no writes. Pages
// settle independently, a failed page costs its embeddings but does not
// stop its siblings. Errors before the resource exists abort the document.
func (p *Pipeline) ProcessDocument(ctx context.Context, path string) (Result, error) {
	logger := contextutil.LoggerFromContext(ctx)

	fingerprint, err := ComputeFingerprint(path)
	if err != nil {
		return Result{}, err
	}
	result := Result{Filename: fingerprint.Filename}

	logger.InfoContext(ctx, "processing document", "file", fingerprint.Filename)

	exists, err := p.resources.DocumentExists(ctx, fingerprint.Filename, fingerprint.ContentHash)
	if err != nil {
		return result, fmt.Errorf("failed to check document fingerprint: %w", err)
	}
	if exists {
		logger.InfoContext(ctx, "document already processed, skipping", "file", fingerprint.Filename)
		return result, nil
	}

	doc, err := p.extract(path)
	if err != nil {
		return result, fmt.Errorf("failed to extract document: %w", err)
	}

	resourceID, err := p.resources.CreateWithDocument(
		ctx,
		"PDF: "+fingerprint.Filename,
		fingerprint.Filename,
		fingerprint.ContentHash,
		len(doc.Pages),
	)
	if err != nil {
		// A concurrent run won the insert race; the document is handled.
		if errors.Is(err, storage.ErrAlreadyProcessed) {
			logger.InfoContext(ctx, "document already processed, skipping", "file", fingerprint.Filename)
			return result, nil
		}
		return result, fmt.Errorf("failed to create resource: %w", err)
	}

	var (
		mu    sync.Mutex
		total int
	)

	g := new(errgroup.Group)
	g.SetLimit(pageWorkers)

	for _, page := range doc.Pages {
		g.Go(func() error {
			count := p.processPage(ctx, page, resourceID)
			mu.Lock()
			total += count
			mu.Unlock()
			return nil
		})
	}
	// Workers always return nil; failures are settled inside processPage.
	_ = g.Wait()

	result.Processed = true
	result.EmbeddingsCount = total

	logger.InfoContext(ctx, "processed document",
		"file", fingerprint.Filename,
		"pages", len(doc.Pages),
		"embeddings", total,
	)
	return result, nil
}
