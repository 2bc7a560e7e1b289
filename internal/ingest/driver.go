package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"ragforge/internal/contextutil"
)

// Run processes every PDF file in dir under a bounded worker pool and
// returns a run summary. Individual document failures are logged and
// counted as skipped; only a directory-level failure is returned as an
// error. A run therefore always completes once the directory is readable.
func (p *Pipeline) Run(ctx context.Context, dir string) (Summary, error) {
	logger := contextutil.LoggerFromContext(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to read input directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	summary := Summary{Total: len(paths)}
	logger.InfoContext(ctx, "starting pipeline run", "dir", dir, "files", len(paths))

	if len(paths) == 0 {
		logger.InfoContext(ctx, "no PDF files found", "dir", dir)
		return summary, nil
	}

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(documentWorkers)

	for _, path := range paths {
		g.Go(func() error {
			result, err := p.ProcessDocument(ctx, path)
			if err != nil {
				logger.ErrorContext(ctx, "failed to process document", "file", filepath.Base(path), "error", err)
				return nil
			}
			if result.Processed {
				mu.Lock()
				summary.Processed++
				summary.TotalEmbeddings += result.EmbeddingsCount
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	summary.Skipped = summary.Total - summary.Processed

	logger.InfoContext(ctx, "pipeline run completed",
		"total", summary.Total,
		"processed", summary.Processed,
		"skipped", summary.Skipped,
		"embeddings", summary.TotalEmbeddings,
	)
	return summary, nil
}
