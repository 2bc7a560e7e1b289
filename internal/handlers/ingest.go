package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"

	"ragforge/internal/contextutil"
	"ragforge/internal/ingest"
)

// IngestHandler handles HTTP requests to trigger an ingestion run.
type IngestHandler struct {
	pipeline *ingest.Pipeline
	pdfDir   string
	running  atomic.Bool
}

// NewIngestHandler creates a new IngestHandler.
func NewIngestHandler(pipeline *ingest.Pipeline, pdfDir string) *IngestHandler {
	return &IngestHandler{
		pipeline: pipeline,
		pdfDir:   pdfDir,
	}
}

// IngestResponse represents the response to an ingestion trigger.
type IngestResponse struct {
	Status string `json:"status"`
}

// ServeHTTP triggers an ingestion run over the configured PDF directory.
// The run executes in the background; the response is 202 Accepted once the
// run has started. Only one run may be in flight at a time, a second
// trigger while a run is active returns 409 Conflict.
func (h *IngestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if !h.running.CompareAndSwap(false, true) {
		logger.WarnContext(ctx, "ingestion already running")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(IngestResponse{Status: "already_running"})
		return
	}

	// Detach from the request context so the run outlives the response.
	runCtx := contextutil.WithLogger(context.Background(), logger)
	go func() {
		defer h.running.Store(false)
		summary, err := h.pipeline.Run(runCtx, h.pdfDir)
		if err != nil {
			logger.ErrorContext(runCtx, "ingestion run failed", "error", err)
			return
		}
		logger.InfoContext(runCtx, "ingestion run finished",
			"total", summary.Total,
			"processed", summary.Processed,
			"skipped", summary.Skipped,
			"embeddings", summary.TotalEmbeddings,
		)
	}()

	logger.InfoContext(ctx, "ingestion run started", "dir", h.pdfDir)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(IngestResponse{Status: "started"})
}
