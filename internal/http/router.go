package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ragforge/internal/handlers"
	"ragforge/internal/ingest"
	"ragforge/internal/storage"
	"ragforge/internal/vectorstore"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Pipeline    *ingest.Pipeline
	PDFDir      string
	Resources   storage.ResourceStore
	Embeddings  storage.EmbeddingStore
	VectorStore vectorstore.VectorStore
	Collection  string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Add logger and CORS middleware
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	ingestHandler := handlers.NewIngestHandler(deps.Pipeline, deps.PDFDir)
	healthHandler := handlers.NewHealthHandler(deps.VectorStore, deps.Collection)
	statsHandler := handlers.NewStatsHandler(deps.Resources, deps.Embeddings, deps.VectorStore, deps.Collection)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/ingest", ingestHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
		r.Method(http.MethodGet, "/stats", statsHandler)
	})

	return r
}
