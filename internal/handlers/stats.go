package handlers

import (
	"encoding/json"
	"net/http"

	"ragforge/internal/contextutil"
	"ragforge/internal/storage"
	"ragforge/internal/vectorstore"
)

// StatsHandler handles HTTP requests for ingestion statistics.
type StatsHandler struct {
	resources      storage.ResourceStore
	embeddings     storage.EmbeddingStore
	vectorStore    vectorstore.VectorStore
	collectionName string
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(
	resources storage.ResourceStore,
	embeddings storage.EmbeddingStore,
	vectorStore vectorstore.VectorStore,
	collectionName string,
) *StatsHandler {
	return &StatsHandler{
		resources:      resources,
		embeddings:     embeddings,
		vectorStore:    vectorStore,
		collectionName: collectionName,
	}
}

// StatsResponse represents ingestion statistics.
type StatsResponse struct {
	Resources  int    `json:"resources"`
	Embeddings int    `json:"embeddings"`
	Points     int    `json:"points"`
	Collection string `json:"collection"`
	VectorSize int    `json:"vector_size"`
}

// ServeHTTP reports stored resource, embedding, and vector point counts.
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	resourceCount, err := h.resources.CountResources(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to count resources", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	embeddingCount, err := h.embeddings.CountEmbeddings(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to count embeddings", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := StatsResponse{
		Resources:  resourceCount,
		Embeddings: embeddingCount,
		Collection: h.collectionName,
	}

	// Collection info is best effort; stats stay useful when Qdrant is down.
	if info, err := h.vectorStore.GetCollectionInfo(ctx, h.collectionName); err != nil {
		logger.WarnContext(ctx, "failed to get collection info", "error", err)
	} else {
		response.Points = info.PointsCount
		response.VectorSize = info.VectorSize
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.ErrorContext(ctx, "failed to encode stats response", "error", err)
	}
}
