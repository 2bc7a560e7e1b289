package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_embedding_store.go -package=mocks ragforge/internal/storage EmbeddingStore

import (
	"context"
	"database/sql"
	"fmt"
)

// EmbeddingStore defines the interface for embedding storage operations.
type EmbeddingStore interface {
	// Insert inserts an embedding row and its page provenance link in one
	// transaction. Both record IDs must be set (UUID) before calling.
	Insert(ctx context.Context, embedding *EmbeddingRecord, link *PageLinkRecord) error
	// ListIDsByResource returns all embedding IDs for a resource. Used to
	// remove vector store points when a resource is deleted.
	ListIDsByResource(ctx context.Context, resourceID string) ([]string, error)
	// CountEmbeddings returns the total number of stored embeddings.
	CountEmbeddings(ctx context.Context) (int, error)
}

// EmbeddingRepo provides methods for embedding operations.
// It implements the EmbeddingStore interface.
type EmbeddingRepo struct {
	db *sql.DB
}

// NewEmbeddingRepo creates a new EmbeddingRepo.
func NewEmbeddingRepo(db *sql.DB) *EmbeddingRepo {
	return &EmbeddingRepo{db: db}
}

// DB returns the underlying database handle.
func (r *EmbeddingRepo) DB() *sql.DB {
	return r.db
}

// Insert inserts an embedding row and its page provenance link in one
// transaction. The link references the embedding row, so partial inserts
// would strand provenance; the transaction keeps them together.
func (r *EmbeddingRepo) Insert(ctx context.Context, embedding *EmbeddingRecord, link *PageLinkRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO embeddings (id, resource_id, content) VALUES (?, ?, ?)",
		embedding.ID, embedding.ResourceID, embedding.Content,
	); err != nil {
		return fmt.Errorf("failed to insert embedding: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO page_embedding_links (id, embedding_id, page_number, page_title) VALUES (?, ?, ?, ?)",
		link.ID, link.EmbeddingID, link.PageNumber, link.PageTitle,
	); err != nil {
		return fmt.Errorf("failed to insert page embedding link: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit embedding insert: %w", err)
	}

	return nil
}

// ListIDsByResource returns all embedding IDs for a resource.
// Returns an empty slice if none exist (not an error).
func (r *EmbeddingRepo) ListIDsByResource(ctx context.Context, resourceID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id FROM embeddings WHERE resource_id = ?",
		resourceID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query embedding IDs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan embedding ID: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return ids, nil
}

// CountEmbeddings returns the total number of stored embeddings.
func (r *EmbeddingRepo) CountEmbeddings(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM embeddings").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count embeddings: %w", err)
	}
	return count, nil
}
