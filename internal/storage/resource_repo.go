package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_resource_store.go -package=mocks ragforge/internal/storage ResourceStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyProcessed is returned when a document with the same
	// (filename, content_hash) fingerprint has already been ingested.
	ErrAlreadyProcessed = errors.New("document already processed")
)

// ResourceStore defines the interface for resource and document-metadata
// storage operations.
type ResourceStore interface {
	// CreateWithDocument creates a resource and its document metadata row in
	// one transaction and returns the new resource ID. Returns
	// ErrAlreadyProcessed if a document with the same (filename, contentHash)
	// fingerprint already exists.
	CreateWithDocument(ctx context.Context, content, filename, contentHash string, pageCount int) (string, error)
	// DocumentExists reports whether a document with the given fingerprint
	// has already been ingested.
	DocumentExists(ctx context.Context, filename, contentHash string) (bool, error)
	// GetDocumentByFingerprint gets the document metadata for a fingerprint.
	// Returns ErrNotFound if not found.
	GetDocumentByFingerprint(ctx context.Context, filename, contentHash string) (*DocumentRecord, error)
	// Delete removes a resource; document metadata, embedding rows and page
	// links cascade. The caller is responsible for removing vector store
	// points.
	Delete(ctx context.Context, resourceID string) error
	// CountResources returns the total number of resources.
	CountResources(ctx context.Context) (int, error)
}

// ResourceRepo provides methods for resource operations.
// It implements the ResourceStore interface.
type ResourceRepo struct {
	db *sql.DB
}

// NewResourceRepo creates a new ResourceRepo.
func NewResourceRepo(db *sql.DB) *ResourceRepo {
	return &ResourceRepo{db: db}
}

// DB returns the underlying database handle. Used by the stats handler for
// ad hoc aggregate queries.
func (r *ResourceRepo) DB() *sql.DB {
	return r.db
}

// CreateWithDocument creates a resource and its document metadata row in one
// transaction. Either both rows exist afterwards or neither does, so a
// metadata insert failure cannot leak a bare resource.
func (r *ResourceRepo) CreateWithDocument(ctx context.Context, content, filename, contentHash string, pageCount int) (string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	resourceID := uuid.New().String()
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO resources (id, content) VALUES (?, ?)",
		resourceID, content,
	); err != nil {
		return "", fmt.Errorf("failed to insert resource: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO document_metadata (id, resource_id, filename, content_hash, page_count) VALUES (?, ?, ?, ?, ?)",
		uuid.New().String(), resourceID, filename, contentHash, pageCount,
	); err != nil {
		if isUniqueViolation(err) {
			return "", ErrAlreadyProcessed
		}
		return "", fmt.Errorf("failed to insert document metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit resource creation: %w", err)
	}

	return resourceID, nil
}

// DocumentExists reports whether a document with the given fingerprint has
// already been ingested. This is the dedup fast path; the UNIQUE constraint
// on (filename, content_hash) remains the authoritative guard.
func (r *ResourceRepo) DocumentExists(ctx context.Context, filename, contentHash string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM document_metadata WHERE filename = ? AND content_hash = ? LIMIT 1",
		filename, contentHash,
	).Scan(&one)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check document existence: %w", err)
	}
	return true, nil
}

// GetDocumentByFingerprint gets the document metadata row for a fingerprint.
// Returns ErrNotFound if not found.
func (r *ResourceRepo) GetDocumentByFingerprint(ctx context.Context, filename, contentHash string) (*DocumentRecord, error) {
	var doc DocumentRecord
	var processedAtStr string

	err := r.db.QueryRowContext(ctx,
		"SELECT id, resource_id, filename, content_hash, page_count, last_processed_at FROM document_metadata WHERE filename = ? AND content_hash = ?",
		filename, contentHash,
	).Scan(&doc.ID, &doc.ResourceID, &doc.Filename, &doc.ContentHash, &doc.PageCount, &processedAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query document metadata: %w", err)
	}

	doc.LastProcessedAt, err = parseSQLiteTime(processedAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse last_processed_at timestamp: %w", err)
	}

	return &doc, nil
}

// Delete removes a resource by ID; children cascade.
func (r *ResourceRepo) Delete(ctx context.Context, resourceID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM resources WHERE id = ?", resourceID)
	if err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}
	return nil
}

// CountResources returns the total number of resources.
func (r *ResourceRepo) CountResources(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM resources").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count resources: %w", err)
	}
	return count, nil
}

// isUniqueViolation reports whether err is a SQLite unique-constraint
// violation.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
