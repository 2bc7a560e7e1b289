package storage

import (
	"context"
	"errors"
	"testing"
)

func TestResourceRepo_CreateWithDocument(t *testing.T) {
	db := newTestDB(t)
	repo := NewResourceRepo(db)
	ctx := context.Background()

	resourceID, err := repo.CreateWithDocument(ctx, "PDF: report.pdf", "report.pdf", "abc123", 12)
	if err != nil {
		t.Fatalf("CreateWithDocument() error = %v", err)
	}
	if resourceID == "" {
		t.Fatal("CreateWithDocument() returned empty resource ID")
	}

	doc, err := repo.GetDocumentByFingerprint(ctx, "report.pdf", "abc123")
	if err != nil {
		t.Fatalf("GetDocumentByFingerprint() error = %v", err)
	}
	if doc.ResourceID != resourceID {
		t.Errorf("ResourceID = %q, want %q", doc.ResourceID, resourceID)
	}
	if doc.PageCount != 12 {
		t.Errorf("PageCount = %d, want 12", doc.PageCount)
	}
	if doc.LastProcessedAt.IsZero() {
		t.Error("LastProcessedAt is zero")
	}

	count, err := repo.CountResources(ctx)
	if err != nil {
		t.Fatalf("CountResources() error = %v", err)
	}
	if count != 1 {
		t.Errorf("CountResources() = %d, want 1", count)
	}
}

func TestResourceRepo_CreateWithDocument_Duplicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewResourceRepo(db)
	ctx := context.Background()

	if _, err := repo.CreateWithDocument(ctx, "PDF: report.pdf", "report.pdf", "abc123", 3); err != nil {
		t.Fatalf("first CreateWithDocument() error = %v", err)
	}

	// Same fingerprint hits the unique constraint
	_, err := repo.CreateWithDocument(ctx, "PDF: report.pdf", "report.pdf", "abc123", 3)
	if !errors.Is(err, ErrAlreadyProcessed) {
		t.Fatalf("duplicate CreateWithDocument() error = %v, want ErrAlreadyProcessed", err)
	}

	// The losing insert must not leave a bare resource behind
	count, err := repo.CountResources(ctx)
	if err != nil {
		t.Fatalf("CountResources() error = %v", err)
	}
	if count != 1 {
		t.Errorf("CountResources() = %d, want 1 (duplicate rolled back)", count)
	}
}

func TestResourceRepo_CreateWithDocument_NewHashIsNewDocument(t *testing.T) {
	db := newTestDB(t)
	repo := NewResourceRepo(db)
	ctx := context.Background()

	if _, err := repo.CreateWithDocument(ctx, "PDF: report.pdf", "report.pdf", "hash-v1", 3); err != nil {
		t.Fatalf("CreateWithDocument() error = %v", err)
	}

	// Same filename, different content hash: a distinct logical document
	if _, err := repo.CreateWithDocument(ctx, "PDF: report.pdf", "report.pdf", "hash-v2", 3); err != nil {
		t.Fatalf("CreateWithDocument() with new hash error = %v", err)
	}

	count, err := repo.CountResources(ctx)
	if err != nil {
		t.Fatalf("CountResources() error = %v", err)
	}
	if count != 2 {
		t.Errorf("CountResources() = %d, want 2", count)
	}
}

func TestResourceRepo_DocumentExists(t *testing.T) {
	db := newTestDB(t)
	repo := NewResourceRepo(db)
	ctx := context.Background()

	exists, err := repo.DocumentExists(ctx, "report.pdf", "abc123")
	if err != nil {
		t.Fatalf("DocumentExists() error = %v", err)
	}
	if exists {
		t.Error("DocumentExists() = true before insert")
	}

	if _, err := repo.CreateWithDocument(ctx, "PDF: report.pdf", "report.pdf", "abc123", 1); err != nil {
		t.Fatalf("CreateWithDocument() error = %v", err)
	}

	exists, err = repo.DocumentExists(ctx, "report.pdf", "abc123")
	if err != nil {
		t.Fatalf("DocumentExists() error = %v", err)
	}
	if !exists {
		t.Error("DocumentExists() = false after insert")
	}

	// Different hash does not match
	exists, err = repo.DocumentExists(ctx, "report.pdf", "other")
	if err != nil {
		t.Fatalf("DocumentExists() error = %v", err)
	}
	if exists {
		t.Error("DocumentExists() = true for different hash")
	}
}

func TestResourceRepo_GetDocumentByFingerprint_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewResourceRepo(db)

	_, err := repo.GetDocumentByFingerprint(context.Background(), "missing.pdf", "none")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetDocumentByFingerprint() error = %v, want ErrNotFound", err)
	}
}

func TestResourceRepo_Delete_Cascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewResourceRepo(db)
	embRepo := NewEmbeddingRepo(db)
	ctx := context.Background()

	resourceID, err := repo.CreateWithDocument(ctx, "PDF: report.pdf", "report.pdf", "abc123", 1)
	if err != nil {
		t.Fatalf("CreateWithDocument() error = %v", err)
	}

	embedding := &EmbeddingRecord{ID: "emb-1", ResourceID: resourceID, Content: "chunk text"}
	link := &PageLinkRecord{ID: "link-1", EmbeddingID: "emb-1", PageNumber: 1, PageTitle: "Intro"}
	if err := embRepo.Insert(ctx, embedding, link); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if err := repo.Delete(ctx, resourceID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	count, err := repo.CountResources(ctx)
	if err != nil {
		t.Fatalf("CountResources() error = %v", err)
	}
	if count != 0 {
		t.Errorf("CountResources() = %d, want 0", count)
	}

	embCount, err := embRepo.CountEmbeddings(ctx)
	if err != nil {
		t.Fatalf("CountEmbeddings() error = %v", err)
	}
	if embCount != 0 {
		t.Errorf("CountEmbeddings() = %d, want 0 after cascade", embCount)
	}

	var links int
	if err := db.QueryRow("SELECT COUNT(*) FROM page_embedding_links").Scan(&links); err != nil {
		t.Fatalf("count links error = %v", err)
	}
	if links != 0 {
		t.Errorf("page_embedding_links count = %d, want 0 after cascade", links)
	}
}
