package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"ragforge/internal/config"
	"ragforge/internal/contextutil"
	"ragforge/internal/ingest"
	"ragforge/internal/llm"
	"ragforge/internal/storage"
	"ragforge/internal/vectorstore"
)

func main() {
	app := &cli.App{
		Name:  "ragforge-ingest",
		Usage: "Ingest a directory of PDF files into the knowledge base",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Directory of PDF files (overrides PDF_DIR)",
			},
		},
		Action: runIngest,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// runIngest wires storage, the vector store, and the embedding client, then
// runs the pipeline once. Partial per-document failures do not fail the
// command; only setup errors and a directory-level failure do.
func runIngest(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level := cfg.LogLevel
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	dir := cfg.PDFDir
	if c.String("dir") != "" {
		dir = c.String("dir")
	}

	db, err := storage.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	ctx := contextutil.WithLogger(context.Background(), logger)

	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
	if err != nil {
		return fmt.Errorf("failed to create Qdrant client: %w", err)
	}
	if err := vectorStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.QdrantVectorSize); err != nil {
		return fmt.Errorf("failed to ensure Qdrant collection: %w", err)
	}

	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.EmbeddingAPIKey, cfg.EmbeddingModelName, cfg.QdrantVectorSize)

	pipeline := ingest.NewPipeline(
		storage.NewResourceRepo(db),
		storage.NewEmbeddingRepo(db),
		embedder,
		vectorStore,
		cfg.QdrantCollection,
	)

	summary, err := pipeline.Run(ctx, dir)
	if err != nil {
		return err
	}

	fmt.Println("=== PDF Processing Summary ===")
	fmt.Printf("Total PDFs:       %d\n", summary.Total)
	fmt.Printf("Processed:        %d\n", summary.Processed)
	fmt.Printf("Skipped:          %d\n", summary.Skipped)
	fmt.Printf("Total embeddings: %d\n", summary.TotalEmbeddings)
	return nil
}
