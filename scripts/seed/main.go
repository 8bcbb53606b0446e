// seed
//
// This script copies a corpus document into the SQL verses table so the API
// can run with CORPUS_BACKEND=postgres or CORPUS_BACKEND=sqlite.
//
// The document is validated exactly as the API validates it at startup, and
// the table contents are replaced in a single transaction.
//
// Environment variables:
//   DATABASE_URI   - Connection string (overridden by -dsn)
//   CORPUS_PATH    - Corpus document (overridden by -input)
//
// Usage:
//   go run ./scripts/seed -input gita_verses.json -driver postgres -dsn postgres://localhost/gita
//   go run ./scripts/seed -input gita_verses.yaml -driver sqlite -dsn gita.db

package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/gita-explorer-api/internal/corpus"
	"github.com/gita-explorer-api/internal/db"
	"github.com/gita-explorer-api/internal/repository/database"
	"github.com/gita-explorer-api/internal/repository/document"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	input := flag.String("input", os.Getenv("CORPUS_PATH"), "Corpus document (JSON or YAML)")
	driver := flag.String("driver", db.DriverPostgres, "Database driver: postgres or sqlite")
	dsn := flag.String("dsn", os.Getenv("DATABASE_URI"), "Database connection string")
	flag.Parse()

	if *input == "" {
		*input = "gita_verses.json"
	}

	ctx := context.Background()

	gita, err := corpus.Load(ctx, document.NewVerseRepository(*input))
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}
	log.Printf("Read %d verses in %d chapters from %s", gita.VerseCount(), gita.ChapterCount(), *input)

	conn, err := db.Connect(ctx, *driver, *dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close()

	repo := database.NewVerseRepository(conn)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	n, err := repo.ReplaceVerses(ctx, gita.Chapters())
	if err != nil {
		log.Fatalf("Failed to write verses: %v", err)
	}
	log.Printf("Seeded %d verses into %s", n, repo.Source())
}
