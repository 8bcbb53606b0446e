package startup

import (
	"context"
	"fmt"
	"log"

	"github.com/gita-explorer-api/internal/config"
	"github.com/gita-explorer-api/internal/corpus"
	"github.com/gita-explorer-api/internal/db"
	"github.com/gita-explorer-api/internal/repository"
	"github.com/gita-explorer-api/internal/repository/database"
	"github.com/gita-explorer-api/internal/repository/document"
)

// LoadCorpus loads the corpus from the backend selected in cfg. Database
// connections are closed again once the verses are in memory.
func LoadCorpus(ctx context.Context, cfg *config.Config) (*corpus.Corpus, error) {
	var repo repository.CorpusRepository

	switch cfg.CorpusBackend {
	case config.BackendFile, "":
		repo = document.NewVerseRepository(cfg.CorpusPath)
	case config.BackendPostgres, config.BackendSQLite:
		conn, err := db.Connect(ctx, cfg.CorpusBackend, cfg.DatabaseURI)
		if err != nil {
			return nil, &corpus.LoadError{Source: cfg.CorpusBackend, Err: err}
		}
		defer func() {
			if err := conn.Close(); err != nil {
				log.Printf("Error closing %s: %v", cfg.CorpusBackend, err)
			}
		}()
		repo = database.NewVerseRepository(conn)
	default:
		return nil, &corpus.LoadError{
			Source: cfg.CorpusBackend,
			Err:    fmt.Errorf("unknown corpus backend %q", cfg.CorpusBackend),
		}
	}

	c, err := corpus.Load(ctx, repo)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d verses in %d chapters from %s", c.VerseCount(), c.ChapterCount(), repo.Source())
	return c, nil
}
