package repository

import (
	"context"

	"github.com/gita-explorer-api/internal/models"
)

// CorpusRepository defines read access to a verse corpus source
type CorpusRepository interface {
	// LoadChapters reads every chapter with its verses in source order
	LoadChapters(ctx context.Context) ([]models.Chapter, error)

	// Source describes where the chapters are read from, for logs and errors
	Source() string
}
