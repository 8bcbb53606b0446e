package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gita-explorer-api/internal/models"
	"github.com/gita-explorer-api/internal/repository"
)

// Ensure VerseRepository implements repository.CorpusRepository
var _ repository.CorpusRepository = (*VerseRepository)(nil)

// Schema creates the verses table. It is valid for both PostgreSQL and SQLite.
const Schema = `
CREATE TABLE IF NOT EXISTS verses (
	chapter    INTEGER NOT NULL,
	position   INTEGER NOT NULL,
	verse      TEXT    NOT NULL,
	sanskrit   TEXT    NOT NULL,
	hindi      TEXT    NOT NULL,
	english    TEXT    NOT NULL,
	theme      TEXT    NOT NULL,
	psych_link TEXT    NOT NULL,
	PRIMARY KEY (chapter, position)
)`

// VerseRepository reads the corpus from a SQL verses table
type VerseRepository struct {
	db *sqlx.DB
}

// NewVerseRepository creates a new SQL verse repository
func NewVerseRepository(db *sqlx.DB) *VerseRepository {
	return &VerseRepository{db: db}
}

// Source identifies the database driver and table
func (r *VerseRepository) Source() string {
	return r.db.DriverName() + ":verses"
}

// LoadChapters reads every verse ordered by chapter and stored position
func (r *VerseRepository) LoadChapters(ctx context.Context) ([]models.Chapter, error) {
	var verses []models.Verse
	if err := r.db.SelectContext(ctx, &verses, `
		SELECT chapter, verse, sanskrit, hindi, english, theme, psych_link
		FROM verses
		ORDER BY chapter, position
	`); err != nil {
		return nil, fmt.Errorf("select verses: %w", err)
	}

	chapters := []models.Chapter{}
	for _, v := range verses {
		last := len(chapters) - 1
		if last < 0 || chapters[last].Number != v.Chapter {
			chapters = append(chapters, models.Chapter{Number: v.Chapter})
			last++
		}
		chapters[last].Verses = append(chapters[last].Verses, v)
	}
	return chapters, nil
}

// EnsureSchema creates the verses table if it does not exist
func (r *VerseRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create verses table: %w", err)
	}
	return nil
}

// ReplaceVerses swaps the table contents for chapters in a single transaction
func (r *VerseRepository) ReplaceVerses(ctx context.Context, chapters []models.Chapter) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM verses`); err != nil {
		return 0, fmt.Errorf("clear verses: %w", err)
	}

	insert := tx.Rebind(`
		INSERT INTO verses (chapter, position, verse, sanskrit, hindi, english, theme, psych_link)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)

	count := 0
	for _, ch := range chapters {
		for i, v := range ch.Verses {
			if _, err := tx.ExecContext(ctx, insert,
				ch.Number, i, v.Verse, v.Sanskrit, v.Hindi, v.English, v.Theme, v.PsychLink,
			); err != nil {
				return 0, fmt.Errorf("insert verse %s: %w", v.Verse, err)
			}
			count++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit verses: %w", err)
	}
	return count, nil
}
