package startup

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gita-explorer-api/internal/config"
	"github.com/gita-explorer-api/internal/corpus"
	"github.com/gita-explorer-api/internal/db"
	"github.com/gita-explorer-api/internal/models"
	"github.com/gita-explorer-api/internal/repository/database"
)

const testDocument = `{"chapters": {"2": [
  {"verse": "2.47", "sanskrit": "s", "hindi": "h", "english": "You have a right to perform your duty", "theme": "duty", "psych_link": "p"}
]}}`

func TestLoadCorpus_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gita_verses.json")
	require.NoError(t, os.WriteFile(path, []byte(testDocument), 0o644))

	c, err := LoadCorpus(context.Background(), &config.Config{CorpusBackend: config.BackendFile, CorpusPath: path})
	require.NoError(t, err)

	v, ok := c.Locate(2, "47")
	require.True(t, ok)
	assert.Equal(t, "duty", v.Theme)
}

func TestLoadCorpus_SQLite(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "gita.db")

	conn, err := db.Connect(ctx, db.DriverSQLite, dsn)
	require.NoError(t, err)
	repo := database.NewVerseRepository(conn)
	require.NoError(t, repo.EnsureSchema(ctx))
	_, err = repo.ReplaceVerses(ctx, []models.Chapter{
		{Number: 6, Verses: []models.Verse{{Verse: "6.5", English: "Elevate yourself", Theme: "self"}}},
	})
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	c, err := LoadCorpus(ctx, &config.Config{CorpusBackend: config.BackendSQLite, DatabaseURI: dsn})
	require.NoError(t, err)
	assert.Equal(t, 1, c.VerseCount())
	results := c.Search("elevate")
	require.Len(t, results, 1)
	assert.Equal(t, "6.5", results[0].Verse)
}

func TestLoadCorpus_Failures(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{"missing file", &config.Config{CorpusBackend: config.BackendFile, CorpusPath: filepath.Join(t.TempDir(), "none.json")}},
		{"unknown backend", &config.Config{CorpusBackend: "mongo"}},
		{"database without uri", &config.Config{CorpusBackend: config.BackendPostgres}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCorpus(context.Background(), tt.cfg)
			var loadErr *corpus.LoadError
			assert.ErrorAs(t, err, &loadErr)
		})
	}
}
