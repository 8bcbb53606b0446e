package corpus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gita-explorer-api/internal/models"
)

type stubRepository struct {
	chapters []models.Chapter
	err      error
}

func (s stubRepository) LoadChapters(ctx context.Context) ([]models.Chapter, error) {
	return s.chapters, s.err
}

func (s stubRepository) Source() string {
	return "stub"
}

func verse(id, english, theme string) models.Verse {
	return models.Verse{
		Verse:     id,
		Sanskrit:  "sanskrit " + id,
		Hindi:     "hindi " + id,
		English:   english,
		Theme:     theme,
		PsychLink: "psych " + id,
	}
}

func sampleCorpus(t *testing.T) *Corpus {
	t.Helper()
	c, err := New([]models.Chapter{
		{Number: 2, Verses: []models.Verse{
			verse("2.47", "You have a right to perform your duty", "duty"),
			verse("2.48", "Perform action being steadfast in yoga", "equanimity"),
			verse("2.14", "Contacts of the senses give rise to heat and cold", "endurance"),
		}},
		{Number: 3, Verses: []models.Verse{
			verse("3.8", "Perform your prescribed duty, for action is better than inaction", "duty"),
			verse("3.35", "Better is one's own duty though imperfect", "duty"),
		}},
		{Number: 6, Verses: []models.Verse{
			verse("6.5", "Elevate yourself through the power of your mind", "self"),
			verse("6.6", "For one who has conquered the mind, the mind is the best of friends", "self"),
		}},
	})
	require.NoError(t, err)
	return c
}

func TestNew_AssignsChapterAndCounts(t *testing.T) {
	c := sampleCorpus(t)

	assert.Equal(t, 3, c.ChapterCount())
	assert.Equal(t, 7, c.VerseCount())

	chapters := c.Chapters()
	require.Len(t, chapters, 3)
	assert.Equal(t, []int{2, 3, 6}, []int{chapters[0].Number, chapters[1].Number, chapters[2].Number})
	for _, ch := range chapters {
		for _, v := range ch.Verses {
			assert.Equal(t, ch.Number, v.Chapter, "verse %s", v.Verse)
		}
	}
}

func TestNew_KeepsSourceChapterOrder(t *testing.T) {
	c, err := New([]models.Chapter{
		{Number: 10, Verses: []models.Verse{verse("10.20", "I am the self", "divinity")}},
		{Number: 1, Verses: []models.Verse{verse("1.1", "Dhritarashtra said", "war")}},
	})
	require.NoError(t, err)

	chapters := c.Chapters()
	assert.Equal(t, 10, chapters[0].Number)
	assert.Equal(t, 1, chapters[1].Number)
}

func TestNew_RejectsInvalidShape(t *testing.T) {
	tests := []struct {
		name     string
		chapters []models.Chapter
	}{
		{
			name: "verse prefix does not match chapter",
			chapters: []models.Chapter{
				{Number: 2, Verses: []models.Verse{verse("3.1", "text", "duty")}},
			},
		},
		{
			name: "prefix without separator",
			chapters: []models.Chapter{
				{Number: 2, Verses: []models.Verse{verse("247", "text", "duty")}},
			},
		},
		{
			name: "chapter 1 does not own chapter 12 ids",
			chapters: []models.Chapter{
				{Number: 1, Verses: []models.Verse{verse("12.1", "text", "devotion")}},
			},
		},
		{
			name: "duplicate verse",
			chapters: []models.Chapter{
				{Number: 2, Verses: []models.Verse{verse("2.1", "a", "x"), verse("2.1", "b", "y")}},
			},
		},
		{
			name: "duplicate chapter",
			chapters: []models.Chapter{
				{Number: 2, Verses: []models.Verse{verse("2.1", "a", "x")}},
				{Number: 2, Verses: []models.Verse{verse("2.2", "b", "y")}},
			},
		},
		{
			name: "conflicting chapter field",
			chapters: []models.Chapter{
				{Number: 2, Verses: []models.Verse{{Chapter: 4, Verse: "2.1"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.chapters)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCorpus)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	chapters := []models.Chapter{
		{Number: 2, Verses: []models.Verse{verse("2.47", "You have a right to perform your duty", "duty")}},
	}
	c, err := New(chapters)
	require.NoError(t, err)

	chapters[0].Verses[0].English = "changed"

	v, ok := c.Locate(2, "47")
	require.True(t, ok)
	assert.Equal(t, "You have a right to perform your duty", v.English)
}

func TestLoad_WrapsErrors(t *testing.T) {
	cause := errors.New("file not found")
	_, err := Load(context.Background(), stubRepository{err: cause})
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "stub", loadErr.Source)
	assert.ErrorIs(t, err, cause)

	_, err = Load(context.Background(), stubRepository{chapters: []models.Chapter{
		{Number: 1, Verses: []models.Verse{verse("2.1", "a", "b")}},
	}})
	require.ErrorAs(t, err, &loadErr)
	assert.ErrorIs(t, err, ErrInvalidCorpus)
}

func TestLoad_Success(t *testing.T) {
	c, err := Load(context.Background(), stubRepository{chapters: []models.Chapter{
		{Number: 2, Verses: []models.Verse{verse("2.47", "duty", "duty")}},
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, c.VerseCount())
}
