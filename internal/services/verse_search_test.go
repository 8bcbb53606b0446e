package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gita-explorer-api/internal/corpus"
	"github.com/gita-explorer-api/internal/models"
)

func newTestService(t *testing.T) *VerseSearchService {
	t.Helper()
	c, err := corpus.New([]models.Chapter{
		{Number: 2, Verses: []models.Verse{
			{Verse: "2.47", English: "You have a right to perform your duty", Theme: "duty"},
			{Verse: "2.48", English: "Perform action being steadfast in yoga", Theme: "equanimity"},
		}},
		{Number: 3, Verses: []models.Verse{
			{Verse: "3.35", English: "Better is one's own duty", Theme: "duty"},
		}},
		{Number: 6, Verses: []models.Verse{
			{Verse: "6.5", English: "Elevate yourself through the mind", Theme: "self"},
			{Verse: "6.6", English: "The mind is the best of friends", Theme: "self"},
		}},
	})
	require.NoError(t, err)
	return NewVerseSearchService(c)
}

func TestParseReference(t *testing.T) {
	tests := []struct {
		query   string
		chapter int
		verse   string
		ok      bool
	}{
		{"2.47", 2, "47", true},
		{" 18.66 ", 18, "66", true},
		{"2.47.1", 2, "47.1", true},
		{"02.47", 2, "47", true},
		{"2.", 2, "", true},
		{"2.abc", 2, "abc", true},
		{"duty", 0, "", false},
		{".47", 0, "", false},
		{"a.47", 0, "", false},
		{"-2.47", 0, "", false},
		{"2 .47", 0, "", false},
		{"", 0, "", false},
		{"99999999999999999999.1", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			chapter, verse, ok := ParseReference(tt.query)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.chapter, chapter)
			assert.Equal(t, tt.verse, verse)
		})
	}
}

func TestQuery_Reference(t *testing.T) {
	s := newTestService(t)

	results := s.Query("2.47")
	require.Len(t, results, 1)
	assert.Equal(t, "2.47", results[0].Verse.Verse)
	assert.Equal(t, []string{"self", "equanimity"}, results[0].RelatedThemes)
	assert.Equal(t, "Related themes: self, equanimity", results[0].Recommend)
}

func TestQuery_UnknownReferenceDoesNotFallBack(t *testing.T) {
	s := newTestService(t)

	results := s.Query("2.99")
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestQuery_Keywords(t *testing.T) {
	s := newTestService(t)

	results := s.Query("mind")
	require.Len(t, results, 2)
	assert.Equal(t, "6.5", results[0].Verse.Verse)
	assert.Equal(t, "6.6", results[1].Verse.Verse)
	for _, r := range results {
		assert.NotContains(t, r.RelatedThemes, "self")
		assert.Equal(t, []string{"duty", "equanimity"}, r.RelatedThemes)
	}

	assert.Empty(t, s.Query("zzz-nomatch"))
	assert.Empty(t, s.Query(""))
}

func TestRelatedThemes(t *testing.T) {
	s := newTestService(t)

	resp := s.RelatedThemes("duty")
	assert.Equal(t, "duty", resp.Exclude)
	assert.Equal(t, []string{"self", "equanimity"}, resp.Themes)
	assert.Equal(t, "Related themes: self, equanimity", resp.Summary)
}
