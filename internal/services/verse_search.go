package services

import (
	"strconv"
	"strings"

	"github.com/gita-explorer-api/internal/corpus"
	"github.com/gita-explorer-api/internal/models"
)

// VerseSearchService answers verse queries against a loaded corpus
type VerseSearchService struct {
	corpus *corpus.Corpus
}

// NewVerseSearchService creates a new verse search service
func NewVerseSearchService(c *corpus.Corpus) *VerseSearchService {
	return &VerseSearchService{corpus: c}
}

// Corpus returns the underlying read-only corpus
func (s *VerseSearchService) Corpus() *corpus.Corpus {
	return s.corpus
}

// ParseReference splits a "chapter.verse" reference. The chapter part must be
// all ASCII digits; the verse part is returned as-is.
func ParseReference(query string) (chapter int, verse string, ok bool) {
	head, tail, found := strings.Cut(strings.TrimSpace(query), ".")
	if !found || head == "" {
		return 0, "", false
	}
	for _, r := range head {
		if r < '0' || r > '9' {
			return 0, "", false
		}
	}
	n, err := strconv.Atoi(head)
	if err != nil {
		return 0, "", false
	}
	return n, tail, true
}

// Query dispatches a free-form query: references go to exact lookup, anything
// else to keyword search. Unknown references yield an empty result.
func (s *VerseSearchService) Query(query string) []models.VerseResult {
	query = strings.TrimSpace(query)
	if chapter, verse, ok := ParseReference(query); ok {
		result, found := s.Verse(chapter, verse)
		if !found {
			return []models.VerseResult{}
		}
		return []models.VerseResult{result}
	}
	return s.Search(query)
}

// Verse looks up a single verse by reference
func (s *VerseSearchService) Verse(chapter int, verse string) (models.VerseResult, bool) {
	v, ok := s.corpus.Locate(chapter, verse)
	if !ok {
		return models.VerseResult{}, false
	}
	return s.augment(v), true
}

// Search runs a keyword search
func (s *VerseSearchService) Search(query string) []models.VerseResult {
	verses := s.corpus.Search(query)
	results := make([]models.VerseResult, len(verses))
	for i, v := range verses {
		results[i] = s.augment(v)
	}
	return results
}

// RelatedThemes returns the themes recommended alongside exclude
func (s *VerseSearchService) RelatedThemes(exclude string) models.ThemesResponse {
	themes := s.corpus.RecommendThemes(exclude)
	return models.ThemesResponse{
		Exclude: exclude,
		Themes:  themes,
		Summary: corpus.FormatRelatedThemes(themes),
	}
}

func (s *VerseSearchService) augment(v models.Verse) models.VerseResult {
	themes := s.corpus.RecommendThemes(v.Theme)
	return models.VerseResult{
		Verse:         v,
		Recommend:     corpus.FormatRelatedThemes(themes),
		RelatedThemes: themes,
	}
}
