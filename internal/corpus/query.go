package corpus

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gita-explorer-api/internal/models"
)

const (
	// MaxSearchResults caps the number of verses returned by Search
	MaxSearchResults = 5
	// MaxRelatedThemes caps the number of labels returned by RecommendThemes
	MaxRelatedThemes = 3
)

// RankedMatch pairs a verse with its keyword score
type RankedMatch struct {
	Verse models.Verse `json:"verse"`
	Score int          `json:"score"`
}

// Locate returns the verse with id "<chapter>.<verse>". The verse part is
// compared as an opaque string, never re-parsed as a number.
func (c *Corpus) Locate(chapter int, verse string) (models.Verse, bool) {
	key := strconv.Itoa(chapter) + "." + verse
	for _, v := range c.chapters[chapter] {
		if v.Verse == key {
			return v, true
		}
	}
	return models.Verse{}, false
}

// Rank scores every verse against query and returns the matches with a
// positive score, best first. Equal scores keep corpus order.
//
// A verse scores one point for each query keyword (repeats included) that
// occurs anywhere in its english text, hindi text or theme. Matching is
// plain substring containment, so "act" also hits "action".
func (c *Corpus) Rank(query string) []RankedMatch {
	matches := []RankedMatch{}

	keywords := strings.Fields(strings.ToLower(query))
	if len(keywords) == 0 {
		return matches
	}

	c.each(func(v models.Verse) {
		text := strings.ToLower(v.English + " " + v.Hindi + " " + v.Theme)
		score := 0
		for _, k := range keywords {
			if strings.Contains(text, k) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, RankedMatch{Verse: v, Score: score})
		}
	})

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// Search returns at most MaxSearchResults verses matching query, best first
func (c *Corpus) Search(query string) []models.Verse {
	matches := c.Rank(query)
	if len(matches) > MaxSearchResults {
		matches = matches[:MaxSearchResults]
	}

	verses := make([]models.Verse, len(matches))
	for i, m := range matches {
		verses[i] = m.Verse
	}
	return verses
}

// RecommendThemes returns up to MaxRelatedThemes theme labels other than
// exclude, most frequent first. Labels with equal counts keep the order in
// which they were first seen.
func (c *Corpus) RecommendThemes(exclude string) []string {
	counts := make(map[string]int)
	themes := []string{}

	c.each(func(v models.Verse) {
		if v.Theme == exclude {
			return
		}
		if _, ok := counts[v.Theme]; !ok {
			themes = append(themes, v.Theme)
		}
		counts[v.Theme]++
	})

	sort.SliceStable(themes, func(i, j int) bool {
		return counts[themes[i]] > counts[themes[j]]
	})
	if len(themes) > MaxRelatedThemes {
		themes = themes[:MaxRelatedThemes]
	}
	return themes
}

// FormatRelatedThemes renders themes as a one-line summary
func FormatRelatedThemes(themes []string) string {
	return "Related themes: " + strings.Join(themes, ", ")
}
