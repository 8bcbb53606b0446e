// Package corpus holds the in-memory verse collection and the lookup,
// keyword ranking and theme recommendation operations over it.
//
// A Corpus is built once and never mutated, so it can be shared by any
// number of concurrent readers without locking.
package corpus

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gita-explorer-api/internal/models"
	"github.com/gita-explorer-api/internal/repository"
)

// ErrInvalidCorpus is wrapped by every shape violation found while building a corpus
var ErrInvalidCorpus = errors.New("invalid corpus")

// LoadError reports that a corpus could not be loaded from its source
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load corpus from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Corpus is a read-only mapping from chapter number to its ordered verses
type Corpus struct {
	order    []int
	chapters map[int][]models.Verse
	size     int
}

// Load reads all chapters from repo and builds a corpus from them.
// Any failure is returned as a *LoadError.
func Load(ctx context.Context, repo repository.CorpusRepository) (*Corpus, error) {
	chapters, err := repo.LoadChapters(ctx)
	if err != nil {
		return nil, &LoadError{Source: repo.Source(), Err: err}
	}
	c, err := New(chapters)
	if err != nil {
		return nil, &LoadError{Source: repo.Source(), Err: err}
	}
	return c, nil
}

// New builds a corpus from chapters, keeping their order. Each verse id must
// carry its chapter number as prefix ("2.47" under chapter 2) and be unique
// within the chapter.
func New(chapters []models.Chapter) (*Corpus, error) {
	c := &Corpus{
		order:    make([]int, 0, len(chapters)),
		chapters: make(map[int][]models.Verse, len(chapters)),
	}

	for _, ch := range chapters {
		if _, dup := c.chapters[ch.Number]; dup {
			return nil, fmt.Errorf("%w: duplicate chapter %d", ErrInvalidCorpus, ch.Number)
		}

		prefix := strconv.Itoa(ch.Number) + "."
		seen := make(map[string]struct{}, len(ch.Verses))
		verses := make([]models.Verse, len(ch.Verses))
		for i, v := range ch.Verses {
			if !strings.HasPrefix(v.Verse, prefix) {
				return nil, fmt.Errorf("%w: verse %q stored under chapter %d", ErrInvalidCorpus, v.Verse, ch.Number)
			}
			if v.Chapter != 0 && v.Chapter != ch.Number {
				return nil, fmt.Errorf("%w: verse %q claims chapter %d but is stored under %d",
					ErrInvalidCorpus, v.Verse, v.Chapter, ch.Number)
			}
			if _, dup := seen[v.Verse]; dup {
				return nil, fmt.Errorf("%w: duplicate verse %q", ErrInvalidCorpus, v.Verse)
			}
			seen[v.Verse] = struct{}{}

			v.Chapter = ch.Number
			verses[i] = v
		}

		c.order = append(c.order, ch.Number)
		c.chapters[ch.Number] = verses
		c.size += len(verses)
	}

	return c, nil
}

// Chapters returns a copy of the corpus contents in iteration order
func (c *Corpus) Chapters() []models.Chapter {
	out := make([]models.Chapter, len(c.order))
	for i, n := range c.order {
		out[i] = models.Chapter{
			Number: n,
			Verses: append([]models.Verse(nil), c.chapters[n]...),
		}
	}
	return out
}

// ChapterCount returns the number of chapters
func (c *Corpus) ChapterCount() int {
	return len(c.order)
}

// VerseCount returns the number of verses across all chapters
func (c *Corpus) VerseCount() int {
	return c.size
}

// each visits every verse, chapters in stored order and verses in stored order within them
func (c *Corpus) each(fn func(v models.Verse)) {
	for _, n := range c.order {
		for _, v := range c.chapters[n] {
			fn(v)
		}
	}
}
