package document

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gita-explorer-api/internal/models"
	"github.com/gita-explorer-api/internal/repository"
)

// Ensure VerseRepository implements repository.CorpusRepository
var _ repository.CorpusRepository = (*VerseRepository)(nil)

// VerseRepository reads a corpus document of the form
//
//	{"chapters": {"2": [{"verse": "2.47", "sanskrit": ..., "hindi": ..., "english": ..., "theme": ..., "psych_link": ...}]}}
//
// from a JSON file, or the same structure from a YAML file (.yaml or .yml).
type VerseRepository struct {
	path string
}

// NewVerseRepository creates a repository for the document at path
func NewVerseRepository(path string) *VerseRepository {
	return &VerseRepository{path: path}
}

// Source returns the document path
func (r *VerseRepository) Source() string {
	return r.path
}

// verseRecord mirrors one verse object; pointers tell a missing key from an empty value
type verseRecord struct {
	Verse     *string `json:"verse" yaml:"verse"`
	Sanskrit  *string `json:"sanskrit" yaml:"sanskrit"`
	Hindi     *string `json:"hindi" yaml:"hindi"`
	English   *string `json:"english" yaml:"english"`
	Theme     *string `json:"theme" yaml:"theme"`
	PsychLink *string `json:"psych_link" yaml:"psych_link"`
}

type rawChapter struct {
	key     string
	records []verseRecord
}

// LoadChapters reads and decodes the document, keeping chapter key order
func (r *VerseRepository) LoadChapters(ctx context.Context) ([]models.Chapter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read corpus document: %w", err)
	}

	var raw []rawChapter
	switch strings.ToLower(filepath.Ext(r.path)) {
	case ".yaml", ".yml":
		raw, err = decodeYAML(data)
	default:
		raw, err = decodeJSON(data)
	}
	if err != nil {
		return nil, err
	}

	return toChapters(raw)
}

func decodeJSON(data []byte) ([]rawChapter, error) {
	var doc struct {
		Chapters json.RawMessage `json:"chapters"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse json document: %w", err)
	}
	if len(doc.Chapters) == 0 || string(doc.Chapters) == "null" {
		return nil, errors.New(`document has no "chapters" object`)
	}

	// Decode token by token so chapters come back in document order.
	dec := json.NewDecoder(bytes.NewReader(doc.Chapters))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse chapters: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New(`"chapters" must be an object keyed by chapter number`)
	}

	var raw []rawChapter
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse chapters: %w", err)
		}
		key, _ := tok.(string)

		var records []verseRecord
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("parse chapter %q: %w", key, err)
		}
		raw = append(raw, rawChapter{key: key, records: records})
	}
	return raw, nil
}

func decodeYAML(data []byte) ([]rawChapter, error) {
	var doc struct {
		Chapters yaml.Node `yaml:"chapters"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml document: %w", err)
	}
	if doc.Chapters.Kind != yaml.MappingNode {
		return nil, errors.New(`document has no "chapters" mapping`)
	}

	content := doc.Chapters.Content
	raw := make([]rawChapter, 0, len(content)/2)
	for i := 0; i+1 < len(content); i += 2 {
		key := content[i].Value

		var records []verseRecord
		if err := content[i+1].Decode(&records); err != nil {
			return nil, fmt.Errorf("parse chapter %q: %w", key, err)
		}
		raw = append(raw, rawChapter{key: key, records: records})
	}
	return raw, nil
}

func toChapters(raw []rawChapter) ([]models.Chapter, error) {
	chapters := make([]models.Chapter, 0, len(raw))
	for _, rc := range raw {
		number, err := strconv.Atoi(rc.key)
		if err != nil {
			return nil, fmt.Errorf("chapter key %q is not an integer", rc.key)
		}

		verses := make([]models.Verse, 0, len(rc.records))
		for i, rec := range rc.records {
			v, err := rec.toVerse(number)
			if err != nil {
				return nil, fmt.Errorf("chapter %q entry %d: %w", rc.key, i, err)
			}
			verses = append(verses, v)
		}
		chapters = append(chapters, models.Chapter{Number: number, Verses: verses})
	}
	return chapters, nil
}

func (rec verseRecord) toVerse(chapter int) (models.Verse, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{"verse", rec.Verse},
		{"sanskrit", rec.Sanskrit},
		{"hindi", rec.Hindi},
		{"english", rec.English},
		{"theme", rec.Theme},
		{"psych_link", rec.PsychLink},
	}
	for _, f := range fields {
		if f.value == nil {
			return models.Verse{}, fmt.Errorf("missing field %q", f.name)
		}
	}

	return models.Verse{
		Chapter:   chapter,
		Verse:     *rec.Verse,
		Sanskrit:  *rec.Sanskrit,
		Hindi:     *rec.Hindi,
		English:   *rec.English,
		Theme:     *rec.Theme,
		PsychLink: *rec.PsychLink,
	}, nil
}
