// Command gita looks up Bhagavad Gita verses from the terminal, using the
// same corpus sources and query rules as the API server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/gita-explorer-api/internal/config"
	"github.com/gita-explorer-api/internal/corpus"
	"github.com/gita-explorer-api/internal/services"
	"github.com/gita-explorer-api/internal/startup"
)

const version = "1.0.0"

var stdout io.Writer = os.Stdout

// Globals are the flags shared by every command.
type Globals struct {
	Corpus  string `name:"corpus" short:"c" help:"Corpus document (JSON or YAML)" env:"CORPUS_PATH" default:"gita_verses.json"`
	Backend string `name:"backend" help:"Corpus backend" env:"CORPUS_BACKEND" default:"file" enum:"file,postgres,sqlite"`
	DSN     string `name:"dsn" help:"Database URI for the postgres and sqlite backends" env:"DATABASE_URI"`
}

func (g *Globals) service() (*services.VerseSearchService, error) {
	cfg := *config.GetConfig()
	cfg.CorpusBackend = g.Backend
	cfg.CorpusPath = g.Corpus
	cfg.DatabaseURI = g.DSN

	c, err := startup.LoadCorpus(context.Background(), &cfg)
	if err != nil {
		return nil, err
	}
	return services.NewVerseSearchService(c), nil
}

// CLI defines the command-line interface for gita.
type CLI struct {
	Globals

	Verse   VerseCmd   `cmd:"" help:"Look up a verse by chapter.verse reference"`
	Search  SearchCmd  `cmd:"" help:"Keyword search over english, hindi and theme text"`
	Themes  ThemesCmd  `cmd:"" help:"Suggest the most frequent themes other than the given one"`
	Query   QueryCmd   `cmd:"" help:"Resolve a reference or keyword query like the web UI does"`
	Stats   StatsCmd   `cmd:"" help:"Print corpus statistics"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// VerseCmd looks up one verse.
type VerseCmd struct {
	Ref string `arg:"" help:"Verse reference, e.g. 2.47"`
}

func (c *VerseCmd) Run(g *Globals) error {
	chapter, verse, ok := services.ParseReference(c.Ref)
	if !ok {
		return fmt.Errorf("invalid reference %q, want chapter.verse", c.Ref)
	}
	svc, err := g.service()
	if err != nil {
		return err
	}
	result, found := svc.Verse(chapter, verse)
	if !found {
		return fmt.Errorf("verse %s not found", c.Ref)
	}
	return printJSON(result)
}

// SearchCmd runs a keyword search.
type SearchCmd struct {
	Words  []string `arg:"" help:"Keywords"`
	Scores bool     `help:"Print scores instead of full verses"`
}

func (c *SearchCmd) Run(g *Globals) error {
	svc, err := g.service()
	if err != nil {
		return err
	}
	query := strings.Join(c.Words, " ")

	if c.Scores {
		matches := svc.Corpus().Rank(query)
		if len(matches) > corpus.MaxSearchResults {
			matches = matches[:corpus.MaxSearchResults]
		}
		for _, m := range matches {
			fmt.Fprintf(stdout, "%-8s %d  %s\n", m.Verse.Verse, m.Score, m.Verse.English)
		}
		return nil
	}
	return printJSON(svc.Search(query))
}

// ThemesCmd recommends related themes.
type ThemesCmd struct {
	Theme string `arg:"" help:"Theme to exclude"`
}

func (c *ThemesCmd) Run(g *Globals) error {
	svc, err := g.service()
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, svc.RelatedThemes(c.Theme).Summary)
	return nil
}

// QueryCmd applies the reference-or-keywords dispatch.
type QueryCmd struct {
	Query []string `arg:"" help:"Reference or keywords"`
}

func (c *QueryCmd) Run(g *Globals) error {
	svc, err := g.service()
	if err != nil {
		return err
	}
	return printJSON(svc.Query(strings.Join(c.Query, " ")))
}

// StatsCmd prints chapter and verse counts.
type StatsCmd struct{}

func (c *StatsCmd) Run(g *Globals) error {
	svc, err := g.service()
	if err != nil {
		return err
	}
	gita := svc.Corpus()
	fmt.Fprintf(stdout, "chapters: %d\nverses:   %d\n", gita.ChapterCount(), gita.VerseCount())
	for _, ch := range gita.Chapters() {
		fmt.Fprintf(stdout, "  %3d  %d verses\n", ch.Number, len(ch.Verses))
	}
	return nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Fprintf(stdout, "gita version %s\n", version)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func main() {
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("gita"),
		kong.Description("Bhagavad Gita verse explorer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
