// Command lexicon builds and queries the synonym dictionary used by the
// chatbot endpoint.
//
//	lexicon import --tsv wordnet.tsv --db data/wordnet.db
//	lexicon lookup --db data/wordnet.db safe
//	lexicon lookup --backend datamuse safe
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/couchcryptid/water-quality-api/internal/adapter/datamuse"
	"github.com/couchcryptid/water-quality-api/internal/adapter/wordnet"
	"github.com/couchcryptid/water-quality-api/internal/config"
	"github.com/couchcryptid/water-quality-api/internal/domain"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "lexicon",
		Usage:     "Build and query the chatbot synonym dictionary",
		Writer:    out,
		ErrWriter: os.Stderr,
		Commands: []*cli.Command{
			{
				Name:   "import",
				Usage:  "Create a WordNet SQLite database from a synset<TAB>pos<TAB>lemma file",
				Action: importCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "tsv",
						Aliases:  []string{"t"},
						Usage:    "Path to the TSV export",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path of the database to create",
						Value:   "data/wordnet.db",
					},
				},
			},
			{
				Name:      "lookup",
				Usage:     "Print the synonyms of one or more words",
				ArgsUsage: "WORD...",
				Action:    lookupCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "backend",
						Usage: "Lexicon backend (wordnet, datamuse)",
						Value: config.LexiconWordNet,
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to the WordNet SQLite database",
						Value:   "data/wordnet.db",
					},
					&cli.StringFlag{
						Name:  "url",
						Usage: "Datamuse base URL",
						Value: datamuse.DefaultBaseURL,
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "Per-lookup timeout",
						Value: 5 * time.Second,
					},
				},
			},
		},
	}
}

func importCommand(c *cli.Context) error {
	f, err := os.Open(c.String("tsv"))
	if err != nil {
		return err
	}
	defer f.Close()

	entries, err := wordnet.ReadTSV(f)
	if err != nil {
		return err
	}

	dbPath := c.String("db")
	if err := wordnet.Build(c.Context, dbPath, entries); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "imported %d lemmas into %s\n", len(entries), dbPath)
	return nil
}

func lookupCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("at least one WORD is required", 2)
	}

	lex, closeFn, err := openLexicon(c)
	if err != nil {
		return err
	}
	defer closeFn()

	for _, word := range c.Args().Slice() {
		ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
		synonyms, err := lex.Synonyms(ctx, strings.ToLower(word))
		cancel()
		if err != nil {
			return fmt.Errorf("lookup %q: %w", word, err)
		}
		fmt.Fprintf(c.App.Writer, "%s: %s\n", word, strings.Join(synonyms, ", "))
	}
	return nil
}

func openLexicon(c *cli.Context) (domain.Lexicon, func(), error) {
	switch backend := c.String("backend"); backend {
	case config.LexiconWordNet:
		lex, err := wordnet.Open(c.String("db"))
		if err != nil {
			return nil, nil, err
		}
		return lex, func() { _ = lex.Close() }, nil
	case config.LexiconDatamuse:
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		return datamuse.NewClient(c.String("url"), c.Duration("timeout"), 100, logger), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", backend)
	}
}
