package wordnet

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const schema = `
CREATE TABLE synsets (
	id  TEXT PRIMARY KEY,
	pos TEXT NOT NULL
);
CREATE TABLE lemmas (
	synset_id TEXT NOT NULL REFERENCES synsets(id),
	name      TEXT NOT NULL,
	UNIQUE(synset_id, name)
);
CREATE INDEX idx_lemmas_name ON lemmas(lower(name));
CREATE INDEX idx_lemmas_synset ON lemmas(synset_id);`

// Entry is one lemma of one synset.
type Entry struct {
	Synset string
	POS    string
	Lemma  string
}

// ReadTSV parses "synset<TAB>pos<TAB>lemma" lines. Blank lines and lines
// starting with '#' are skipped.
func ReadTSV(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.FieldsPerRecord = 3
	cr.LazyQuotes = true

	var entries []Entry
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read lexicon tsv: %w", err)
		}
		e := Entry{
			Synset: strings.TrimSpace(rec[0]),
			POS:    strings.TrimSpace(rec[1]),
			Lemma:  strings.TrimSpace(rec[2]),
		}
		if e.Synset == "" || e.Lemma == "" {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("read lexicon tsv: line %d: synset and lemma are required", line)
		}
		entries = append(entries, e)
	}
}

// Build creates a new database at path holding entries. It refuses to
// overwrite an existing file.
func Build(ctx context.Context, path string, entries []Entry) (err error) {
	if _, statErr := os.Stat(path); statErr == nil {
		return fmt.Errorf("build wordnet database: %s already exists", path)
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return fmt.Errorf("build wordnet database: %w", err)
	}
	defer func() {
		if cerr := db.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	synStmt, err := tx.PrepareContext(ctx, `INSERT INTO synsets (id, pos) VALUES (?, ?) ON CONFLICT(id) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("prepare synsets: %w", err)
	}
	defer synStmt.Close()

	lemmaStmt, err := tx.PrepareContext(ctx, `INSERT INTO lemmas (synset_id, name) VALUES (?, ?) ON CONFLICT DO NOTHING`)
	if err != nil {
		return fmt.Errorf("prepare lemmas: %w", err)
	}
	defer lemmaStmt.Close()

	for _, e := range entries {
		if _, err := synStmt.ExecContext(ctx, e.Synset, e.POS); err != nil {
			return fmt.Errorf("insert synset %s: %w", e.Synset, err)
		}
		if _, err := lemmaStmt.ExecContext(ctx, e.Synset, e.Lemma); err != nil {
			return fmt.Errorf("insert lemma %s/%s: %w", e.Synset, e.Lemma, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
