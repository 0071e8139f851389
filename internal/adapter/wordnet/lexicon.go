// Package wordnet serves synonyms from a read-only SQLite copy of WordNet.
//
// The database holds two tables:
//
//	synsets(id TEXT PRIMARY KEY, pos TEXT)
//	lemmas(synset_id TEXT, name TEXT)
//
// The synonyms of a word are the lemma names of every synset that lists the
// word, or one of its base forms under WordNet's detachment rules ("waters"
// reaches the noun "water"), as one of its lemmas. Multi-word lemmas keep WordNet's "_" separator
// ("drinking_water").
package wordnet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	"github.com/couchcryptid/water-quality-api/internal/domain"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// Lexicon implements domain.Lexicon over a WordNet SQLite database.
type Lexicon struct {
	db   *sql.DB
	path string
}

// Open prepares a read-only handle on the database at path. The file is not
// touched until the first lookup, so a missing database surfaces as
// domain.ErrLexiconUnavailable on Synonyms or Ping rather than here.
func Open(path string) (*Lexicon, error) {
	db, err := sql.Open(driverName, readOnlyDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open wordnet database: %w", err)
	}
	return &Lexicon{db: db, path: path}, nil
}

func readOnlyDSN(path string) string {
	u := url.URL{Scheme: "file", Opaque: path, RawQuery: "mode=ro"}
	return u.String()
}

// Synonyms returns the lower-cased lemma names sharing a synset with word or
// with one of its base forms.
func (l *Lexicon) Synonyms(ctx context.Context, word string) ([]string, error) {
	query, args := synonymsQuery(word)
	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, l.unavailable(ctx, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, l.unavailable(ctx, err)
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, l.unavailable(ctx, err)
	}
	return out, nil
}

// Ping checks that the database opens and carries the lemmas table.
func (l *Lexicon) Ping(ctx context.Context) error {
	var one int
	err := l.db.QueryRowContext(ctx, `SELECT 1 FROM lemmas LIMIT 1`).Scan(&one)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return l.unavailable(ctx, err)
	}
	return nil
}

// Close releases the connection pool.
func (l *Lexicon) Close() error {
	return l.db.Close()
}

func (l *Lexicon) unavailable(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("wordnet lookup: %w", ctxErr)
	}
	return fmt.Errorf("%w: wordnet %s: %w", domain.ErrLexiconUnavailable, l.path, err)
}
