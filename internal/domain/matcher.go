package domain

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// TermSet is the expanded set of lower-cased match terms for one query.
type TermSet map[string]struct{}

// Add inserts a term. Empty strings are ignored.
func (t TermSet) Add(term string) {
	if term == "" {
		return
	}
	t[term] = struct{}{}
}

// Has reports whether term is in the set.
func (t TermSet) Has(term string) bool {
	_, ok := t[term]
	return ok
}

// Sorted returns the terms in lexical order, for logging and tests.
func (t TermSet) Sorted() []string {
	out := make([]string, 0, len(t))
	for term := range t {
		out = append(out, term)
	}
	slices.Sort(out)
	return out
}

// Tokenize lower-cases text and splits it on Unicode word boundaries
// (UAX #29). Segments without a letter or digit are dropped, so whitespace
// and punctuation never become tokens.
func Tokenize(text string) []string {
	// cases.Caser is stateful; one per call.
	text = cases.Lower(language.Und).String(norm.NFKC.String(text))

	var tokens []string
	state := -1
	for len(text) > 0 {
		var word string
		word, text, state = uniseg.FirstWordInString(text, state)
		if isWord(word) {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func isWord(segment string) bool {
	for _, r := range segment {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// Expand unions tokens with the synonyms the lexicon returns for each of
// them. Each distinct token is looked up once. A lexicon failure aborts the
// whole expansion.
func Expand(ctx context.Context, lexicon Lexicon, tokens []string) (TermSet, error) {
	terms := make(TermSet, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		terms.Add(tok)

		synonyms, err := lexicon.Synonyms(ctx, tok)
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", tok, err)
		}
		for _, syn := range synonyms {
			terms.Add(strings.ToLower(syn))
		}
	}
	return terms, nil
}

// Match returns the records whose lower-cased safety label contains any term,
// preserving input order. It never returns nil.
func Match(records []Measurement, terms TermSet) []Measurement {
	out := []Measurement{}
	if len(terms) == 0 {
		return out
	}
	for _, m := range records {
		label := strings.ToLower(m.IsSafe)
		for term := range terms {
			if strings.Contains(label, term) {
				out = append(out, m)
				break
			}
		}
	}
	return out
}
