package domain

import "context"

// Lexicon looks up synonyms for a single lower-cased word.
type Lexicon interface {
	// Synonyms returns every lemma related to word. A word the dictionary does
	// not know yields an empty slice and a nil error. Failures to reach the
	// dictionary wrap ErrLexiconUnavailable.
	Synonyms(ctx context.Context, word string) ([]string, error)
}

// Pinger is implemented by lexicons that can verify their backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}
