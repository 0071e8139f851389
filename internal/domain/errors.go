package domain

import "errors"

var (
	// ErrEmptyDataset is returned when the full listing is requested but no
	// measurements were loaded. An empty dataset is treated as a lab-side fault,
	// not as an empty result.
	ErrEmptyDataset = errors.New("no water quality measurements available")

	// ErrLexiconUnavailable marks failures to reach the synonym dictionary.
	ErrLexiconUnavailable = errors.New("lexicon unavailable")
)
