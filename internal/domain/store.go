package domain

import (
	"slices"
	"strings"
)

// Store is the in-memory dataset. It is filled once before serving begins and
// never mutated afterwards, so concurrent reads need no locking.
type Store struct {
	records []Measurement
}

// NewStore takes ownership of a copy of records, preserving their order.
func NewStore(records []Measurement) *Store {
	return &Store{records: slices.Clone(records)}
}

// Len reports the number of loaded measurements.
func (s *Store) Len() int {
	return len(s.records)
}

// All returns every measurement, or ErrEmptyDataset when nothing was loaded.
func (s *Store) All() ([]Measurement, error) {
	if len(s.records) == 0 {
		return nil, ErrEmptyDataset
	}
	return slices.Clone(s.records), nil
}

// ByID returns the first measurement with the given id.
func (s *Store) ByID(id string) (Measurement, bool) {
	for _, m := range s.records {
		if m.ID == id {
			return m, true
		}
	}
	return Measurement{}, false
}

// ByLabel returns every measurement whose safety label contains label,
// ignoring case. An empty label matches everything.
func (s *Store) ByLabel(label string) []Measurement {
	needle := strings.ToLower(label)
	out := []Measurement{}
	for _, m := range s.records {
		if strings.Contains(strings.ToLower(m.IsSafe), needle) {
			out = append(out, m)
		}
	}
	return out
}

// Search returns the measurements matching any term, in dataset order.
func (s *Store) Search(terms TermSet) []Measurement {
	return Match(s.records, terms)
}
