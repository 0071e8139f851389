// Package csvsource loads the measurement dataset from a delimited text file.
package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/couchcryptid/water-quality-api/internal/domain"
)

// DefaultDelimiter is the separator used by the laboratory export.
const DefaultDelimiter = ';'

// Load reads the dataset at path.
func Load(path string, delimiter rune) ([]domain.Measurement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	records, err := Read(f, delimiter)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return records, nil
}

// Read parses a header row followed by data rows. Every row must have as many
// fields as the header and ids must be unique. A header with no rows yields an
// empty, non-nil slice.
func Read(r io.Reader, delimiter rune) ([]domain.Measurement, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = 0

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	layout, err := domain.NewLayout(header)
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	records := []domain.Measurement{}
	seen := make(map[string]int)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := cr.FieldPos(0)
		m, err := layout.ParseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if first, dup := seen[m.ID]; dup {
			return nil, fmt.Errorf("line %d: duplicate id %q (first seen on line %d)", line, m.ID, first)
		}
		seen[m.ID] = line
		records = append(records, m)
	}
	return records, nil
}
