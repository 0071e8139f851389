package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Safety labels derived from the source is_safe flag.
const (
	LabelPotable    = "Potable"
	LabelNotPotable = "No potable"
)

// Column names the loader requires.
const (
	ColumnID     = "id"
	ColumnIsSafe = "is_safe"
)

// jsonNumberRe is the JSON number grammar. strconv.ParseFloat accepts more
// ("NaN", "Inf", "0x1p-2") than a JSON encoder may emit verbatim.
var jsonNumberRe = regexp.MustCompile(`^-?(0|[1-9]\d*)(\.\d+)?([eE][+-]?\d+)?$`)

// Attribute is a pass-through column of a measurement row.
type Attribute struct {
	Name  string
	Value string
}

// Measurement is one sample of the water-quality dataset.
type Measurement struct {
	ID         string
	IsSafe     string
	Attributes []Attribute
}

// Attr returns the raw value of a pass-through column.
func (m Measurement) Attr(name string) (string, bool) {
	for _, a := range m.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// MarshalJSON renders the measurement as a flat object: id first, the
// attributes in source column order, is_safe last.
func (m Measurement) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeField := func(name string, raw []byte) {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(name)
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(raw)
	}

	id, err := json.Marshal(m.ID)
	if err != nil {
		return nil, err
	}
	writeField(ColumnID, id)

	for _, a := range m.Attributes {
		raw, err := attributeJSON(a.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal attribute %q: %w", a.Name, err)
		}
		writeField(a.Name, raw)
	}

	label, err := json.Marshal(m.IsSafe)
	if err != nil {
		return nil, err
	}
	writeField(ColumnIsSafe, label)

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func attributeJSON(v string) ([]byte, error) {
	if jsonNumberRe.MatchString(v) {
		return []byte(v), nil
	}
	return json.Marshal(v)
}

// SafetyLabel recodes the source flag. Only a numeric 1 is potable.
func SafetyLabel(flag string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(flag), 64)
	if err == nil && v == 1 {
		return LabelPotable
	}
	return LabelNotPotable
}

// Layout records where the required columns sit in a source header.
type Layout struct {
	columns []string
	idIdx   int
	safeIdx int
}

// NewLayout validates a header row. Column names are trimmed and a leading
// UTF-8 byte order mark is dropped.
func NewLayout(header []string) (Layout, error) {
	l := Layout{
		columns: make([]string, len(header)),
		idIdx:   -1,
		safeIdx: -1,
	}
	seen := make(map[string]struct{}, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return Layout{}, fmt.Errorf("column %d has an empty name", i+1)
		}
		if _, dup := seen[name]; dup {
			return Layout{}, fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = struct{}{}
		l.columns[i] = name

		switch name {
		case ColumnID:
			l.idIdx = i
		case ColumnIsSafe:
			l.safeIdx = i
		}
	}

	var missing []string
	if l.idIdx < 0 {
		missing = append(missing, ColumnID)
	}
	if l.safeIdx < 0 {
		missing = append(missing, ColumnIsSafe)
	}
	if len(missing) > 0 {
		return Layout{}, fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}
	return l, nil
}

// Columns returns the normalized header.
func (l Layout) Columns() []string {
	return append([]string(nil), l.columns...)
}

// ParseRow builds a Measurement from one data row.
func (l Layout) ParseRow(row []string) (Measurement, error) {
	if len(row) != len(l.columns) {
		return Measurement{}, fmt.Errorf("expected %d fields, got %d", len(l.columns), len(row))
	}

	id := strings.TrimSpace(row[l.idIdx])
	if id == "" {
		return Measurement{}, errors.New("empty id")
	}

	m := Measurement{
		ID:         id,
		IsSafe:     SafetyLabel(row[l.safeIdx]),
		Attributes: make([]Attribute, 0, len(row)-2),
	}
	for i, v := range row {
		if i == l.idIdx || i == l.safeIdx {
			continue
		}
		m.Attributes = append(m.Attributes, Attribute{Name: l.columns[i], Value: strings.TrimSpace(v)})
	}
	return m, nil
}
