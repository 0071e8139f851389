// Command validate performs data integrity checks on a water-quality dataset
// before it is deployed: header layout, row shape, id uniqueness, safety flag
// values, and a full load through the same code path the API uses. With
// -lexicon it also checks that a WordNet SQLite database answers lookups.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -dataset Dataset/waterQuality1.csv \
//	  -lexicon data/wordnet.db
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/couchcryptid/water-quality-api/internal/adapter/csvsource"
	"github.com/couchcryptid/water-quality-api/internal/adapter/wordnet"
	"github.com/couchcryptid/water-quality-api/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	datasetPath := flag.String("dataset", "", "path to the semicolon-delimited dataset")
	delimiter := flag.String("delimiter", ";", "field delimiter")
	lexiconPath := flag.String("lexicon", "", "optional path to a WordNet SQLite database")
	flag.Parse()

	if *datasetPath == "" || len([]rune(*delimiter)) != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(os.Stdout, *datasetPath, []rune(*delimiter)[0], *lexiconPath); code != 0 {
		os.Exit(code)
	}
}

func run(out io.Writer, datasetPath string, delimiter rune, lexiconPath string) int {
	fmt.Fprintln(out, "=== Water Quality Dataset Validation ===")
	fmt.Fprintln(out)

	header, rows, err := loadRows(datasetPath, delimiter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: read dataset: %v\n", err)
		return 1
	}

	// ── Run validation phases ──
	phases := []*phase{
		validateHeader(header),
		validateRows(header, rows),
		validateSafetyFlags(header, rows),
		validateLoad(datasetPath, delimiter, len(rows)),
	}
	if lexiconPath != "" {
		phases = append(phases, validateLexicon(lexiconPath))
	}

	// ── Report results ──
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(out, "  %-42s %s\n", p.name, status)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Records: %d rows, %d columns\n", len(rows), len(header))
	printLabelDistribution(out, header, rows)

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Fprintln(out, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(out, "\nValidation FAILED.")
	return 1
}

// ── Data loading ──

// csvRow is a raw data row with its 1-based line number.
type csvRow struct {
	lineNum int
	fields  []string
}

// loadRows reads the file without enforcing field counts so shape problems
// can be reported per row instead of aborting the read.
func loadRows(path string, delimiter rune) ([]string, []csvRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delimiter
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, errors.New("empty file")
	}
	if err != nil {
		return nil, nil, err
	}

	var rows []csvRow
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return header, rows, nil
		}
		if err != nil {
			return nil, nil, err
		}
		line, _ := r.FieldPos(0)
		rows = append(rows, csvRow{lineNum: line, fields: rec})
	}
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")) == name {
			return i
		}
	}
	return -1
}

// ── Phases ──

func validateHeader(header []string) *phase {
	p := &phase{name: "Header layout"}
	if _, err := domain.NewLayout(header); err != nil {
		p.errorf("%v", err)
	}
	return p
}

func validateRows(header []string, rows []csvRow) *phase {
	p := &phase{name: "Row shape and id uniqueness"}
	idIdx := columnIndex(header, domain.ColumnID)

	seen := make(map[string]int, len(rows))
	for _, row := range rows {
		if len(row.fields) != len(header) {
			p.errorf("line %d: %d fields (expected %d)", row.lineNum, len(row.fields), len(header))
			continue
		}
		if idIdx < 0 {
			continue
		}
		id := strings.TrimSpace(row.fields[idIdx])
		if id == "" {
			p.errorf("line %d: empty id", row.lineNum)
			continue
		}
		if first, dup := seen[id]; dup {
			p.errorf("line %d: duplicate id %q (first seen on line %d)", row.lineNum, id, first)
			continue
		}
		seen[id] = row.lineNum
	}
	return p
}

func validateSafetyFlags(header []string, rows []csvRow) *phase {
	p := &phase{name: "Safety flag values (0 or 1)"}
	idx := columnIndex(header, domain.ColumnIsSafe)
	if idx < 0 {
		p.errorf("no %s column", domain.ColumnIsSafe)
		return p
	}

	odd := make(map[string][]int)
	for _, row := range rows {
		if idx >= len(row.fields) {
			continue
		}
		switch v := strings.TrimSpace(row.fields[idx]); v {
		case "0", "1", "0.0", "1.0":
		default:
			odd[v] = append(odd[v], row.lineNum)
		}
	}

	values := make([]string, 0, len(odd))
	for v := range odd {
		values = append(values, v)
	}
	sort.Strings(values)
	for _, v := range values {
		lines := odd[v]
		p.errorf("value %q on %d row(s), first on line %d (recoded as %q)", v, len(lines), lines[0], domain.SafetyLabel(v))
	}
	return p
}

func validateLoad(path string, delimiter rune, rowCount int) *phase {
	p := &phase{name: "Full load through csvsource"}
	records, err := csvsource.Load(path, delimiter)
	if err != nil {
		p.errorf("%v", err)
		return p
	}
	if len(records) != rowCount {
		p.errorf("loaded %d records from %d rows", len(records), rowCount)
	}
	for _, m := range records {
		if m.IsSafe != domain.LabelPotable && m.IsSafe != domain.LabelNotPotable {
			p.errorf("id %s: unexpected label %q", m.ID, m.IsSafe)
		}
	}
	return p
}

func validateLexicon(path string) *phase {
	p := &phase{name: "WordNet lexicon"}
	if _, err := os.Stat(path); err != nil {
		p.errorf("%v", err)
		return p
	}

	lex, err := wordnet.Open(path)
	if err != nil {
		p.errorf("%v", err)
		return p
	}
	defer lex.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := lex.Ping(ctx); err != nil {
		p.errorf("ping: %v", err)
		return p
	}
	if _, err := lex.Synonyms(ctx, "potable"); err != nil {
		p.errorf("lookup: %v", err)
	}
	return p
}

func printLabelDistribution(out io.Writer, header []string, rows []csvRow) {
	idx := columnIndex(header, domain.ColumnIsSafe)
	if idx < 0 {
		return
	}
	counts := map[string]int{}
	for _, row := range rows {
		if idx < len(row.fields) {
			counts[domain.SafetyLabel(row.fields[idx])]++
		}
	}
	fmt.Fprintf(out, "Labels:  %d %s, %d %s\n",
		counts[domain.LabelPotable], domain.LabelPotable,
		counts[domain.LabelNotPotable], domain.LabelNotPotable)
}
