// Command genmock writes a synthetic water-quality dataset and a matching
// starter lexicon TSV for local development. The dataset uses the column set
// of the laboratory export and round-trips through csvsource, so the output
// can be served by cmd/waterapi and checked with cmd/validate.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -rows 200 -seed 42 \
//	  -dataset-out Dataset/waterQuality1.csv \
//	  -lexicon-out data/wordnet.tsv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/couchcryptid/water-quality-api/internal/adapter/csvsource"
	"github.com/couchcryptid/water-quality-api/internal/adapter/wordnet"
	"github.com/couchcryptid/water-quality-api/internal/domain"
)

// contaminant is a measured column with its plausible value range.
type contaminant struct {
	name string
	max  float64
}

var contaminants = []contaminant{
	{"aluminium", 5.05}, {"ammonia", 29.84}, {"arsenic", 1.05}, {"barium", 4.94},
	{"cadmium", 0.13}, {"chloramine", 8.68}, {"chromium", 0.9}, {"copper", 2},
	{"flouride", 1.5}, {"bacteria", 1}, {"viruses", 1}, {"lead", 0.2},
	{"nitrates", 19.83}, {"nitrites", 2.93}, {"mercury", 0.01}, {"perchlorate", 60.01},
	{"radium", 7.99}, {"selenium", 0.1}, {"silver", 0.5}, {"uranium", 0.09},
}

// starterLexicon covers the words the chatbot is most often asked about.
var starterLexicon = []wordnet.Entry{
	{Synset: "safe.a.01", POS: "a", Lemma: "safe"},
	{Synset: "safe.a.01", POS: "a", Lemma: "potable"},
	{Synset: "potable.s.01", POS: "s", Lemma: "potable"},
	{Synset: "potable.s.01", POS: "s", Lemma: "drinkable"},
	{Synset: "unsafe.a.01", POS: "a", Lemma: "unsafe"},
	{Synset: "unsafe.a.01", POS: "a", Lemma: "no"},
	{Synset: "water.n.01", POS: "n", Lemma: "water"},
	{Synset: "water.n.01", POS: "n", Lemma: "H2O"},
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rows := flag.Int("rows", 100, "number of measurements to generate")
	seed := flag.Uint64("seed", 42, "random seed for reproducible output")
	datasetOut := flag.String("dataset-out", "", "output path for the dataset CSV")
	lexiconOut := flag.String("lexicon-out", "", "optional output path for the starter lexicon TSV")
	flag.Parse()

	if *datasetOut == "" || *rows <= 0 {
		flag.Usage()
		return fmt.Errorf("missing required flags: -dataset-out, -rows > 0")
	}

	if err := writeDataset(*datasetOut, *rows, *seed); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}

	// Read the file back through the production loader.
	records, err := csvsource.Load(*datasetOut, csvsource.DefaultDelimiter)
	if err != nil {
		return fmt.Errorf("verifying dataset: %w", err)
	}
	log.Printf("wrote dataset: %s (%d records)", *datasetOut, len(records))
	printStats(records)

	if *lexiconOut != "" {
		if err := writeLexicon(*lexiconOut); err != nil {
			return fmt.Errorf("writing lexicon: %w", err)
		}
		log.Printf("wrote lexicon: %s (%d lemmas)", *lexiconOut, len(starterLexicon))
	}
	return nil
}

func writeDataset(path string, rows int, seed uint64) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = csvsource.DefaultDelimiter

	header := make([]string, 0, len(contaminants)+2)
	for _, c := range contaminants {
		header = append(header, c.name)
	}
	header = append(header, domain.ColumnIsSafe, domain.ColumnID)
	if err := w.Write(header); err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range rows {
		row := make([]string, 0, len(header))
		for _, c := range contaminants {
			// Roughly 2% of cells are left blank, as in real exports.
			if rng.IntN(50) == 0 {
				row = append(row, "")
				continue
			}
			row = append(row, strconv.FormatFloat(rng.Float64()*c.max, 'f', 2, 64))
		}
		safe := "0"
		if rng.IntN(9) == 0 {
			safe = "1"
		}
		row = append(row, safe, fmt.Sprintf("%05d", i+1))
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func writeLexicon(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'
	for _, e := range starterLexicon {
		if err := w.Write([]string{e.Synset, e.POS, e.Lemma}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func printStats(records []domain.Measurement) {
	counts := map[string]int{}
	blanks := 0
	for _, m := range records {
		counts[m.IsSafe]++
		for _, a := range m.Attributes {
			if a.Value == "" {
				blanks++
			}
		}
	}
	fmt.Printf("\n%-12s %d\n", domain.LabelPotable, counts[domain.LabelPotable])
	fmt.Printf("%-12s %d\n", domain.LabelNotPotable, counts[domain.LabelNotPotable])
	fmt.Printf("%-12s %d\n", "blank cells", blanks)
}
