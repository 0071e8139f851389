package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportThenLookup(t *testing.T) {
	dir := t.TempDir()
	tsv := filepath.Join(dir, "wordnet.tsv")
	db := filepath.Join(dir, "wordnet.db")
	require.NoError(t, os.WriteFile(tsv, []byte("safe.a.01\ta\tsafe\nsafe.a.01\ta\tpotable\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, newApp(&out).Run([]string{"lexicon", "import", "--tsv", tsv, "--db", db}))
	assert.Contains(t, out.String(), "imported 2 lemmas")

	out.Reset()
	require.NoError(t, newApp(&out).Run([]string{"lexicon", "lookup", "--db", db, "SAFE", "agua"}))
	assert.Equal(t, "SAFE: potable, safe\nagua: \n", out.String())
}

func TestLookup_Datamuse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "safe", r.URL.Query().Get("rel_syn"))
		_ = json.NewEncoder(w).Encode([]map[string]any{{"word": "secure", "score": 10}})
	}))
	defer srv.Close()

	var out bytes.Buffer
	require.NoError(t, newApp(&out).Run([]string{"lexicon", "lookup", "--backend", "datamuse", "--url", srv.URL, "safe"}))
	assert.Equal(t, "safe: secure\n", out.String())
}

func TestLookup_MissingDatabase(t *testing.T) {
	var out bytes.Buffer
	err := newApp(&out).Run([]string{"lexicon", "lookup", "--db", filepath.Join(t.TempDir(), "nope.db"), "safe"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lexicon unavailable")
}

func TestLookup_UnknownBackend(t *testing.T) {
	var out bytes.Buffer
	err := newApp(&out).Run([]string{"lexicon", "lookup", "--backend", "nltk", "safe"})
	require.Error(t, err)
}
