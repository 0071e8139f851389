package wordnet

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/couchcryptid/water-quality-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTSV = `# synset	pos	lemma
safe.a.01	a	safe
safe.a.01	a	Potable
drinkable.s.01	s	drinkable
drinkable.s.01	s	potable
water.n.01	n	water
water.n.01	n	H2O
water.n.06	n	body_of_water
water.n.06	n	water

`

func buildTestLexicon(t *testing.T) *Lexicon {
	t.Helper()
	entries, err := ReadTSV(strings.NewReader(testTSV))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "wordnet.db")
	require.NoError(t, Build(context.Background(), path, entries))

	lex, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = lex.Close() })
	return lex
}

func TestReadTSV(t *testing.T) {
	entries, err := ReadTSV(strings.NewReader(testTSV))
	require.NoError(t, err)
	require.Len(t, entries, 8)
	assert.Equal(t, Entry{Synset: "safe.a.01", POS: "a", Lemma: "safe"}, entries[0])
}

func TestReadTSV_MissingLemma(t *testing.T) {
	_, err := ReadTSV(strings.NewReader("safe.a.01\ta\t \n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestReadTSV_WrongFieldCount(t *testing.T) {
	_, err := ReadTSV(strings.NewReader("safe.a.01\tsafe\n"))
	require.Error(t, err)
}

func TestLexicon_Synonyms(t *testing.T) {
	lex := buildTestLexicon(t)
	ctx := context.Background()

	t.Run("single synset", func(t *testing.T) {
		got, err := lex.Synonyms(ctx, "safe")
		require.NoError(t, err)
		assert.Equal(t, []string{"potable", "safe"}, got)
	})

	t.Run("lemma shared by several synsets", func(t *testing.T) {
		got, err := lex.Synonyms(ctx, "water")
		require.NoError(t, err)
		assert.Equal(t, []string{"body_of_water", "h2o", "water"}, got)
	})

	t.Run("lookup ignores lemma case", func(t *testing.T) {
		got, err := lex.Synonyms(ctx, "potable")
		require.NoError(t, err)
		assert.Equal(t, []string{"drinkable", "potable", "safe"}, got)
	})

	t.Run("plural noun reaches its base form", func(t *testing.T) {
		got, err := lex.Synonyms(ctx, "waters")
		require.NoError(t, err)
		assert.Equal(t, []string{"body_of_water", "h2o", "water"}, got)
	})

	t.Run("superlative adjective reaches its base form", func(t *testing.T) {
		got, err := lex.Synonyms(ctx, "safest")
		require.NoError(t, err)
		assert.Equal(t, []string{"potable", "safe"}, got)
	})

	t.Run("base form must match the synset part of speech", func(t *testing.T) {
		// "safes" reduces to "safe" only by noun and verb rules; safe is an adjective here.
		got, err := lex.Synonyms(ctx, "safes")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown word", func(t *testing.T) {
		got, err := lex.Synonyms(ctx, "agua")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestBaseForms(t *testing.T) {
	tests := []struct {
		word string
		want []baseForm
	}{
		{"waters", []baseForm{{"n", "water"}, {"v", "water"}}},
		{"boxes", []baseForm{{"n", "boxe"}, {"n", "box"}, {"v", "boxe"}, {"v", "box"}}},
		{"cities", []baseForm{{"n", "citie"}, {"n", "city"}, {"v", "citie"}, {"v", "city"}, {"v", "citi"}}},
		{"women", []baseForm{{"n", "woman"}}},
		{"boiling", []baseForm{{"v", "boile"}, {"v", "boil"}}},
		{"cleaner", []baseForm{{"a", "clean"}, {"a", "cleane"}, {"s", "clean"}, {"s", "cleane"}}},
		{"s", nil},
		{"quickly", nil},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, baseForms(tt.word))
		})
	}
}

func TestLexicon_Ping(t *testing.T) {
	lex := buildTestLexicon(t)
	require.NoError(t, lex.Ping(context.Background()))
}

func TestLexicon_MissingDatabase(t *testing.T) {
	lex, err := Open(filepath.Join(t.TempDir(), "missing.db"))
	require.NoError(t, err)
	defer lex.Close()

	_, err = lex.Synonyms(context.Background(), "safe")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLexiconUnavailable)

	err = lex.Ping(context.Background())
	assert.ErrorIs(t, err, domain.ErrLexiconUnavailable)
}

func TestLexicon_CancelledContext(t *testing.T) {
	lex := buildTestLexicon(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := lex.Synonyms(ctx, "safe")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrLexiconUnavailable)
}

func TestBuild_RefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordnet.db")
	require.NoError(t, Build(context.Background(), path, nil))

	err := Build(context.Background(), path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
