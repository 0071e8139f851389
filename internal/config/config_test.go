package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "Dataset/waterQuality1.csv", cfg.DatasetPath)
	assert.Equal(t, ';', cfg.DatasetDelimiter)
	assert.Equal(t, LexiconWordNet, cfg.LexiconBackend)
	assert.Equal(t, "data/wordnet.db", cfg.LexiconPath)
	assert.Equal(t, "https://api.datamuse.com", cfg.DatamuseURL)
	assert.Equal(t, 5*time.Second, cfg.LexiconTimeout)
	assert.Equal(t, 100, cfg.LexiconMaxResults)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("DATASET_PATH", "/data/water.csv")
	t.Setenv("DATASET_DELIMITER", ",")
	t.Setenv("LEXICON_BACKEND", "datamuse")
	t.Setenv("DATAMUSE_URL", "http://localhost:9999")
	t.Setenv("LEXICON_TIMEOUT", "2s")
	t.Setenv("LEXICON_MAX_RESULTS", "20")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "/data/water.csv", cfg.DatasetPath)
	assert.Equal(t, ',', cfg.DatasetDelimiter)
	assert.Equal(t, LexiconDatamuse, cfg.LexiconBackend)
	assert.Equal(t, "http://localhost:9999", cfg.DatamuseURL)
	assert.Equal(t, 2*time.Second, cfg.LexiconTimeout)
	assert.Equal(t, 20, cfg.LexiconMaxResults)
}

func TestLoad_TabDelimiter(t *testing.T) {
	t.Setenv("DATASET_DELIMITER", `\t`)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, '\t', cfg.DatasetDelimiter)
}

func TestLoad_InvalidDelimiter(t *testing.T) {
	for _, v := range []string{";;", `"`, "\n"} {
		t.Setenv("DATASET_DELIMITER", v)
		_, err := Load()
		require.Error(t, err, "delimiter %q", v)
		assert.Contains(t, err.Error(), "DATASET_DELIMITER")
	}
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidLexiconTimeout(t *testing.T) {
	t.Setenv("LEXICON_TIMEOUT", "bad")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LEXICON_TIMEOUT")
}

func TestLoad_NegativeLexiconTimeout(t *testing.T) {
	t.Setenv("LEXICON_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LEXICON_TIMEOUT")
}

func TestLoad_InvalidMaxResults(t *testing.T) {
	for _, v := range []string{"0", "abc", "5000"} {
		t.Setenv("LEXICON_MAX_RESULTS", v)
		_, err := Load()
		require.Error(t, err, "value %q", v)
		assert.Contains(t, err.Error(), "LEXICON_MAX_RESULTS")
	}
}

func TestLoad_UnknownLexiconBackend(t *testing.T) {
	t.Setenv("LEXICON_BACKEND", "nltk")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LEXICON_BACKEND")
}
