package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	"unicode/utf8"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Supported lexicon backends.
const (
	LexiconWordNet  = "wordnet"
	LexiconDatamuse = "datamuse"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	DatasetPath      string
	DatasetDelimiter rune

	// Synonym dictionary configuration.
	LexiconBackend    string
	LexiconPath       string
	DatamuseURL       string
	LexiconTimeout    time.Duration
	LexiconMaxResults int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	lexiconTimeoutStr := sharedcfg.EnvOrDefault("LEXICON_TIMEOUT", "5s")
	lexiconTimeout, err := time.ParseDuration(lexiconTimeoutStr)
	if err != nil || lexiconTimeout <= 0 {
		return nil, errors.New("invalid LEXICON_TIMEOUT")
	}

	delimiter, err := parseDelimiter(sharedcfg.EnvOrDefault("DATASET_DELIMITER", ";"))
	if err != nil {
		return nil, err
	}

	maxResults, err := parseMaxResults()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8000"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		DatasetPath:      sharedcfg.EnvOrDefault("DATASET_PATH", "Dataset/waterQuality1.csv"),
		DatasetDelimiter: delimiter,

		LexiconBackend:    sharedcfg.EnvOrDefault("LEXICON_BACKEND", LexiconWordNet),
		LexiconPath:       sharedcfg.EnvOrDefault("LEXICON_PATH", "data/wordnet.db"),
		DatamuseURL:       sharedcfg.EnvOrDefault("DATAMUSE_URL", "https://api.datamuse.com"),
		LexiconTimeout:    lexiconTimeout,
		LexiconMaxResults: maxResults,
	}

	if cfg.DatasetPath == "" {
		return nil, errors.New("DATASET_PATH is required")
	}
	switch cfg.LexiconBackend {
	case LexiconWordNet:
		if cfg.LexiconPath == "" {
			return nil, errors.New("LEXICON_PATH is required for the wordnet backend")
		}
	case LexiconDatamuse:
		if cfg.DatamuseURL == "" {
			return nil, errors.New("DATAMUSE_URL is required for the datamuse backend")
		}
	default:
		return nil, fmt.Errorf("invalid LEXICON_BACKEND %q (want %s or %s)", cfg.LexiconBackend, LexiconWordNet, LexiconDatamuse)
	}

	return cfg, nil
}

func parseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return 0, errors.New("invalid DATASET_DELIMITER: must be a single character")
	}
	return r, nil
}

func parseMaxResults() (int, error) {
	s := os.Getenv("LEXICON_MAX_RESULTS")
	if s == "" {
		return 100, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || n > 1000 {
		return 0, errors.New("invalid LEXICON_MAX_RESULTS: must be between 1 and 1000")
	}
	return n, nil
}
