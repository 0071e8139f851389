// Package datamuse implements domain.Lexicon over the Datamuse word API.
package datamuse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/water-quality-api/internal/domain"
)

// DefaultBaseURL is the public Datamuse endpoint.
const DefaultBaseURL = "https://api.datamuse.com"

// Client looks up synonyms with the rel_syn ("synonym of") constraint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxResults int
	logger     *slog.Logger
}

// NewClient creates a Datamuse client. Each request is bounded by timeout.
func NewClient(baseURL string, timeout time.Duration, maxResults int, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:    baseURL,
		maxResults: maxResults,
		logger:     logger,
	}
}

// Synonyms returns the words Datamuse lists as synonyms of word.
func (c *Client) Synonyms(ctx context.Context, word string) ([]string, error) {
	params := url.Values{
		"rel_syn": {word},
		"max":     {strconv.Itoa(c.maxResults)},
	}
	fullURL := c.baseURL + "/words?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("datamuse request: %w", ctx.Err())
		}
		return nil, fmt.Errorf("%w: datamuse request: %w", domain.ErrLexiconUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: datamuse API error: status %d: %s", domain.ErrLexiconUnavailable, resp.StatusCode, body)
	}

	var words []wordResult
	if err := json.NewDecoder(resp.Body).Decode(&words); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	out := make([]string, 0, len(words))
	for _, w := range words {
		if w.Word != "" {
			out = append(out, w.Word)
		}
	}
	c.logger.Debug("datamuse synonyms", "word", word, "count", len(out))
	return out, nil
}

// Datamuse API response types.

type wordResult struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}
