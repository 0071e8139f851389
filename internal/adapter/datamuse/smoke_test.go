//go:build datamuse

package datamuse

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests hit the real Datamuse API.
// Run with: go test -tags=datamuse ./internal/adapter/datamuse/ -v -count=1

func smokeClient() *Client {
	return NewClient(DefaultBaseURL, 10*time.Second, 50, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSmoke_Synonyms(t *testing.T) {
	got, err := smokeClient().Synonyms(context.Background(), "safe")
	require.NoError(t, err)
	assert.NotEmpty(t, got)
	t.Logf("safe → %v", got)
}

func TestSmoke_UnknownWord(t *testing.T) {
	got, err := smokeClient().Synonyms(context.Background(), "qzxqzxqzx")
	require.NoError(t, err)
	assert.Empty(t, got)
}
