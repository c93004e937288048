package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
)

func TestLoadSettings_DefaultsWhenEmpty(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	got := LoadSettings(store)

	assert.Equal(t, domain.DefaultSettings(), got)
}

func TestLoadSettings_OverlaysConfiguredKeys(t *testing.T) {
	tmpDir := t.TempDir()
	content := []byte(`[chunking]
max_tokens = 256
overlap_pct = 0.2

[retrieval]
limit = 8
stitch_factor = 0.8

[retrieval.boost]
definitions = 0.25
split_penalty = -0.05

[ingestion]
workers = 2
`)
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), content, 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	got := LoadSettings(store)
	def := domain.DefaultSettings()

	assert.Equal(t, 256, got.Chunking.MaxTokens)
	assert.InDelta(t, 0.2, got.Chunking.OverlapPct, 1e-9)
	assert.Equal(t, def.Chunking.SplitReserveWords, got.Chunking.SplitReserveWords)

	assert.Equal(t, 8, got.Retrieval.Limit)
	assert.InDelta(t, 0.8, got.Retrieval.StitchFactor, 1e-9)
	assert.Equal(t, def.Retrieval.FallbackLimit, got.Retrieval.FallbackLimit)

	assert.InDelta(t, 0.25, got.Retrieval.Boosts.Definitions, 1e-9)
	assert.InDelta(t, -0.05, got.Retrieval.Boosts.SplitPenalty, 1e-9)
	assert.InDelta(t, def.Retrieval.Boosts.Obligations, got.Retrieval.Boosts.Obligations, 1e-9)

	assert.Equal(t, 2, got.Ingestion.Workers)
	assert.Equal(t, def.Ingestion.BatchSize, got.Ingestion.BatchSize)
}

func TestLoadSettings_ZeroBoostHonoured(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	// A boost of zero is a deliberate choice, not an absent value.
	require.NoError(t, store.Set("retrieval.boost.top_level", 0.0))

	got := LoadSettings(store)
	assert.Zero(t, got.Retrieval.Boosts.TopLevel)
}

func TestLoadSettings_NormalisesNonsense(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	// Reserve larger than the token budget cannot be honoured.
	require.NoError(t, store.Set("chunking.max_tokens", 100))
	require.NoError(t, store.Set("chunking.split_reserve_words", 200))

	got := LoadSettings(store)
	assert.Equal(t, 100, got.Chunking.MaxTokens)
	assert.Equal(t, 25, got.Chunking.SplitReserveWords)
}
