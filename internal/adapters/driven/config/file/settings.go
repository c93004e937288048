package file

import (
	"os"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
	"github.com/akashhguptaa/Legal-ChatBot/internal/core/ports/driven"
)

// LoadSettings builds pipeline settings from the config store, starting
// from the tuned defaults and overlaying any keys the user has set.
// Missing or out-of-range values fall back to defaults via Normalise.
func LoadSettings(store driven.ConfigStore) domain.Settings {
	s := domain.DefaultSettings()

	if v := store.GetInt("chunking.max_tokens"); v > 0 {
		s.Chunking.MaxTokens = v
	}
	if v := store.GetFloat("chunking.overlap_pct"); v > 0 {
		s.Chunking.OverlapPct = v
	}
	if v := store.GetInt("chunking.split_reserve_words"); v > 0 {
		s.Chunking.SplitReserveWords = v
	}

	if v := store.GetInt("retrieval.limit"); v > 0 {
		s.Retrieval.Limit = v
	}
	if v := store.GetInt("retrieval.fallback_limit"); v > 0 {
		s.Retrieval.FallbackLimit = v
	}
	if v := store.GetFloat("retrieval.stitch_factor"); v > 0 {
		s.Retrieval.StitchFactor = v
	}
	if v, ok := store.Get("retrieval.boost.definitions"); ok {
		if f, ok := toFloat(v); ok {
			s.Retrieval.Boosts.Definitions = f
		}
	}
	if v, ok := store.Get("retrieval.boost.obligations"); ok {
		if f, ok := toFloat(v); ok {
			s.Retrieval.Boosts.Obligations = f
		}
	}
	if v, ok := store.Get("retrieval.boost.top_level"); ok {
		if f, ok := toFloat(v); ok {
			s.Retrieval.Boosts.TopLevel = f
		}
	}
	if v, ok := store.Get("retrieval.boost.split_penalty"); ok {
		if f, ok := toFloat(v); ok {
			s.Retrieval.Boosts.SplitPenalty = f
		}
	}

	if v := store.GetInt("ingestion.batch_size"); v > 0 {
		s.Ingestion.BatchSize = v
	}
	if v := store.GetInt("ingestion.workers"); v > 0 {
		s.Ingestion.Workers = v
	}

	s.Normalise()
	return s
}

// LoadEmbeddingSettings reads the embedding provider configuration.
// API keys fall back to the conventional environment variables when the
// config file does not carry them.
func LoadEmbeddingSettings(store driven.ConfigStore) domain.EmbeddingSettings {
	settings := domain.EmbeddingSettings{
		Provider: domain.AIProvider(store.GetString("embedding.provider")),
		Model:    store.GetString("embedding.model"),
		BaseURL:  store.GetString("embedding.base_url"),
		APIKey:   store.GetString("embedding.api_key"),
	}
	if settings.Model == "" {
		settings.Model = domain.DefaultEmbeddingModels()[settings.Provider]
	}
	if settings.APIKey == "" && settings.Provider == domain.AIProviderOpenAI {
		settings.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	return settings
}

// LoadLLMSettings reads the LLM provider configuration.
func LoadLLMSettings(store driven.ConfigStore) domain.LLMSettings {
	settings := domain.LLMSettings{
		Provider: domain.AIProvider(store.GetString("llm.provider")),
		Model:    store.GetString("llm.model"),
		BaseURL:  store.GetString("llm.base_url"),
		APIKey:   store.GetString("llm.api_key"),
	}
	if settings.Model == "" {
		settings.Model = domain.DefaultLLMModels()[settings.Provider]
	}
	if settings.APIKey == "" {
		switch settings.Provider {
		case domain.AIProviderOpenAI:
			settings.APIKey = os.Getenv("OPENAI_API_KEY")
		case domain.AIProviderAnthropic:
			settings.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	}
	return settings
}

// toFloat accepts the numeric types the TOML parser produces. Boost
// weights may legitimately be zero or negative, so presence is checked
// by the caller rather than by sign.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
