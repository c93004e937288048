package domain

// ChunkingSettings holds the tunables for section chunking.
type ChunkingSettings struct {
	// MaxTokens is the token budget per chunk before splitting.
	MaxTokens int

	// OverlapPct is the fraction of the previous unit carried into the
	// next chunk for context continuity.
	OverlapPct float64

	// SplitReserveWords is subtracted from MaxTokens when computing the
	// word size of split pieces, leaving room for overlap injection.
	SplitReserveWords int
}

// BoostWeights holds the multiplicative score adjustments applied during
// metadata-aware retrieval. These are heuristic tunables, not fixed
// constants; the defaults mirror the values the retrieval quality was
// tuned against.
type BoostWeights struct {
	// Definitions is added when definition intent meets a chunk whose
	// ContainsDefinitions flag is set.
	Definitions float64

	// Obligations is added when obligation intent meets a chunk whose
	// ContainsObligations flag is set.
	Obligations float64

	// TopLevel is added for chunks at hierarchy level 2 or shallower.
	TopLevel float64

	// SplitPenalty is added (negative) for split partial sections.
	SplitPenalty float64
}

// RetrievalSettings holds the tunables for similarity search.
type RetrievalSettings struct {
	// Limit is the default number of results returned.
	Limit int

	// FallbackLimit caps the unfiltered fallback search used when a
	// filtered candidate set comes back empty.
	FallbackLimit int

	// StitchFactor scales a parent's score onto its stitched next part.
	StitchFactor float64

	// Boosts are the metadata boost weights.
	Boosts BoostWeights
}

// IngestionSettings holds the tunables for embedding and index builds.
type IngestionSettings struct {
	// BatchSize is the number of chunks embedded per request.
	BatchSize int

	// Workers bounds the worker pool that dispatches embedding batches.
	Workers int
}

// Settings holds all core pipeline tunables.
type Settings struct {
	Chunking  ChunkingSettings
	Retrieval RetrievalSettings
	Ingestion IngestionSettings
}

// DefaultSettings returns the tuned defaults for legal documents.
func DefaultSettings() Settings {
	return Settings{
		Chunking: ChunkingSettings{
			MaxTokens:         512,
			OverlapPct:        0.15,
			SplitReserveWords: 50,
		},
		Retrieval: RetrievalSettings{
			Limit:         5,
			FallbackLimit: 3,
			StitchFactor:  0.9,
			Boosts: BoostWeights{
				Definitions:  0.10,
				Obligations:  0.10,
				TopLevel:     0.05,
				SplitPenalty: -0.02,
			},
		},
		Ingestion: IngestionSettings{
			BatchSize: 10,
			Workers:   4,
		},
	}
}

// Normalise replaces zero or nonsensical values with defaults so a
// partially filled config file still yields a working pipeline.
func (s *Settings) Normalise() {
	def := DefaultSettings()
	if s.Chunking.MaxTokens <= 0 {
		s.Chunking.MaxTokens = def.Chunking.MaxTokens
	}
	if s.Chunking.OverlapPct <= 0 || s.Chunking.OverlapPct >= 1 {
		s.Chunking.OverlapPct = def.Chunking.OverlapPct
	}
	if s.Chunking.SplitReserveWords <= 0 {
		s.Chunking.SplitReserveWords = def.Chunking.SplitReserveWords
	}
	// Reserve must leave room for content in each split piece.
	if s.Chunking.SplitReserveWords >= s.Chunking.MaxTokens {
		s.Chunking.SplitReserveWords = s.Chunking.MaxTokens / 4
	}
	if s.Retrieval.Limit <= 0 {
		s.Retrieval.Limit = def.Retrieval.Limit
	}
	if s.Retrieval.FallbackLimit <= 0 {
		s.Retrieval.FallbackLimit = def.Retrieval.FallbackLimit
	}
	if s.Retrieval.StitchFactor <= 0 || s.Retrieval.StitchFactor > 1 {
		s.Retrieval.StitchFactor = def.Retrieval.StitchFactor
	}
	if s.Ingestion.BatchSize <= 0 {
		s.Ingestion.BatchSize = def.Ingestion.BatchSize
	}
	if s.Ingestion.Workers <= 0 {
		s.Ingestion.Workers = def.Ingestion.Workers
	}
}
