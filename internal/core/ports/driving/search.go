package driving

import (
	"context"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
)

// SearchOptions configures a retrieval query.
type SearchOptions struct {
	// DocumentID restricts the search to one document. When empty,
	// every published index is searched and results are merged by
	// score.
	DocumentID string

	// Limit is the maximum number of results (default 5).
	Limit int

	// Filters optionally restrict candidates before ranking.
	Filters *domain.SearchFilters

	// Intent carries boosting signals extracted from the query.
	Intent domain.QueryIntent
}

// SearchService executes similarity search over indexed documents.
type SearchService interface {
	// Search embeds the query and returns the ranked, deduplicated and
	// stitched results.
	Search(ctx context.Context, query string, opts SearchOptions) ([]domain.ScoredChunk, error)
}
