package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
	"github.com/akashhguptaa/Legal-ChatBot/internal/core/ports/driven"
	"github.com/akashhguptaa/Legal-ChatBot/internal/core/ports/driving"
	"github.com/akashhguptaa/Legal-ChatBot/internal/logger"
	"github.com/akashhguptaa/Legal-ChatBot/internal/vectorindex"
)

// Ensure RetrievalService implements the interface.
var _ driving.SearchService = (*RetrievalService)(nil)

// RetrievalService executes similarity search over the published
// per-document indices, with metadata pre-filtering, intent boosting
// and split-section stitching.
type RetrievalService struct {
	indexStore driven.IndexStore
	embedder   driven.EmbeddingService
	settings   domain.RetrievalSettings
}

// NewRetrievalService creates a new retrieval service.
func NewRetrievalService(
	indexStore driven.IndexStore,
	embedder driven.EmbeddingService,
	settings domain.RetrievalSettings,
) *RetrievalService {
	normalised := domain.Settings{Retrieval: settings}
	normalised.Normalise()

	return &RetrievalService{
		indexStore: indexStore,
		embedder:   embedder,
		settings:   normalised.Retrieval,
	}
}

// dedupeKey identifies a chunk across the merged result set.
type dedupeKey struct {
	documentID   string
	sectionIndex int
}

// Search embeds the query once and scores it against every candidate
// index, then boosts, merges, deduplicates and stitches the results.
func (s *RetrievalService) Search(
	ctx context.Context, query string, opts driving.SearchOptions,
) ([]domain.ScoredChunk, error) {
	logger.Section("Retrieval")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.ScoredChunk{}, nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = s.settings.Limit
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	indices, err := s.loadIndices(ctx, opts.DocumentID)
	if err != nil {
		return nil, err
	}
	if len(indices) == 0 {
		logger.Debug("No indexed documents to search")
		return []domain.ScoredChunk{}, nil
	}

	var merged []domain.ScoredChunk
	for documentID, index := range indices {
		hits, err := s.searchOne(index, queryVec, opts.Filters, limit)
		if err != nil {
			return nil, fmt.Errorf("search document %s: %w", documentID, err)
		}
		for _, hit := range hits {
			merged = append(merged, domain.ScoredChunk{
				DocumentID: hit.Record.DocumentID,
				Chunk:      hit.Record.Chunk,
				Score:      s.boost(hit.Score, hit.Record.Chunk, opts.Intent),
			})
		}
	}
	logger.Debug("Merged %d raw hits from %d documents", len(merged), len(indices))

	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Score > merged[j].Score })

	results := dedupe(merged)
	if len(results) > limit {
		results = results[:limit]
	}

	results = s.stitch(results, indices, limit)
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })

	logger.Info("Returning %d results", len(results))
	return results, nil
}

// loadIndices resolves the search scope: one document, or every
// document with a published index. Indices that vanish between List
// and Get are skipped.
func (s *RetrievalService) loadIndices(
	ctx context.Context, documentID string,
) (map[string]*vectorindex.Index, error) {
	ids := []string{documentID}
	if documentID == "" {
		all, err := s.indexStore.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list indices: %w", err)
		}
		ids = all
	}

	indices := make(map[string]*vectorindex.Index, len(ids))
	for _, id := range ids {
		indexBlob, metaBlob, err := s.indexStore.Get(ctx, id)
		if err != nil {
			if documentID == "" && errors.Is(err, domain.ErrIndexNotFound) {
				logger.Warn("Index for %s disappeared, skipping", id)
				continue
			}
			return nil, err
		}
		index, err := vectorindex.Unmarshal(indexBlob, metaBlob)
		if err != nil {
			return nil, fmt.Errorf("load index for %s: %w", id, err)
		}
		indices[id] = index
	}
	return indices, nil
}

// searchOne scores one index, applying metadata pre-filtering when
// filters are set. A filter that matches nothing falls back to a
// small unfiltered search rather than returning nothing at all.
func (s *RetrievalService) searchOne(
	index *vectorindex.Index, queryVec []float32, filters *domain.SearchFilters, limit int,
) ([]vectorindex.Hit, error) {
	if filters == nil || filters.Empty() {
		return index.Search(queryVec, limit)
	}

	var candidates []int
	for pos, rec := range index.Records() {
		if matchesFilters(rec.Chunk, filters) {
			candidates = append(candidates, pos)
		}
	}
	if len(candidates) == 0 {
		logger.Debug("Filters matched no chunks, falling back to unfiltered top %d", s.settings.FallbackLimit)
		return index.Search(queryVec, s.settings.FallbackLimit)
	}
	logger.Debug("Filters narrowed to %d of %d chunks", len(candidates), index.Len())
	return index.SearchSubset(queryVec, candidates, limit)
}

// matchesFilters applies every set filter conjunctively.
func matchesFilters(chunk domain.Chunk, f *domain.SearchFilters) bool {
	if f.HierarchyLevel != nil && chunk.Metadata.HierarchyLevel != *f.HierarchyLevel {
		return false
	}
	if f.ContainsDefinitions != nil && chunk.Metadata.ContainsDefinitions != *f.ContainsDefinitions {
		return false
	}
	if f.ContainsObligations != nil && chunk.Metadata.ContainsObligations != *f.ContainsObligations {
		return false
	}
	if f.ContainsDates != nil && chunk.Metadata.ContainsDates != *f.ContainsDates {
		return false
	}
	if f.TitlePattern != "" && !strings.Contains(strings.ToLower(chunk.Title), strings.ToLower(f.TitlePattern)) {
		return false
	}
	if f.PageRange != nil && (chunk.PageEnd < f.PageRange.Start || chunk.PageStart > f.PageRange.End) {
		return false
	}
	if f.SectionIndex != nil && chunk.SectionIndex != *f.SectionIndex {
		return false
	}
	return true
}

// boost applies the metadata boost weights as a single multiplier on
// the raw similarity, so relative adjustments stay proportional.
func (s *RetrievalService) boost(raw float64, chunk domain.Chunk, intent domain.QueryIntent) float64 {
	adjust := 0.0
	if intent.Definitions && chunk.Metadata.ContainsDefinitions {
		adjust += s.settings.Boosts.Definitions
	}
	if intent.Obligations && chunk.Metadata.ContainsObligations {
		adjust += s.settings.Boosts.Obligations
	}
	if chunk.Metadata.HierarchyLevel <= 2 {
		adjust += s.settings.Boosts.TopLevel
	}
	if chunk.IsSplit {
		adjust += s.settings.Boosts.SplitPenalty
	}
	return raw * (1 + adjust)
}

// dedupe keeps the first (highest scoring) occurrence of each chunk.
func dedupe(results []domain.ScoredChunk) []domain.ScoredChunk {
	seen := make(map[dedupeKey]bool, len(results))
	out := make([]domain.ScoredChunk, 0, len(results))
	for _, r := range results {
		key := dedupeKey{r.DocumentID, r.Chunk.SectionIndex}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}

// stitch appends the continuation of each split partial section at a
// discounted score, so an answer that starts inside part 1 of a long
// section arrives with part 2 attached. Continuations only fill seats
// the ranked results left free; a full result set is returned as is.
func (s *RetrievalService) stitch(
	results []domain.ScoredChunk, indices map[string]*vectorindex.Index, limit int,
) []domain.ScoredChunk {
	present := make(map[dedupeKey]bool, len(results))
	for _, r := range results {
		present[dedupeKey{r.DocumentID, r.Chunk.SectionIndex}] = true
	}

	out := results
	for _, r := range results {
		if len(out) >= limit {
			break
		}
		if !r.Chunk.IsSplit || r.Chunk.PartNumber >= r.Chunk.TotalParts {
			continue
		}
		index, ok := indices[r.DocumentID]
		if !ok {
			continue
		}
		nextKey := dedupeKey{r.DocumentID, r.Chunk.SectionIndex + 1}
		if present[nextKey] {
			continue
		}
		for _, rec := range index.Records() {
			if rec.Chunk.SectionIndex != nextKey.sectionIndex {
				continue
			}
			// Split parts occupy consecutive ordinals, but guard
			// against the neighbour being an unrelated section.
			if !rec.Chunk.IsSplit || rec.Chunk.PartNumber != r.Chunk.PartNumber+1 {
				break
			}
			logger.Debug("Stitching part %d of %q onto part %d",
				rec.Chunk.PartNumber, r.Chunk.Title, r.Chunk.PartNumber)
			out = append(out, domain.ScoredChunk{
				DocumentID: r.DocumentID,
				Chunk:      rec.Chunk,
				Score:      r.Score * s.settings.StitchFactor,
				Stitched:   true,
			})
			present[nextKey] = true
			break
		}
	}
	return out
}
