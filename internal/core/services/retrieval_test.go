package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
	"github.com/akashhguptaa/Legal-ChatBot/internal/core/ports/driving"
	"github.com/akashhguptaa/Legal-ChatBot/internal/vectorindex"
)

// publishIndex builds and stores an index for one document.
func publishIndex(t *testing.T, store *mockIndexStore, documentID string, vectors [][]float32, chunks []domain.Chunk) {
	t.Helper()

	index, err := vectorindex.New(len(vectors[0]))
	require.NoError(t, err)
	for i, vec := range vectors {
		require.NoError(t, index.Add(vec, domain.ChunkRecord{DocumentID: documentID, Chunk: chunks[i]}))
	}
	indexBlob, metaBlob, err := index.Marshal()
	require.NoError(t, err)
	require.NoError(t, store.Put(context.Background(), documentID, indexBlob, metaBlob))
}

// flatBoosts disables every structural boost so raw similarity drives
// the ordering.
func flatBoosts() domain.RetrievalSettings {
	return domain.RetrievalSettings{
		Limit:         5,
		FallbackLimit: 3,
		StitchFactor:  0.9,
		Boosts:        domain.BoostWeights{Definitions: 0.10, Obligations: 0.10, TopLevel: 0.001, SplitPenalty: -0.001},
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := NewRetrievalService(newMockIndexStore(), newMockEmbedder(2), flatBoosts())

	results, err := svc.Search(context.Background(), "   ", driving.SearchOptions{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchNoIndexedDocuments(t *testing.T) {
	svc := NewRetrievalService(newMockIndexStore(), newMockEmbedder(2), flatBoosts())

	results, err := svc.Search(context.Background(), "termination", driving.SearchOptions{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchRanksAcrossDocuments(t *testing.T) {
	store := newMockIndexStore()
	publishIndex(t, store, "doc-a",
		[][]float32{{1, 0}, {0, 1}},
		[]domain.Chunk{
			{SectionIndex: 0, Title: "TERMINATION", Metadata: domain.ChunkMetadata{HierarchyLevel: 1}},
			{SectionIndex: 1, Title: "NOTICES", Metadata: domain.ChunkMetadata{HierarchyLevel: 1}},
		})
	publishIndex(t, store, "doc-b",
		[][]float32{{0.9, 0.4359}},
		[]domain.Chunk{
			{SectionIndex: 0, Title: "TERM", Metadata: domain.ChunkMetadata{HierarchyLevel: 1}},
		})

	embedder := newMockEmbedder(2)
	embedder.queryVec = []float32{1, 0}

	svc := NewRetrievalService(store, embedder, flatBoosts())

	results, err := svc.Search(context.Background(), "when can the contract end", driving.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "TERMINATION", results[0].Chunk.Title)
	assert.Equal(t, "doc-a", results[0].DocumentID)
	assert.Equal(t, "TERM", results[1].Chunk.Title)
	assert.Equal(t, "doc-b", results[1].DocumentID)
	assert.Equal(t, "NOTICES", results[2].Chunk.Title)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestSearchSingleDocumentScope(t *testing.T) {
	store := newMockIndexStore()
	publishIndex(t, store, "doc-a",
		[][]float32{{1, 0}},
		[]domain.Chunk{{SectionIndex: 0, Title: "A"}})
	publishIndex(t, store, "doc-b",
		[][]float32{{1, 0}},
		[]domain.Chunk{{SectionIndex: 0, Title: "B"}})

	embedder := newMockEmbedder(2)
	embedder.queryVec = []float32{1, 0}

	svc := NewRetrievalService(store, embedder, flatBoosts())

	results, err := svc.Search(context.Background(), "anything", driving.SearchOptions{DocumentID: "doc-b"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "doc-b", results[0].DocumentID)
}

func TestSearchUnknownDocument(t *testing.T) {
	svc := NewRetrievalService(newMockIndexStore(), newMockEmbedder(2), flatBoosts())

	_, err := svc.Search(context.Background(), "anything", driving.SearchOptions{DocumentID: "missing"})
	assert.ErrorIs(t, err, domain.ErrIndexNotFound)
}

func TestSearchIntentBoostReordersResults(t *testing.T) {
	store := newMockIndexStore()
	// The definitions chunk scores slightly lower on raw similarity.
	publishIndex(t, store, "doc-a",
		[][]float32{{1, 0}, {0.995, 0.0998}},
		[]domain.Chunk{
			{SectionIndex: 0, Title: "PREAMBLE", Metadata: domain.ChunkMetadata{HierarchyLevel: 1}},
			{SectionIndex: 1, Title: "DEFINITIONS", Metadata: domain.ChunkMetadata{HierarchyLevel: 1, ContainsDefinitions: true}},
		})

	embedder := newMockEmbedder(2)
	embedder.queryVec = []float32{1, 0}

	svc := NewRetrievalService(store, embedder, flatBoosts())

	plain, err := svc.Search(context.Background(), "contract intro", driving.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, plain, 2)
	assert.Equal(t, "PREAMBLE", plain[0].Chunk.Title)

	boosted, err := svc.Search(context.Background(), "contract intro", driving.SearchOptions{
		Intent: domain.QueryIntent{Definitions: true},
	})
	require.NoError(t, err)
	require.Len(t, boosted, 2)
	assert.Equal(t, "DEFINITIONS", boosted[0].Chunk.Title, "definition boost outweighs the small similarity gap")
}

func TestSearchSplitPenalty(t *testing.T) {
	settings := flatBoosts()
	settings.Boosts.SplitPenalty = -0.5

	store := newMockIndexStore()
	publishIndex(t, store, "doc-a",
		[][]float32{{1, 0}, {1, 0}},
		[]domain.Chunk{
			{SectionIndex: 0, Title: "LONG (Part 1)", IsSplit: true, PartNumber: 1, TotalParts: 2},
			{SectionIndex: 1, Title: "WHOLE"},
		})

	embedder := newMockEmbedder(2)
	embedder.queryVec = []float32{1, 0}

	svc := NewRetrievalService(store, embedder, settings)

	results, err := svc.Search(context.Background(), "anything", driving.SearchOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "WHOLE", results[0].Chunk.Title)
}

func TestSearchFiltersRestrictCandidates(t *testing.T) {
	store := newMockIndexStore()
	publishIndex(t, store, "doc-a",
		[][]float32{{1, 0}, {0.6, 0.8}},
		[]domain.Chunk{
			{SectionIndex: 0, Title: "GENERAL", Metadata: domain.ChunkMetadata{HierarchyLevel: 1}},
			{SectionIndex: 1, Title: "OBLIGATIONS", Metadata: domain.ChunkMetadata{HierarchyLevel: 1, ContainsObligations: true}},
		})

	embedder := newMockEmbedder(2)
	embedder.queryVec = []float32{1, 0}

	svc := NewRetrievalService(store, embedder, flatBoosts())

	yes := true
	results, err := svc.Search(context.Background(), "duties", driving.SearchOptions{
		Filters: &domain.SearchFilters{ContainsObligations: &yes},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "OBLIGATIONS", results[0].Chunk.Title)
}

func TestSearchFilteredEmptyFallsBack(t *testing.T) {
	store := newMockIndexStore()
	publishIndex(t, store, "doc-a",
		[][]float32{{1, 0}, {0.9, 0.4359}, {0.8, 0.6}, {0.7, 0.714}},
		[]domain.Chunk{
			{SectionIndex: 0, Title: "A"},
			{SectionIndex: 1, Title: "B"},
			{SectionIndex: 2, Title: "C"},
			{SectionIndex: 3, Title: "D"},
		})

	embedder := newMockEmbedder(2)
	embedder.queryVec = []float32{1, 0}

	svc := NewRetrievalService(store, embedder, flatBoosts())

	level := 9
	results, err := svc.Search(context.Background(), "anything", driving.SearchOptions{
		Filters: &domain.SearchFilters{HierarchyLevel: &level},
	})
	require.NoError(t, err)

	// Nothing matches hierarchy level 9, so the unfiltered fallback
	// returns its own smaller limit.
	require.Len(t, results, 3)
	assert.Equal(t, "A", results[0].Chunk.Title)
}

func TestSearchStitchesNextPart(t *testing.T) {
	store := newMockIndexStore()
	publishIndex(t, store, "doc-a",
		[][]float32{{1, 0}, {0, 1}},
		[]domain.Chunk{
			{SectionIndex: 0, Title: "INDEMNITY (Part 1)", IsSplit: true, PartNumber: 1, TotalParts: 2},
			{SectionIndex: 1, Title: "INDEMNITY (Part 2)", IsSplit: true, PartNumber: 2, TotalParts: 2},
		})

	embedder := newMockEmbedder(2)
	embedder.queryVec = []float32{1, 0}

	svc := NewRetrievalService(store, embedder, flatBoosts())

	// The filter keeps only part 1, leaving room below the limit for
	// its continuation.
	results, err := svc.Search(context.Background(), "who indemnifies whom", driving.SearchOptions{
		Limit:   2,
		Filters: &domain.SearchFilters{TitlePattern: "part 1"},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "INDEMNITY (Part 1)", results[0].Chunk.Title)
	assert.False(t, results[0].Stitched)

	assert.Equal(t, "INDEMNITY (Part 2)", results[1].Chunk.Title)
	assert.True(t, results[1].Stitched)
	assert.InDelta(t, results[0].Score*0.9, results[1].Score, 1e-9)
}

func TestSearchStitchRespectsLimit(t *testing.T) {
	store := newMockIndexStore()
	publishIndex(t, store, "doc-a",
		[][]float32{{1, 0}, {0, 1}},
		[]domain.Chunk{
			{SectionIndex: 0, Title: "INDEMNITY (Part 1)", IsSplit: true, PartNumber: 1, TotalParts: 2},
			{SectionIndex: 1, Title: "INDEMNITY (Part 2)", IsSplit: true, PartNumber: 2, TotalParts: 2},
		})

	embedder := newMockEmbedder(2)
	embedder.queryVec = []float32{1, 0}

	svc := NewRetrievalService(store, embedder, flatBoosts())

	results, err := svc.Search(context.Background(), "who indemnifies whom", driving.SearchOptions{Limit: 1})
	require.NoError(t, err)

	// A full result set leaves no seat for the continuation.
	require.Len(t, results, 1)
	assert.Equal(t, "INDEMNITY (Part 1)", results[0].Chunk.Title)
	assert.False(t, results[0].Stitched)
}

func TestSearchStitchSkipsAlreadyPresentPart(t *testing.T) {
	store := newMockIndexStore()
	publishIndex(t, store, "doc-a",
		[][]float32{{1, 0}, {0.99, 0.141}},
		[]domain.Chunk{
			{SectionIndex: 0, Title: "INDEMNITY (Part 1)", IsSplit: true, PartNumber: 1, TotalParts: 2},
			{SectionIndex: 1, Title: "INDEMNITY (Part 2)", IsSplit: true, PartNumber: 2, TotalParts: 2},
		})

	embedder := newMockEmbedder(2)
	embedder.queryVec = []float32{1, 0}

	svc := NewRetrievalService(store, embedder, flatBoosts())

	results, err := svc.Search(context.Background(), "who indemnifies whom", driving.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.False(t, r.Stitched, "both parts retrieved directly, nothing to stitch")
	}
}

func TestMatchesFilters(t *testing.T) {
	chunk := domain.Chunk{
		SectionIndex: 4,
		Title:        "PAYMENT TERMS (Part 2)",
		PageStart:    3,
		PageEnd:      5,
		Metadata: domain.ChunkMetadata{
			HierarchyLevel:      2,
			ContainsObligations: true,
			ContainsDates:       true,
		},
	}

	yes, no := true, false
	level2, level3 := 2, 3
	section4 := 4

	tests := []struct {
		name    string
		filters domain.SearchFilters
		want    bool
	}{
		{name: "empty filters match", filters: domain.SearchFilters{}, want: true},
		{name: "hierarchy level match", filters: domain.SearchFilters{HierarchyLevel: &level2}, want: true},
		{name: "hierarchy level mismatch", filters: domain.SearchFilters{HierarchyLevel: &level3}, want: false},
		{name: "obligations required", filters: domain.SearchFilters{ContainsObligations: &yes}, want: true},
		{name: "obligations excluded", filters: domain.SearchFilters{ContainsObligations: &no}, want: false},
		{name: "definitions required", filters: domain.SearchFilters{ContainsDefinitions: &yes}, want: false},
		{name: "title substring case insensitive", filters: domain.SearchFilters{TitlePattern: "payment"}, want: true},
		{name: "title substring mismatch", filters: domain.SearchFilters{TitlePattern: "warranty"}, want: false},
		{name: "page range overlap", filters: domain.SearchFilters{PageRange: &domain.PageRange{Start: 5, End: 9}}, want: true},
		{name: "page range disjoint", filters: domain.SearchFilters{PageRange: &domain.PageRange{Start: 6, End: 9}}, want: false},
		{name: "section index match", filters: domain.SearchFilters{SectionIndex: &section4}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesFilters(chunk, &tt.filters))
		})
	}
}
