package domain

// SearchFilters restricts the retrieval candidate set before similarity
// ranking. All supplied predicates must hold; nil pointer fields are
// not applied.
type SearchFilters struct {
	// HierarchyLevel matches chunks at exactly this hierarchy depth.
	HierarchyLevel *int

	// ContainsDefinitions matches the chunk metadata flag.
	ContainsDefinitions *bool

	// ContainsObligations matches the chunk metadata flag.
	ContainsObligations *bool

	// ContainsDates matches the chunk metadata flag.
	ContainsDates *bool

	// TitlePattern is a regular expression applied to section titles.
	TitlePattern string

	// PageRange keeps chunks whose page span intersects [start, end].
	PageRange *PageRange

	// SectionIndex matches one specific ordinal chunk.
	SectionIndex *int
}

// PageRange is an inclusive page interval.
type PageRange struct {
	Start int
	End   int
}

// Empty returns true when no predicate is set.
func (f *SearchFilters) Empty() bool {
	if f == nil {
		return true
	}
	return f.HierarchyLevel == nil &&
		f.ContainsDefinitions == nil &&
		f.ContainsObligations == nil &&
		f.ContainsDates == nil &&
		f.TitlePattern == "" &&
		f.PageRange == nil &&
		f.SectionIndex == nil
}

// QueryIntent carries signals extracted from the query text that drive
// score boosting.
type QueryIntent struct {
	// Definitions is true when the query asks about defined terms.
	Definitions bool

	// Obligations is true when the query asks about duties,
	// requirements or compliance.
	Obligations bool
}

// ScoredChunk is one ranked retrieval result.
type ScoredChunk struct {
	// DocumentID is the document the chunk came from.
	DocumentID string

	// Chunk is the matched chunk.
	Chunk Chunk

	// Score is the similarity score after any boosting. Stitched
	// results carry 0.9 times their parent's score instead of their
	// own computed similarity.
	Score float64

	// Stitched is true when the result was appended for split-section
	// continuity rather than ranked on its own similarity.
	Stitched bool
}
