package domain

import "time"

// Section is a hierarchical unit of document text produced by structural
// segmentation, prior to token-bounding. Every emitted section has
// non-empty content; header-only fragments are never emitted.
type Section struct {
	// Title is the header line that opened the section, or a
	// synthesised "Section starting page N" placeholder when body text
	// appeared before any header was detected.
	Title string

	// Hierarchy is the ordered list of ancestor headers, outermost
	// first, including this section's own header.
	Hierarchy []string

	// Content is the space-joined body text of the section.
	Content string

	// TokenCount is the token count of Content.
	TokenCount int

	// PageStart and PageEnd bound the originating page range.
	PageStart int
	PageEnd   int
}

// ChunkMetadata is the derived metadata bundle used for retrieval
// pre-filtering and score boosting.
type ChunkMetadata struct {
	// HierarchyLevel is the depth of the chunk's hierarchy list.
	HierarchyLevel int `json:"hierarchy_level"`

	// HasSubsections is true when any body line matches a lettered or
	// numbered sub-clause marker such as "(a)" or "(1)".
	HasSubsections bool `json:"has_subsections"`

	// ContainsDefinitions is true when the content mentions
	// definition language.
	ContainsDefinitions bool `json:"contains_definitions"`

	// ContainsObligations is true when the content carries obligation
	// language ("shall", "must", "required", "obligation").
	ContainsObligations bool `json:"contains_obligations"`

	// ContainsDates is true when the content matches a date-like
	// pattern.
	ContainsDates bool `json:"contains_dates"`

	// WordCount is the whitespace-split length of the content.
	WordCount int `json:"word_count"`
}

// Chunk is the atomic retrieval unit, derived from a Section.
// Chunks are created once at ingestion time and never mutated after
// embedding; re-ingestion regenerates them wholesale.
type Chunk struct {
	// SectionIndex is the ordinal position of the chunk within its
	// document. Unique per document and load-bearing for split-section
	// continuity lookups.
	SectionIndex int `json:"section_index"`

	// Title is the source section title, suffixed with " (Part k)"
	// when the section was split.
	Title string `json:"section_title"`

	// Content is the chunk text, possibly prefixed with an overlap
	// fragment from the preceding section or split piece.
	Content string `json:"content"`

	// TokenCount is the token count of Content.
	TokenCount int `json:"token_count"`

	// Hierarchy is copied from the source section.
	Hierarchy []string `json:"hierarchy"`

	// PageStart and PageEnd are copied from the source section.
	PageStart int `json:"page_start"`
	PageEnd   int `json:"page_end"`

	// Metadata is the derived filtering/boosting bundle.
	Metadata ChunkMetadata `json:"metadata"`

	// HasOverlap is true when Content was prefixed with trailing words
	// of the previous unit. OverlapSource names that unit's title.
	HasOverlap    bool   `json:"has_overlap"`
	OverlapSource string `json:"overlap_source,omitempty"`

	// IsSplit marks chunks produced by splitting an oversized section.
	// PartNumber and TotalParts are populated only when IsSplit.
	IsSplit    bool `json:"is_split"`
	PartNumber int  `json:"part_number,omitempty"`
	TotalParts int  `json:"total_parts,omitempty"`

	// CreatedAt is when the chunk was generated.
	CreatedAt time.Time `json:"created_at"`
}

// ChunkRecord pairs a chunk with its owning document for storage in the
// per-document vector index metadata array. Position i in the metadata
// array corresponds to position i in the vector array.
type ChunkRecord struct {
	// DocumentID is the owning document.
	DocumentID string `json:"document_id"`

	// Chunk is the full persisted chunk.
	Chunk Chunk `json:"chunk"`
}
