package domain

import "time"

// DocumentStatus tracks the processing lifecycle of an uploaded document.
type DocumentStatus string

// Document processing states.
const (
	// StatusPending means the document is uploaded but not yet indexed.
	StatusPending DocumentStatus = "pending"

	// StatusProcessed means segmentation, chunking and indexing completed.
	StatusProcessed DocumentStatus = "processed"

	// StatusFailed means ingestion failed and no index was published.
	StatusFailed DocumentStatus = "failed"
)

// IsValid returns true if the status is recognised.
func (s DocumentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessed, StatusFailed:
		return true
	default:
		return false
	}
}

// Document represents one uploaded PDF.
// It is immutable once processed, except for the status field.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// SessionID links to the owning chat session.
	SessionID string

	// Filename is the original upload filename.
	Filename string

	// PageCount is the number of pages in the source PDF.
	PageCount int

	// Status is the current processing state.
	Status DocumentStatus

	// UploadedAt is when the document was first received.
	UploadedAt time.Time

	// UpdatedAt is when the status last changed.
	UpdatedAt time.Time
}

// Page holds raw extracted text for one page of a document.
// Pages are ephemeral: produced during extraction, consumed by
// segmentation, and never persisted independently.
type Page struct {
	// Number is the 1-based page index.
	Number int

	// Text is the raw extracted page text, trimmed of surrounding
	// whitespace. Pages with empty text are skipped upstream.
	Text string

	// SectionStart is a heuristic flag indicating the page appears
	// to open with a section header.
	SectionStart bool
}

// DocumentInfo summarises a document's persisted index.
type DocumentInfo struct {
	// Filename is the original upload filename.
	Filename string

	// TotalPages is the highest page covered by any indexed chunk.
	TotalPages int

	// TotalSections is the number of indexed chunks.
	TotalSections int
}
