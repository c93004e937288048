package driving

import (
	"context"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
)

// IngestResult reports the outcome of processing one document.
type IngestResult struct {
	// Document is the registry entry after processing.
	Document domain.Document

	// Sections is the number of sections found by segmentation.
	Sections int

	// Chunks is the number of chunks generated.
	Chunks int

	// Indexed is the number of chunks that were successfully embedded
	// and stored. May be lower than Chunks when embedding batches fail.
	Indexed int

	// TokensUsed is the total token count across all embedded chunk
	// contents.
	TokensUsed int
}

// IngestService processes uploaded documents into searchable indices.
type IngestService interface {
	// Ingest extracts, segments, chunks, embeds and indexes one PDF,
	// then publishes the per-document index. The registry entry moves
	// pending -> processed, or pending -> failed on terminal errors.
	Ingest(ctx context.Context, sessionID, path string) (*IngestResult, error)

	// Delete removes a document, its chunks and its index artifacts.
	// Idempotent with respect to the index.
	Delete(ctx context.Context, documentID string) error

	// Info summarises a document's persisted index.
	Info(ctx context.Context, documentID string) (*domain.DocumentInfo, error)

	// Section returns the indexed chunk with the given ordinal index.
	Section(ctx context.Context, documentID string, sectionIndex int) (*domain.Chunk, error)
}
