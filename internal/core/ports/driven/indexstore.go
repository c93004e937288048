package driven

import "context"

// IndexStore persists the per-document vector index artifacts.
// Each document owns exactly two opaque blobs: the serialized vector
// index and the parallel metadata array. The concrete wire format is
// owned by the index implementation, not the store.
//
// Per-document artifacts are independent; builds for different
// documents may run concurrently. Builds for the same document must be
// serialized by the caller (single writer per document).
type IndexStore interface {
	// Put atomically publishes both blobs for a document, replacing
	// any previous version. A partially written index must never
	// become visible to readers.
	Put(ctx context.Context, documentID string, indexBlob, metaBlob []byte) error

	// Get returns the persisted blobs for a document.
	// Returns domain.ErrIndexNotFound when no index was published.
	Get(ctx context.Context, documentID string) (indexBlob, metaBlob []byte, err error)

	// Delete removes all persisted artifacts for a document.
	// Deleting a document that has no index is a no-op, not an error.
	Delete(ctx context.Context, documentID string) error

	// List returns the document IDs that have a published index.
	List(ctx context.Context) ([]string, error)
}
