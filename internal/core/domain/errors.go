package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrIndexNotFound indicates no persisted vector index exists for
	// a document. Surfaced as a clean not-found result, never as a
	// crash: readers must tolerate "not yet built".
	ErrIndexNotFound = errors.New("vector index not found")

	// ErrNoExtractableText indicates the source PDF yielded no text on
	// any page. Terminal for that document; no partial ingestion.
	ErrNoExtractableText = errors.New("no extractable text")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured. Ingestion and semantic search are disabled without it.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	// Routing degrades to the general branch and answering is disabled.
	ErrLLMUnavailable = errors.New("LLM service unavailable")
)
