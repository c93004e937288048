// Package domain defines the core business entities for the legal
// document assistant.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: An uploaded PDF with processing metadata
//   - Page: Raw extracted text for one page of a document
//   - Section: A hierarchically-titled span of document text
//   - Chunk: The atomic, token-bounded retrieval unit
//   - ScoredChunk: A chunk ranked by similarity during retrieval
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
