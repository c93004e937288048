// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - PageExtractor: Extracts per-page text from an uploaded PDF
//   - DocumentStore: Document/session/message persistence
//   - IndexStore: Per-document vector index blob persistence
//   - EmbeddingService: Generates vector embeddings
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LLMService: Routing classification, summaries and answer
//     generation. Without it, routing always falls back to the general
//     branch and the ask command is disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
