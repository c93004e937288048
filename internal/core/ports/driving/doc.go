// Package driving defines the interfaces that expose core functionality
// to the outside world.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement these interfaces, and driving adapters
// (CLI, watcher) call them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package, core/services
package driving
