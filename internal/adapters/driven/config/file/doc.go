// Package file provides a TOML file-based configuration store. Keys use
// dot notation ("retrieval.limit") and map onto nested TOML tables.
package file
