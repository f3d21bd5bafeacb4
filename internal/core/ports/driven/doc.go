// Package driven defines the interfaces the core depends on:
// text extraction, batch persistence and the chunk index.
// Adapters implement these interfaces; the core never imports adapters.
package driven
