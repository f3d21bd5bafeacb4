// Package services contains the orchestration layer: the conversion run
// and search over the chunk index.
package services
