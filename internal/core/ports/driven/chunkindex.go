package driven

import (
	"context"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/domain"
)

// ChunkIndex is a persistent, searchable index over written chunks.
// Indexing happens after a batch artifact is written; the index stores
// chunk metadata and term postings, not the artifacts themselves.
type ChunkIndex interface {
	// IndexBatch records the batch's chunks and their term postings.
	IndexBatch(ctx context.Context, b *domain.Batch, artifactPath string) error

	// Search returns up to limit chunks ranked by term frequency
	// against the query terms.
	Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error)

	// Close releases the underlying storage.
	Close() error
}
