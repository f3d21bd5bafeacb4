package driven

import (
	"context"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/domain"
)

// BatchWriter persists sealed batches as JSON artifacts.
type BatchWriter interface {
	// Write serializes the batch to storage and returns the artifact path.
	// The file name is unique within a run. The writer never mutates the
	// batch and never leaves a partially written artifact under the final
	// name. Failures wrap domain.ErrWrite; an encoded size above the
	// batch's admission estimate wraps domain.ErrEstimationInconsistency.
	Write(ctx context.Context, b *domain.Batch) (string, error)
}
