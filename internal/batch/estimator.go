// Package batch implements the size estimator and the streaming batch packer.
package batch

import (
	"encoding/json"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/domain"
)

// Estimator predicts the serialized byte size of a batch.
//
// The prediction is exact, not approximate: a chunk's admission cost is the
// byte length of its compact JSON encoding plus one element separator, and a
// batch tracks the encoded size of its envelope. The documented margin is
// therefore zero — a written artifact larger than its admission estimate
// signals a defect, surfaced as domain.ErrEstimationInconsistency by the
// writer. Adding a chunk never decreases the estimate.
type Estimator struct{}

// EncodedSize returns the byte length of the chunk's JSON encoding.
func (Estimator) EncodedSize(c domain.DocumentChunk) (int, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return 0, err
	}
	return len(data), nil
}

// Estimate predicts the serialized size of b after appending a chunk whose
// encoding is encodedSize bytes. No side effects on the batch.
func (Estimator) Estimate(b *domain.Batch, encodedSize int) int {
	predicted := b.WireSize() + encodedSize
	if len(b.Documents) > 0 {
		predicted++ // element separator
	}
	return predicted
}
