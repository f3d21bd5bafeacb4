package batch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/domain"
)

func TestEstimator_EncodedSize(t *testing.T) {
	var est Estimator
	src := domain.NewSourceDescriptor("/in/a.txt")
	chunk := domain.NewDocumentChunk(&src, 0, "hello <world> & friends")

	size, err := est.EncodedSize(chunk)
	require.NoError(t, err)

	data, err := json.Marshal(chunk)
	require.NoError(t, err)
	assert.Equal(t, len(data), size)
}

func TestEstimator_EstimateIsExact(t *testing.T) {
	var est Estimator
	src := domain.NewSourceDescriptor("/in/a.txt")

	b, err := domain.OpenBatch()
	require.NoError(t, err)

	for i, text := range []string{"alpha", "beta beta", "gamma gamma gamma"} {
		chunk := domain.NewDocumentChunk(&src, i, text)
		size, err := est.EncodedSize(chunk)
		require.NoError(t, err)

		predicted := est.Estimate(b, size)
		require.NoError(t, b.Append(chunk, size))

		data, err := json.Marshal(b)
		require.NoError(t, err)
		assert.Equal(t, len(data), predicted, "prediction for chunk %d", i)
	}
}

func TestEstimator_Monotonic(t *testing.T) {
	var est Estimator
	src := domain.NewSourceDescriptor("/in/a.txt")

	b, err := domain.OpenBatch()
	require.NoError(t, err)

	empty := domain.NewDocumentChunk(&src, 0, "")
	size, err := est.EncodedSize(empty)
	require.NoError(t, err)

	// Even an empty-text chunk never decreases the estimate.
	assert.GreaterOrEqual(t, est.Estimate(b, size), b.WireSize())

	require.NoError(t, b.Append(empty, size))
	assert.GreaterOrEqual(t, est.Estimate(b, size), b.WireSize())
}
