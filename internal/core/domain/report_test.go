package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunReport_Skip(t *testing.T) {
	var r RunReport
	src := NewSourceDescriptor("/in/empty.txt")

	r.Skip(src, "no extractable text")

	assert.Len(t, r.Skipped, 1)
	assert.Equal(t, "empty.txt", r.Skipped[0].Source.Filename)
	assert.Equal(t, "no extractable text", r.Skipped[0].Reason)
}

func TestRunReport_Summary(t *testing.T) {
	r := RunReport{
		Processed: 3,
		Chunks:    7,
		Artifacts: []string{"/out/batch_0001_a.json", "/out/batch_0002_b.json"},
	}
	r.Skip(NewSourceDescriptor("/in/empty.txt"), "no extractable text")

	s := r.Summary()

	assert.Contains(t, s, "Sources processed: 3")
	assert.Contains(t, s, "Chunks emitted:    7")
	assert.Contains(t, s, "Batches written:   2")
	assert.Contains(t, s, "empty.txt: no extractable text")
	assert.NotContains(t, s, "Oversize")
}

func TestRunReport_SummaryOversize(t *testing.T) {
	r := RunReport{OversizeBatches: 1}

	assert.Contains(t, r.Summary(), "Oversize batches:  1")
}
