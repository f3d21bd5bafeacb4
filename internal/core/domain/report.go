package domain

import (
	"fmt"
	"strings"
)

// SkipRecord notes a source that was skipped and why.
type SkipRecord struct {
	Source SourceDescriptor
	Reason string
}

// RunReport is the explicit run context threaded through the pipeline.
// It collects counters and warnings for one conversion run and replaces
// any form of global state; it is discarded when the run ends.
type RunReport struct {
	// Processed is the number of sources that produced at least one chunk.
	Processed int

	// Chunks is the total number of chunks emitted.
	Chunks int

	// Skipped lists sources that were dropped, with reasons.
	Skipped []SkipRecord

	// Artifacts lists the paths of batch files written, in emission order.
	Artifacts []string

	// OversizeBatches counts single-chunk batches that exceeded the ceiling.
	OversizeBatches int
}

// Skip records a skipped source.
func (r *RunReport) Skip(src SourceDescriptor, reason string) {
	r.Skipped = append(r.Skipped, SkipRecord{Source: src, Reason: reason})
}

// Summary renders the user-visible outcome of the run.
func (r *RunReport) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Sources processed: %d\n", r.Processed)
	fmt.Fprintf(&sb, "Chunks emitted:    %d\n", r.Chunks)
	fmt.Fprintf(&sb, "Batches written:   %d\n", len(r.Artifacts))
	if r.OversizeBatches > 0 {
		fmt.Fprintf(&sb, "Oversize batches:  %d\n", r.OversizeBatches)
	}
	if len(r.Skipped) > 0 {
		fmt.Fprintf(&sb, "Sources skipped:   %d\n", len(r.Skipped))
		for _, s := range r.Skipped {
			fmt.Fprintf(&sb, "  %s: %s\n", s.Source.Filename, s.Reason)
		}
	}
	return sb.String()
}
