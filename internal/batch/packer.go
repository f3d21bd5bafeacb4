package batch

import (
	"fmt"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/domain"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/logger"
)

// MinBatchBytes is the smallest accepted batch ceiling. Below this even an
// empty envelope barely fits and packing degenerates to one file per chunk.
const MinBatchBytes = 1024

// EmitFunc receives each sealed batch in emission order.
// A non-nil error aborts the run.
type EmitFunc func(b *domain.Batch) error

// Packer greedily packs chunks into batches bounded by a byte ceiling.
//
// The packer holds exactly one open batch at a time, so memory does not grow
// with the number of input documents. Chunks keep their arrival order; batches
// are emitted in the order they are closed. A chunk whose encoding alone
// exceeds the ceiling still ships, as its own single-chunk batch — the ceiling
// is a soft limit in that degenerate case.
type Packer struct {
	maxBatchBytes int
	est           Estimator
	emit          EmitFunc

	open     *domain.Batch
	oversize int
}

// NewPacker creates a packer with the given byte ceiling and emit callback.
func NewPacker(maxBatchBytes int, emit EmitFunc) (*Packer, error) {
	if maxBatchBytes < MinBatchBytes {
		return nil, fmt.Errorf("%w: max batch bytes %d below minimum %d",
			domain.ErrInvalidInput, maxBatchBytes, MinBatchBytes)
	}
	if emit == nil {
		return nil, fmt.Errorf("%w: nil emit callback", domain.ErrInvalidInput)
	}
	return &Packer{maxBatchBytes: maxBatchBytes, emit: emit}, nil
}

// Add appends a chunk to the open batch, closing and emitting the batch
// first if the chunk would overflow the ceiling.
func (p *Packer) Add(c domain.DocumentChunk) error {
	size, err := p.est.EncodedSize(c)
	if err != nil {
		return fmt.Errorf("encode chunk %s: %w", c.ID, err)
	}

	if p.open == nil {
		if err := p.openBatch(); err != nil {
			return err
		}
	}

	if p.est.Estimate(p.open, size) > p.maxBatchBytes {
		if len(p.open.Documents) > 0 {
			if err := p.flush(); err != nil {
				return err
			}
			if err := p.openBatch(); err != nil {
				return err
			}
		}
		if p.est.Estimate(p.open, size) > p.maxBatchBytes {
			// Degenerate case: the chunk alone exceeds the ceiling.
			// It becomes its own batch, closed immediately.
			p.oversize++
			logger.Warn("chunk %s of %s exceeds batch ceiling (%d > %d bytes), emitting oversize batch",
				c.ID, c.Source.Filename, p.est.Estimate(p.open, size), p.maxBatchBytes)
			if err := p.open.Append(c, size); err != nil {
				return err
			}
			return p.flush()
		}
	}

	return p.open.Append(c, size)
}

// Close seals and emits the trailing batch if it holds at least one chunk.
// An empty trailing batch is never emitted.
func (p *Packer) Close() error {
	if p.open == nil || len(p.open.Documents) == 0 {
		p.open = nil
		return nil
	}
	return p.flush()
}

// Oversize returns the number of oversize single-chunk batches emitted.
func (p *Packer) Oversize() int {
	return p.oversize
}

func (p *Packer) openBatch() error {
	b, err := domain.OpenBatch()
	if err != nil {
		return fmt.Errorf("open batch: %w", err)
	}
	p.open = b
	return nil
}

func (p *Packer) flush() error {
	b := p.open
	p.open = nil
	b.Seal()
	logger.Debug("closing batch %s: %d chunks, %d bytes", b.ID, len(b.Documents), b.WireSize())
	if err := p.emit(b); err != nil {
		return err
	}
	return nil
}
