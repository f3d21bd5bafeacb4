package services

import (
	"context"
	"fmt"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/batch"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/domain"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/ports/driven"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/logger"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/splitter"
)

// ConvertService runs the conversion pipeline: extract text per source,
// split it into chunks, pack the chunks into size-bounded batches and
// persist each sealed batch.
//
// The pipeline is strictly sequential so chunk and batch ordering is
// deterministic for a given input sequence. Per-source failures are
// recorded and skipped; estimator, writer and index failures abort
// the run.
type ConvertService struct {
	extractors driven.ExtractorRegistry
	writer     driven.BatchWriter
	index      driven.ChunkIndex // optional; nil disables indexing
	split      *splitter.Splitter

	maxBatchBytes int
}

// NewConvertService creates the service. index may be nil.
func NewConvertService(
	extractors driven.ExtractorRegistry,
	writer driven.BatchWriter,
	index driven.ChunkIndex,
	maxChunkChars int,
	maxBatchBytes int,
) (*ConvertService, error) {
	if extractors == nil || writer == nil {
		return nil, fmt.Errorf("%w: extractor registry and writer are required", domain.ErrInvalidInput)
	}
	return &ConvertService{
		extractors:    extractors,
		writer:        writer,
		index:         index,
		split:         splitter.New(splitter.WithMaxChunkChars(maxChunkChars)),
		maxBatchBytes: maxBatchBytes,
	}, nil
}

// Run consumes sources in order and returns the run report.
//
// Batches already written stay valid when the run fails partway; the
// returned report covers everything done up to the failure.
func (s *ConvertService) Run(ctx context.Context, sources <-chan domain.SourceDescriptor) (*domain.RunReport, error) {
	report := &domain.RunReport{}

	packer, err := batch.NewPacker(s.maxBatchBytes, func(b *domain.Batch) error {
		path, err := s.writer.Write(ctx, b)
		if err != nil {
			return err
		}
		report.Artifacts = append(report.Artifacts, path)
		if s.index != nil {
			if err := s.index.IndexBatch(ctx, b, path); err != nil {
				return fmt.Errorf("index batch %s: %w", b.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return report, err
	}

	for src := range sources {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := s.convertSource(ctx, src, packer, report); err != nil {
			report.OversizeBatches = packer.Oversize()
			return report, err
		}
	}

	if err := packer.Close(); err != nil {
		report.OversizeBatches = packer.Oversize()
		return report, err
	}
	report.OversizeBatches = packer.Oversize()
	return report, nil
}

// convertSource extracts, splits and packs one source document.
// Extraction and split failures skip the source; packer failures
// (which include writer failures) propagate.
func (s *ConvertService) convertSource(ctx context.Context, src domain.SourceDescriptor, packer *batch.Packer, report *domain.RunReport) error {
	text, err := s.extractors.Extract(ctx, src)
	if err != nil {
		logger.Warn("skipping %s: %v", src.Filename, err)
		report.Skip(src, err.Error())
		return nil
	}

	outcome := s.split.Split(text)
	if outcome.Skipped() {
		logger.Warn("skipping %s: %s", src.Filename, outcome.SkipReason)
		report.Skip(src, outcome.SkipReason)
		return nil
	}

	// One descriptor shared by reference across all chunks of this document.
	shared := src
	for _, frag := range outcome.Fragments {
		chunk := domain.NewDocumentChunk(&shared, frag.Index, frag.Text)
		if err := packer.Add(chunk); err != nil {
			return err
		}
		report.Chunks++
	}

	report.Processed++
	logger.Debug("converted %s: %d chunks", src.Filename, len(outcome.Fragments))
	return nil
}
