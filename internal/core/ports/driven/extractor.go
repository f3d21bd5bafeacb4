package driven

import (
	"context"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/domain"
)

// Extractor pulls plain text out of source documents of specific file types.
// Each extractor handles one or more declared types (e.g. pdf, docx).
type Extractor interface {
	// FileTypes returns the file types this extractor handles.
	FileTypes() []domain.FileType

	// Extract reads the source and returns its text content.
	// The returned text is already normalised (LF line endings, no
	// control characters); encoding concerns stay inside the extractor.
	Extract(ctx context.Context, src domain.SourceDescriptor) (string, error)
}

// ExtractorRegistry dispatches extraction to the extractor registered
// for the source's declared file type.
type ExtractorRegistry interface {
	// Extract runs the matching extractor for the source.
	// Returns domain.ErrUnsupportedType when no extractor is registered
	// for the source's type.
	Extract(ctx context.Context, src domain.SourceDescriptor) (string, error)

	// Register adds an extractor to the registry.
	Register(e Extractor)

	// SupportedTypes returns all file types that can be extracted.
	SupportedTypes() []domain.FileType
}
