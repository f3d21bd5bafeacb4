// Package extractors wires file types to their text extractors.
package extractors

import (
	"context"
	"fmt"
	"sort"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/domain"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/ports/driven"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/extractors/docx"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/extractors/msdoc"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/extractors/pdf"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/extractors/plaintext"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry dispatches extraction by declared file type.
// The type set is closed (see domain.FileType); unknown types are
// rejected with domain.ErrUnsupportedType rather than guessed at.
type Registry struct {
	byType map[domain.FileType]driven.Extractor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byType: make(map[domain.FileType]driven.Extractor)}
}

// Default returns a registry covering every supported file type.
func Default() *Registry {
	r := NewRegistry()
	r.Register(plaintext.New())
	r.Register(pdf.New())
	r.Register(docx.New())
	r.Register(msdoc.New())
	return r
}

// Register adds an extractor for each of its declared file types.
// A later registration for the same type replaces the earlier one.
func (r *Registry) Register(e driven.Extractor) {
	for _, t := range e.FileTypes() {
		r.byType[t] = e
	}
}

// Extract runs the extractor registered for the source's type.
func (r *Registry) Extract(ctx context.Context, src domain.SourceDescriptor) (string, error) {
	e, ok := r.byType[src.Type]
	if !ok {
		return "", fmt.Errorf("%s: %w: %s", src.Filename, domain.ErrUnsupportedType, src.Type)
	}
	return e.Extract(ctx, src)
}

// SupportedTypes returns the registered file types in stable order.
func (r *Registry) SupportedTypes() []domain.FileType {
	types := make([]domain.FileType, 0, len(r.byType))
	for t := range r.byType {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
