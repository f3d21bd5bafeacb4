// Package pdf extracts text from PDF documents.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/domain"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles PDF documents. It extracts the embedded text layer;
// scanned PDFs without a text layer yield empty output and are skipped
// upstream. OCR is a separate concern and not performed here.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// FileTypes returns the file types this extractor handles.
func (e *Extractor) FileTypes() []domain.FileType {
	return []domain.FileType{domain.FileTypePDF}
}

// Extract pulls the plain text layer out of the PDF.
func (e *Extractor) Extract(_ context.Context, src domain.SourceDescriptor) (string, error) {
	f, r, err := pdf.Open(src.Path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w: %w", src.Path, domain.ErrInvalidInput, err)
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract text from %s: %w: %w", src.Path, domain.ErrInvalidInput, err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("extract text from %s: %w: %w", src.Path, domain.ErrInvalidInput, err)
	}
	return cleanText(buf.String()), nil
}

// cleanText strips control characters other than newline and tab.
func cleanText(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)
}
