// Package plaintext extracts text from plain text files.
package plaintext

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/domain"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Extractor handles plain text documents.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// FileTypes returns the file types this extractor handles.
func (e *Extractor) FileTypes() []domain.FileType {
	return []domain.FileType{domain.FileTypeTXT}
}

// Extract reads the file and returns its normalised text content.
// A leading UTF-8 byte order mark is dropped and line endings are
// normalised to LF.
func (e *Extractor) Extract(_ context.Context, src domain.SourceDescriptor) (string, error) {
	data, err := os.ReadFile(src.Path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", src.Path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	return cleanText(string(data)), nil
}

// cleanText normalises line endings and strips control characters
// other than newline and tab.
func cleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
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
