// Package msdoc extracts text from legacy binary Word documents.
//
// The .doc container is a compound OLE file with no supported parser in
// this module's stack. Extraction here is a best-effort salvage: runs of
// printable characters long enough to look like prose are kept, binary
// noise between them is dropped. Users with important .doc inputs should
// convert them to .docx first.
package msdoc

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/domain"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// minRunLength is the shortest printable run worth keeping. Shorter runs
// are almost always format markers, not prose.
const minRunLength = 8

// Extractor handles legacy .doc documents on a best-effort basis.
type Extractor struct{}

// New creates a new legacy Word extractor.
func New() *Extractor {
	return &Extractor{}
}

// FileTypes returns the file types this extractor handles.
func (e *Extractor) FileTypes() []domain.FileType {
	return []domain.FileType{domain.FileTypeDOC}
}

// Extract salvages printable text runs from the binary container.
// Both single-byte and UTF-16LE encoded regions are scanned; the longer
// harvest wins, since Word files store text one way or the other.
func (e *Extractor) Extract(_ context.Context, src domain.SourceDescriptor) (string, error) {
	data, err := os.ReadFile(src.Path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", src.Path, err)
	}

	single := salvageRuns(string(data))
	wide := salvageRuns(decodeUTF16LE(data))
	text := single
	if utf8.RuneCountInString(wide) > utf8.RuneCountInString(single) {
		text = wide
	}
	if text == "" {
		return "", fmt.Errorf("%s: %w: no salvageable text", src.Filename, domain.ErrEmptyInput)
	}
	return text, nil
}

// salvageRuns keeps printable runs of at least minRunLength characters,
// joined by newlines.
func salvageRuns(text string) string {
	var runs []string
	var current strings.Builder
	flush := func() {
		if run := strings.TrimSpace(current.String()); len([]rune(run)) >= minRunLength {
			runs = append(runs, run)
		}
		current.Reset()
	}
	for _, r := range text {
		if unicode.IsPrint(r) || r == ' ' || r == '\t' {
			current.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return strings.Join(runs, "\n")
}

// decodeUTF16LE reinterprets the bytes as little-endian UTF-16.
func decodeUTF16LE(data []byte) string {
	if len(data) < 2 {
		return ""
	}
	codes := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		codes = append(codes, uint16(data[i])|uint16(data[i+1])<<8)
	}
	return string(utf16.Decode(codes))
}
