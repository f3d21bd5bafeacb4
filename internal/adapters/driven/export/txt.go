// Package export renders written batch artifacts into human-readable reports.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/domain"
)

const rule = "--------------------------------------------------------------------------------"

// BatchToText renders the batch artifact at jsonPath as a text report and
// writes it to outPath. An empty outPath derives the report name from the
// artifact name. Returns the report path.
func BatchToText(jsonPath, outPath string) (string, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return "", fmt.Errorf("read artifact %s: %w", jsonPath, err)
	}

	var b domain.Batch
	if err := json.Unmarshal(data, &b); err != nil {
		return "", fmt.Errorf("decode artifact %s: %w: %w", jsonPath, domain.ErrInvalidInput, err)
	}

	if outPath == "" {
		outPath = strings.TrimSuffix(jsonPath, ".json") + ".txt"
	}

	if err := os.WriteFile(outPath, []byte(render(&b)), 0o644); err != nil {
		return "", fmt.Errorf("write report %s: %w: %w", outPath, domain.ErrWrite, err)
	}
	return outPath, nil
}

func render(b *domain.Batch) string {
	var sb strings.Builder
	sb.WriteString(rule + "\n")
	sb.WriteString("PROCESSED DOCUMENTS REPORT\n")
	sb.WriteString(rule + "\n\n")
	fmt.Fprintf(&sb, "Batch ID:        %s\n", b.ID)
	fmt.Fprintf(&sb, "Created at:      %s\n", b.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&sb, "Total documents: %d\n\n", len(b.Documents))

	for i := range b.Documents {
		c := &b.Documents[i]
		fmt.Fprintf(&sb, "%s\nDOCUMENT %d\n%s\n", rule, i+1, rule)
		if c.Source != nil {
			fmt.Fprintf(&sb, "File:       %s\n", c.Source.Filename)
			fmt.Fprintf(&sb, "Type:       %s\n", c.Source.Type)
			fmt.Fprintf(&sb, "Path:       %s\n", c.Source.Path)
		}
		fmt.Fprintf(&sb, "Chunk:      %d\n", c.ChunkIndex)
		fmt.Fprintf(&sb, "Characters: %d\n\n", c.CharCount)
		if c.Text != "" {
			sb.WriteString(c.Text)
			sb.WriteString("\n\n")
		} else {
			sb.WriteString("(no text content)\n\n")
		}
	}
	return sb.String()
}
