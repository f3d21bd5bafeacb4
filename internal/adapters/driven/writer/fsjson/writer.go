// Package fsjson persists sealed batches as JSON files on the local filesystem.
package fsjson

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/domain"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/ports/driven"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/logger"
)

// Ensure Writer implements the interface.
var _ driven.BatchWriter = (*Writer)(nil)

// slugMaxLen bounds the descriptive part of the artifact name.
const slugMaxLen = 50

// Writer writes one JSON artifact per sealed batch. Artifact names are
// sequential within a run, batch_0001_<slug>.json, where the slug comes
// from the first chunk's filename. Files are written to a temp name and
// renamed into place, so a crashed run never leaves a partial artifact
// under a final name.
type Writer struct {
	dir string
	seq int
}

// New creates a writer rooted at dir, creating the directory if needed.
func New(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w: %w", dir, domain.ErrWrite, err)
	}
	return &Writer{dir: dir}, nil
}

// Write serializes the batch and returns the artifact path.
// The encoded size is checked against the batch's tracked wire size;
// exceeding it means the size estimator admitted more than it should
// have, an internal fault reported as domain.ErrEstimationInconsistency.
func (w *Writer) Write(ctx context.Context, b *domain.Batch) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("write batch %s: %w: %w", b.ID, domain.ErrWrite, err)
	}

	data, err := json.Marshal(b)
	if err != nil {
		return "", fmt.Errorf("encode batch %s: %w: %w", b.ID, domain.ErrWrite, err)
	}
	if len(data) > b.WireSize() {
		logger.Error("batch %s encoded to %d bytes, admission estimate was %d", b.ID, len(data), b.WireSize())
		return "", fmt.Errorf("batch %s: %w: encoded %d bytes, estimated %d",
			b.ID, domain.ErrEstimationInconsistency, len(data), b.WireSize())
	}

	w.seq++
	path := filepath.Join(w.dir, fmt.Sprintf("batch_%04d_%s.json", w.seq, slug(b)))

	tmp, err := os.CreateTemp(w.dir, ".batch-*")
	if err != nil {
		return "", fmt.Errorf("write batch %s to %s: %w: %w", b.ID, path, domain.ErrWrite, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("write batch %s to %s: %w: %w", b.ID, path, domain.ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("write batch %s to %s: %w: %w", b.ID, path, domain.ErrWrite, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("write batch %s to %s: %w: %w", b.ID, path, domain.ErrWrite, err)
	}

	logger.Info("wrote %s (%d chunks, %d bytes)", path, len(b.Documents), len(data))
	return path, nil
}

// slug derives a filesystem-safe name fragment from the batch's first chunk.
func slug(b *domain.Batch) string {
	name := "documents"
	if len(b.Documents) > 0 && b.Documents[0].Source != nil {
		name = b.Documents[0].Source.Filename
	}
	name = strings.TrimSuffix(name, filepath.Ext(name))

	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		case r == ' ':
			sb.WriteRune('-')
		default:
			sb.WriteRune('_')
		}
	}
	out := sb.String()
	if len(out) > slugMaxLen {
		out = out[:slugMaxLen]
	}
	if out == "" {
		out = "documents"
	}
	return out
}
