package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/domain"
)

// writeArtifact serializes a one-chunk batch to a JSON file and returns its path.
func writeArtifact(t *testing.T, text string) string {
	t.Helper()
	b, err := domain.OpenBatch()
	require.NoError(t, err)
	src := domain.NewSourceDescriptor("/in/relatorio.txt")
	chunk := domain.NewDocumentChunk(&src, 0, text)
	enc, err := json.Marshal(chunk)
	require.NoError(t, err)
	require.NoError(t, b.Append(chunk, len(enc)))
	b.Seal()

	data, err := json.Marshal(b)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "batch_0001_relatorio.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestBatchToText(t *testing.T) {
	artifact := writeArtifact(t, "O corpo do documento.")
	outPath := filepath.Join(t.TempDir(), "report.txt")

	got, err := BatchToText(artifact, outPath)
	require.NoError(t, err)
	assert.Equal(t, outPath, got)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	report := string(content)
	assert.Contains(t, report, "PROCESSED DOCUMENTS REPORT")
	assert.Contains(t, report, "Total documents: 1")
	assert.Contains(t, report, "File:       relatorio.txt")
	assert.Contains(t, report, "DOCUMENT 1")
	assert.Contains(t, report, "O corpo do documento.")
}

func TestBatchToText_DerivesOutputName(t *testing.T) {
	artifact := writeArtifact(t, "texto")

	got, err := BatchToText(artifact, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(artifact), "batch_0001_relatorio.txt"), got)

	_, err = os.Stat(got)
	assert.NoError(t, err)
}

func TestBatchToText_MissingArtifact(t *testing.T) {
	_, err := BatchToText(filepath.Join(t.TempDir(), "absent.json"), "")
	assert.Error(t, err)
}

func TestBatchToText_NotJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbled.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o644))

	_, err := BatchToText(path, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
