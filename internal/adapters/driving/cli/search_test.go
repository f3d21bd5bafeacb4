package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/logger"
)

func init() {
	logger.SetOutput(&strings.Builder{})
}

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [terms...]", searchCmd.Use)
}

func TestSearchCmd_RequiresArgs(t *testing.T) {
	_, err := execute(t, "search")
	assert.Error(t, err)
}

func TestSearchCmd_HasLimitFlag(t *testing.T) {
	flag := searchCmd.Flags().Lookup("limit")
	require.NotNil(t, flag)
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "10", flag.DefValue)
}

func TestSearchCmd_FindsIndexedChunks(t *testing.T) {
	in := inputDir(t, "A palavra girassol aparece neste documento.")
	out := filepath.Join(t.TempDir(), "batches")

	_, err := execute(t, "convert", in, "--out", out, "--index")
	require.NoError(t, err)

	output, err := execute(t, "search", "girassol", "--out", out)
	require.NoError(t, err)

	assert.Contains(t, output, "Results for: girassol")
	assert.Contains(t, output, "nota.txt")
	assert.Contains(t, output, "score 1")
}

func TestSearchCmd_NoResults(t *testing.T) {
	out := filepath.Join(t.TempDir(), "batches")

	output, err := execute(t, "search", "inexistente", "--out", out)
	require.NoError(t, err)

	assert.Contains(t, output, "No results for: inexistente")
}
