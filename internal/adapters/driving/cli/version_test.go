package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	version = "1.2.3-test"
	defer func() { version = originalVersion }()

	output, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, output, "arquivos 1.2.3-test")
}

func TestVersionCmd_DisplaysDevByDefault(t *testing.T) {
	output, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, output, "arquivos dev")
}
