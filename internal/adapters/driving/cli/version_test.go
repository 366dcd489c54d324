package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Short(t *testing.T) {
	assert.Equal(t, "Print the version number", versionCmd.Short)
}

func TestVersionCmd_Executes(t *testing.T) {
	setupTestServices(t)
	originalVersion := version
	SetVersion("test-version-1.0.0")
	defer func() { version = originalVersion }()

	stdout, _, err := executeCmd(t, "", "version")

	require.NoError(t, err)
	assert.Contains(t, stdout, "shotsearch version test-version-1.0.0")
}

func TestVersionCmd_DisplaysDevByDefault(t *testing.T) {
	setupTestServices(t)
	originalVersion := version
	version = "dev"
	defer func() { version = originalVersion }()

	stdout, _, err := executeCmd(t, "", "version")

	require.NoError(t, err)
	assert.Contains(t, stdout, "shotsearch version dev")
}
