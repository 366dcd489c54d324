package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
)

func TestConfigCmd_Subcommands(t *testing.T) {
	names := make([]string, 0, len(configCmd.Commands()))
	for _, c := range configCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"get", "set", "path"}, names)
}

func TestConfigGet_All(t *testing.T) {
	env := setupTestServices(t)

	stdout, _, err := executeCmd(t, "", "config", "get")

	require.NoError(t, err)
	assert.Contains(t, stdout, "results.path = "+env.resultsPath)
	assert.Contains(t, stdout, "browse.limit = 10")
	assert.Contains(t, stdout, "search.fold_query = false")
	assert.Contains(t, stdout, "watch.enabled = false")
	assert.Contains(t, stdout, "mcp.port = 0")
}

func TestConfigGet_OneKey(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := executeCmd(t, "", "config", "get", "history.limit")

	require.NoError(t, err)
	assert.Equal(t, "20\n", stdout)
}

func TestConfigGet_UnknownKey(t *testing.T) {
	setupTestServices(t)

	_, _, err := executeCmd(t, "", "config", "get", "nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfigSet_PersistsValue(t *testing.T) {
	env := setupTestServices(t)

	stdout, _, err := executeCmd(t, "", "config", "set", "browse.limit", "5")
	require.NoError(t, err)
	assert.Contains(t, stdout, "browse.limit set to 5")

	settings, err := env.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, 5, settings.BrowseLimit)
}

func TestConfigSet_RejectsBadValue(t *testing.T) {
	setupTestServices(t)

	_, _, err := executeCmd(t, "", "config", "set", "browse.limit", "many")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfigPath(t *testing.T) {
	env := setupTestServices(t)

	stdout, _, err := executeCmd(t, "", "config", "path")

	require.NoError(t, err)
	assert.Equal(t, env.settings.Path()+"\n", stdout)
}
