package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/shotsearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/shotsearch/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, domain.DefaultSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("results.path", "/tmp/out.txt")
	_ = store.Set("browse.limit", 5)
	_ = store.Set("search.fold_query", true)
	_ = store.Set("history.enabled", false)
	_ = store.Set("mcp.port", int64(8080))

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/out.txt", settings.ResultsPath)
	assert.Equal(t, 5, settings.BrowseLimit)
	assert.True(t, settings.FoldQuery)
	assert.False(t, settings.HistoryEnabled)
	assert.Equal(t, 8080, settings.MCPPort)
	assert.True(t, settings.WatchEnabled)
}

func TestSettingsService_Get_InvalidStoredValue(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("browse.limit", -3)

	service := NewSettingsService(store)

	_, err := service.Get()

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultSettings()
	settings.ResultsPath = "matches.txt"
	settings.HistoryLimit = 50
	settings.WatchEnabled = false

	require.NoError(t, service.Save(&settings))

	retrieved, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *retrieved)
}

func TestSettingsService_Save_Invalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings := domain.DefaultSettings()
	settings.ResultsPath = ""

	assert.ErrorIs(t, service.Save(&settings), domain.ErrInvalidInput)
	assert.ErrorIs(t, service.Save(nil), domain.ErrInvalidInput)
}

func TestSettingsService_SetValue(t *testing.T) {
	tests := []struct {
		key   string
		raw   string
		check func(t *testing.T, s *domain.Settings)
	}{
		{"results.path", "out.txt", func(t *testing.T, s *domain.Settings) {
			assert.Equal(t, "out.txt", s.ResultsPath)
		}},
		{"browse.limit", "25", func(t *testing.T, s *domain.Settings) {
			assert.Equal(t, 25, s.BrowseLimit)
		}},
		{"search.fold_query", "true", func(t *testing.T, s *domain.Settings) {
			assert.True(t, s.FoldQuery)
		}},
		{"watch.enabled", "false", func(t *testing.T, s *domain.Settings) {
			assert.False(t, s.WatchEnabled)
		}},
		{"mcp.port", "9000", func(t *testing.T, s *domain.Settings) {
			assert.Equal(t, 9000, s.MCPPort)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			require.NoError(t, service.SetValue(tt.key, tt.raw))

			settings, err := service.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_SetValue_Errors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		raw  string
	}{
		{"unknown key", "nope", "1"},
		{"bad int", "browse.limit", "ten"},
		{"bad bool", "history.enabled", "maybe"},
		{"negative limit", "history.limit", "-1"},
		{"port out of range", "mcp.port", "70000"},
		{"empty path", "results.path", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			err := service.SetValue(tt.key, tt.raw)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	keys := service.Keys()

	assert.Equal(t, []string{
		"results.path",
		"browse.limit",
		"search.fold_query",
		"history.enabled",
		"history.limit",
		"watch.enabled",
		"mcp.port",
	}, keys)
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.DefaultSettings(), service.GetDefaults())
}

func TestSettingsService_Path(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, ":memory:", service.Path())
}
