package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
	"github.com/custodia-labs/shotsearch/internal/core/ports/driven"
	"github.com/custodia-labs/shotsearch/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyResultsPath    = "results.path"
	keyBrowseLimit    = "browse.limit"
	keyFoldQuery      = "search.fold_query"
	keyHistoryEnabled = "history.enabled"
	keyHistoryLimit   = "history.limit"
	keyWatchEnabled   = "watch.enabled"
	keyMCPPort        = "mcp.port"
)

type keyKind int

const (
	kindString keyKind = iota
	kindInt
	kindBool
)

// settingKeys lists recognised keys in display order.
var settingKeys = []struct {
	key  string
	kind keyKind
}{
	{keyResultsPath, kindString},
	{keyBrowseLimit, kindInt},
	{keyFoldQuery, kindBool},
	{keyHistoryEnabled, kindBool},
	{keyHistoryLimit, kindInt},
	{keyWatchEnabled, kindBool},
	{keyMCPPort, kindInt},
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		ResultsPath:    s.getString(keyResultsPath, defaults.ResultsPath),
		BrowseLimit:    s.getInt(keyBrowseLimit, defaults.BrowseLimit),
		FoldQuery:      s.getBool(keyFoldQuery, defaults.FoldQuery),
		HistoryEnabled: s.getBool(keyHistoryEnabled, defaults.HistoryEnabled),
		HistoryLimit:   s.getInt(keyHistoryLimit, defaults.HistoryLimit),
		WatchEnabled:   s.getBool(keyWatchEnabled, defaults.WatchEnabled),
		MCPPort:        s.getInt(keyMCPPort, defaults.MCPPort),
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", s.configStore.Path(), err)
	}
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key string
		val any
	}{
		{keyResultsPath, settings.ResultsPath},
		{keyBrowseLimit, settings.BrowseLimit},
		{keyFoldQuery, settings.FoldQuery},
		{keyHistoryEnabled, settings.HistoryEnabled},
		{keyHistoryLimit, settings.HistoryLimit},
		{keyWatchEnabled, settings.WatchEnabled},
		{keyMCPPort, settings.MCPPort},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.val); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// SetValue parses raw according to the type of key and persists it.
func (s *SettingsService) SetValue(key, raw string) error {
	for _, k := range settingKeys {
		if k.key != key {
			continue
		}

		var val any
		switch k.kind {
		case kindInt:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("%s expects an integer: %w", key, domain.ErrInvalidInput)
			}
			val = n
		case kindBool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("%s expects true or false: %w", key, domain.ErrInvalidInput)
			}
			val = b
		default:
			val = raw
		}

		settings, err := s.Get()
		if err != nil {
			return err
		}
		applySetting(settings, key, val)
		if err := settings.Validate(); err != nil {
			return fmt.Errorf("%s=%q: %w", key, raw, err)
		}
		if err := s.configStore.Set(key, val); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
		return nil
	}
	return fmt.Errorf("unknown key %q: %w", key, domain.ErrInvalidInput)
}

// Keys returns the recognised configuration keys.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingKeys))
	for _, k := range settingKeys {
		keys = append(keys, k.key)
	}
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func applySetting(settings *domain.Settings, key string, val any) {
	switch key {
	case keyResultsPath:
		settings.ResultsPath = val.(string)
	case keyBrowseLimit:
		settings.BrowseLimit = val.(int)
	case keyFoldQuery:
		settings.FoldQuery = val.(bool)
	case keyHistoryEnabled:
		settings.HistoryEnabled = val.(bool)
	case keyHistoryLimit:
		settings.HistoryLimit = val.(int)
	case keyWatchEnabled:
		settings.WatchEnabled = val.(bool)
	case keyMCPPort:
		settings.MCPPort = val.(int)
	}
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
