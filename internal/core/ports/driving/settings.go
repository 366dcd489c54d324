package driving

import "github.com/custodia-labs/shotsearch/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings with defaults applied.
	Get() (*domain.Settings, error)

	// Save persists settings.
	Save(settings *domain.Settings) error

	// SetValue parses raw for the named key and persists it.
	SetValue(key, raw string) error

	// Keys returns the recognised configuration keys.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings

	// Path returns the configuration file path.
	Path() string
}
