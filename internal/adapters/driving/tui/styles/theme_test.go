package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	for _, c := range []lipgloss.Color{
		theme.Primary, theme.Secondary, theme.Background, theme.Foreground,
		theme.Muted, theme.Match, theme.Warning, theme.Error, theme.Border,
	} {
		assert.NotEmpty(t, string(c))
	}
}

func TestDefaultTheme_AccentsAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	accents := []lipgloss.Color{theme.Primary, theme.Secondary, theme.Match, theme.Warning, theme.Error}

	seen := make(map[string]bool)
	for _, c := range accents {
		assert.False(t, seen[string(c)], "duplicate accent: %s", c)
		seen[string(c)] = true
	}
}

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.Equal(t, DefaultTheme(), s.Theme())
}

func TestNewStyles_UsesThemeColours(t *testing.T) {
	theme := DefaultTheme()
	theme.Match = lipgloss.Color("#123456")

	s := NewStyles(theme)

	assert.Equal(t, lipgloss.Color("#123456"), s.Match.GetForeground())
	assert.Equal(t, theme.Primary, s.Selected.GetBackground())
}

func TestDefaultStyles_Render(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.Title.Render("Image Text DB Search"), "Image Text DB Search")
	assert.Contains(t, s.Match.Render("invoice"), "invoice")
	assert.Contains(t, s.Preview.Render("text"), "text")
}
