package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/shotsearch/internal/adapters/driving/tui/styles"
)

func typeText(q *QueryInput, text string) {
	for _, r := range text {
		q.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewQueryInput(t *testing.T) {
	q := NewQueryInput(styles.DefaultStyles())

	require.NotNil(t, q)
	assert.Equal(t, "", q.Value())
	assert.True(t, q.Focused())
	assert.Empty(t, q.Recent())
}

func TestNewQueryInput_NilStyles(t *testing.T) {
	q := NewQueryInput(nil)

	require.NotNil(t, q)
	assert.NotNil(t, q.styles)
}

func TestQueryInput_Init(t *testing.T) {
	q := NewQueryInput(nil)

	assert.NotNil(t, q.Init())
}

func TestQueryInput_Typing(t *testing.T) {
	q := NewQueryInput(nil)

	typeText(q, "invoice")

	assert.Equal(t, "invoice", q.Value())
}

func TestQueryInput_View(t *testing.T) {
	q := NewQueryInput(nil)

	view := q.View()

	assert.Contains(t, view, "Search")
	assert.Contains(t, view, ">>")
}

func TestQueryInput_Submit(t *testing.T) {
	q := NewQueryInput(nil)
	typeText(q, "invoice")

	got := q.Submit()

	assert.Equal(t, "invoice", got)
	assert.Equal(t, "", q.Value())
	assert.Equal(t, []string{"invoice"}, q.Recent())
}

func TestQueryInput_Submit_EmptyNotRemembered(t *testing.T) {
	q := NewQueryInput(nil)

	got := q.Submit()

	assert.Equal(t, "", got)
	assert.Empty(t, q.Recent())
}

func TestQueryInput_Submit_SkipsRepeat(t *testing.T) {
	q := NewQueryInput(nil)
	q.SetValue("receipt")
	q.Submit()
	q.SetValue("receipt")
	q.Submit()

	assert.Equal(t, []string{"receipt"}, q.Recent())
}

func TestQueryInput_Recall(t *testing.T) {
	q := NewQueryInput(nil)
	q.SetValue("first")
	q.Submit()
	q.SetValue("second")
	q.Submit()

	q.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "second", q.Value())

	q.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "first", q.Value())

	q.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "first", q.Value(), "stays on oldest")

	q.Update(tea.KeyMsg{Type: tea.KeyDown})
	q.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "", q.Value(), "back to the live line")
}

func TestQueryInput_Recall_Empty(t *testing.T) {
	q := NewQueryInput(nil)
	q.SetValue("draft")

	q.Update(tea.KeyMsg{Type: tea.KeyUp})

	assert.Equal(t, "draft", q.Value())
}

func TestQueryInput_FocusBlur(t *testing.T) {
	q := NewQueryInput(nil)

	q.Blur()
	assert.False(t, q.Focused())

	q.Focus()
	assert.True(t, q.Focused())
}

func TestQueryInput_SetWidth(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		wantInner int
	}{
		{"wide", 100, 84},
		{"narrow clamps", 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQueryInput(nil)

			q.SetWidth(tt.width)

			assert.Equal(t, tt.width, q.Width())
			assert.Equal(t, tt.wantInner, q.textinput.Width)
		})
	}
}

func TestQueryInput_Reset(t *testing.T) {
	q := NewQueryInput(nil)
	q.SetValue("x")

	q.Reset()

	assert.Equal(t, "", q.Value())
}
