// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/shotsearch/internal/adapters/driving/tui/styles"
)

// QueryInput wraps a bubbles textinput and remembers submitted terms.
type QueryInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int

	// recent holds submitted terms, oldest first.
	recent []string
	// cursor indexes recent while recalling; len(recent) means the live line.
	cursor int
}

// NewQueryInput creates a new query input component.
func NewQueryInput(s *styles.Styles) *QueryInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Enter a term to search for (empty lists entries)"
	ti.Prompt = ">> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &QueryInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init initialises the query input.
func (q *QueryInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages. Up and down recall earlier terms.
func (q *QueryInput) Update(msg tea.Msg) (*QueryInput, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type { //nolint:exhaustive // only recall keys are intercepted
		case tea.KeyUp:
			q.recall(-1)
			return q, nil
		case tea.KeyDown:
			q.recall(1)
			return q, nil
		}
	}

	var cmd tea.Cmd
	q.textinput, cmd = q.textinput.Update(msg)
	return q, cmd
}

func (q *QueryInput) recall(delta int) {
	if len(q.recent) == 0 {
		return
	}
	next := q.cursor + delta
	if next < 0 || next > len(q.recent) {
		return
	}
	q.cursor = next
	if q.cursor == len(q.recent) {
		q.textinput.SetValue("")
		return
	}
	q.textinput.SetValue(q.recent[q.cursor])
	q.textinput.CursorEnd()
}

// View renders the query input.
func (q *QueryInput) View() string {
	label := q.styles.Title.Render("Search: ")
	field := q.styles.InputField.Render(q.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Submit returns the current value, remembers it when non-empty and
// clears the line.
func (q *QueryInput) Submit() string {
	value := q.textinput.Value()
	if value != "" && (len(q.recent) == 0 || q.recent[len(q.recent)-1] != value) {
		q.recent = append(q.recent, value)
	}
	q.cursor = len(q.recent)
	q.textinput.Reset()
	return value
}

// Recent returns the remembered terms, oldest first.
func (q *QueryInput) Recent() []string {
	return q.recent
}

// Value returns the current input value.
func (q *QueryInput) Value() string {
	return q.textinput.Value()
}

// SetValue sets the input value.
func (q *QueryInput) SetValue(value string) {
	q.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (q *QueryInput) Focus() tea.Cmd {
	return q.textinput.Focus()
}

// Blur removes focus from the input.
func (q *QueryInput) Blur() {
	q.textinput.Blur()
}

// Focused returns whether the input is focused.
func (q *QueryInput) Focused() bool {
	return q.textinput.Focused()
}

// SetWidth sets the width of the input.
func (q *QueryInput) SetWidth(width int) {
	q.width = width
	// label, prompt and border
	inputWidth := width - 16
	if inputWidth < 20 {
		inputWidth = 20
	}
	q.textinput.Width = inputWidth
}

// Width returns the current width.
func (q *QueryInput) Width() int {
	return q.width
}

// Reset clears the input.
func (q *QueryInput) Reset() {
	q.textinput.Reset()
	q.cursor = len(q.recent)
}
