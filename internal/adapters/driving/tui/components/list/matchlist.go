// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/shotsearch/internal/adapters/driving/tui/styles"
)

// MatchList displays image names in a navigable list.
type MatchList struct {
	names    []string
	title    string
	selected int
	offset   int
	styles   *styles.Styles
	width    int
	height   int
}

// NewMatchList creates a new match list component.
func NewMatchList(s *styles.Styles) *MatchList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &MatchList{
		title:  "Matches",
		styles: s,
		width:  40,
		height: 10,
	}
}

// Init initialises the match list.
func (m *MatchList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (m *MatchList) Update(msg tea.Msg) (*MatchList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			m.MoveUp()
		case "down", "j":
			m.MoveDown()
		case "pgup", "ctrl+u":
			m.move(-m.visibleCount())
		case "pgdown", "ctrl+d":
			m.move(m.visibleCount())
		case "home", "g":
			m.SetSelected(0)
		case "end", "G":
			m.SetSelected(len(m.names) - 1)
		}
	}
	return m, nil
}

// View renders the match list.
func (m *MatchList) View() string {
	if len(m.names) == 0 {
		return m.styles.Muted.Render("No matches")
	}

	visible := m.visibleCount()
	lines := make([]string, 0, visible+2)
	lines = append(lines, m.styles.Subtitle.Render(fmt.Sprintf("%s (%d)", m.title, len(m.names))), "")

	end := m.offset + visible
	if end > len(m.names) {
		end = len(m.names)
	}
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderName(i))
	}

	return strings.Join(lines, "\n")
}

func (m *MatchList) renderName(index int) string {
	name := truncate(m.names[index], m.width-4)
	if index == m.selected {
		return m.styles.Selected.Render("> " + name)
	}
	return m.styles.Normal.Render("  " + name)
}

// SetNames replaces the list contents and resets the selection.
func (m *MatchList) SetNames(title string, names []string) {
	m.title = title
	m.names = names
	m.selected = 0
	m.offset = 0
}

// Names returns the listed names.
func (m *MatchList) Names() []string {
	return m.names
}

// Title returns the list heading.
func (m *MatchList) Title() string {
	return m.title
}

// Selected returns the index of the selected name.
func (m *MatchList) Selected() int {
	return m.selected
}

// SetSelected sets the selected index. Out of range indexes are ignored.
func (m *MatchList) SetSelected(index int) {
	if index < 0 || index >= len(m.names) {
		return
	}
	m.selected = index
	m.scroll()
}

// SelectedName returns the selected name, or "" when the list is empty.
func (m *MatchList) SelectedName() string {
	if len(m.names) == 0 {
		return ""
	}
	return m.names[m.selected]
}

// MoveUp moves selection up.
func (m *MatchList) MoveUp() {
	m.move(-1)
}

// MoveDown moves selection down.
func (m *MatchList) MoveDown() {
	m.move(1)
}

func (m *MatchList) move(delta int) {
	if len(m.names) == 0 {
		return
	}
	next := m.selected + delta
	if next < 0 {
		next = 0
	}
	if next >= len(m.names) {
		next = len(m.names) - 1
	}
	m.SetSelected(next)
}

// scroll keeps the selection inside the visible window.
func (m *MatchList) scroll() {
	visible := m.visibleCount()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+visible {
		m.offset = m.selected - visible + 1
	}
}

func (m *MatchList) visibleCount() int {
	n := m.height - 2
	if n < 1 {
		n = 1
	}
	return n
}

// SetDimensions sets the component dimensions.
func (m *MatchList) SetDimensions(width, height int) {
	m.width = width
	m.height = height
	m.scroll()
}

// Width returns the current width.
func (m *MatchList) Width() int {
	return m.width
}

// Height returns the current height.
func (m *MatchList) Height() int {
	return m.height
}

// Count returns the number of names.
func (m *MatchList) Count() int {
	return len(m.names)
}

// IsEmpty returns whether the list is empty.
func (m *MatchList) IsEmpty() bool {
	return len(m.names) == 0
}

func truncate(s string, maxLen int) string {
	if maxLen < 8 {
		maxLen = 8
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
