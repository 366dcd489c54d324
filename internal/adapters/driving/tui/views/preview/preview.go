// Package preview provides the view showing the recognised text of one image.
package preview

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/shotsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/shotsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/shotsearch/internal/core/domain"
	"github.com/custodia-labs/shotsearch/internal/core/ports/driving"
)

// View shows an image's aggregate text followed by its lines and words.
type View struct {
	styles *styles.Styles
	search driving.SearchService
	ctx    context.Context

	name      string
	term      string
	entry     *domain.ImageEntry
	showWords bool
	rows      []string

	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
	loading      bool
}

// NewView creates a new preview view.
func NewView(s *styles.Styles, search driving.SearchService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:    s,
		search:    search,
		ctx:       context.Background(),
		showWords: true,
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetEntry selects the image to show and returns a command that loads it.
// Lines whose lowercased text contains term are highlighted.
func (v *View) SetEntry(name, term string) tea.Cmd {
	v.name = name
	v.term = term
	v.entry = nil
	v.rows = nil
	v.scrollOffset = 0
	v.err = nil
	v.loading = true

	search, ctx := v.search, v.ctx
	return func() tea.Msg {
		if search == nil {
			return messages.EntryLoaded{Name: name, Err: fmt.Errorf("search service not available")}
		}
		entry, err := search.Entry(ctx, name)
		return messages.EntryLoaded{Name: name, Entry: entry, Err: err}
	}
}

// Update handles messages for the preview view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.EntryLoaded:
		if msg.Name != v.name {
			return v, nil
		}
		v.loading = false
		v.err = msg.Err
		v.entry = msg.Entry
		v.layout()
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		v.scrollTo(v.scrollOffset - 1)
	case "down", "j":
		v.scrollTo(v.scrollOffset + 1)
	case "pgup", "ctrl+u":
		v.scrollTo(v.scrollOffset - v.visibleRows())
	case "pgdown", "ctrl+d":
		v.scrollTo(v.scrollOffset + v.visibleRows())
	case "home", "g":
		v.scrollTo(0)
	case "end", "G":
		v.scrollTo(v.maxScrollOffset())
	case "w":
		v.showWords = !v.showWords
		v.layout()
		v.scrollTo(v.scrollOffset)
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewSearch}
		}
	}
	return v, nil
}

func (v *View) scrollTo(offset int) {
	if offset > v.maxScrollOffset() {
		offset = v.maxScrollOffset()
	}
	if offset < 0 {
		offset = 0
	}
	v.scrollOffset = offset
}

// layout renders the entry into display rows.
func (v *View) layout() {
	v.rows = nil
	if v.entry == nil {
		return
	}

	width := v.width - 4
	if width < 20 {
		width = 20
	}

	v.rows = append(v.rows, wrap(v.entry.Text, width)...)
	v.rows = append(v.rows, "", v.styles.Subtitle.Render(fmt.Sprintf("Lines (%d)", len(v.entry.Lines))))

	for i, line := range v.entry.Lines {
		text := fmt.Sprintf("%3d  %s", i+1, line.Text)
		if v.term != "" && strings.Contains(strings.ToLower(line.Text), v.term) {
			v.rows = append(v.rows, v.styles.Match.Render(text))
		} else {
			v.rows = append(v.rows, v.styles.Normal.Render(text))
		}
		if !v.showWords {
			continue
		}
		for _, w := range line.Words {
			r := w.BoundingRect
			v.rows = append(v.rows, v.styles.Muted.Render(fmt.Sprintf(
				"       %-20s x=%.0f y=%.0f %.0fx%.0f", w.Text, r.X, r.Y, r.Width, r.Height)))
		}
	}
}

func wrap(text string, width int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		r := []rune(line)
		for len(r) > width {
			out = append(out, string(r[:width]))
			r = r[width:]
		}
		out = append(out, string(r))
	}
	return out
}

// visibleRows returns the number of rows that can be displayed.
func (v *View) visibleRows() int {
	// title, separator, help and padding
	available := v.height - 6
	if available < 1 {
		available = 1
	}
	return available
}

func (v *View) maxScrollOffset() int {
	maxOffset := len(v.rows) - v.visibleRows()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// View renders the preview.
func (v *View) View() string {
	var b strings.Builder

	title := v.name
	if title == "" {
		title = "Preview"
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", min(v.width-4, 60)))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case len(v.rows) == 0:
		b.WriteString(v.styles.Muted.Render("(No text)"))
	default:
		visible := v.visibleRows()
		end := min(v.scrollOffset+visible, len(v.rows))
		for i := v.scrollOffset; i < end; i++ {
			b.WriteString(v.rows[i])
			b.WriteString("\n")
		}
		if len(v.rows) > visible {
			b.WriteString("\n")
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  Row %d-%d of %d",
				v.scrollOffset+1, end, len(v.rows))))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[↑/↓/PgUp/PgDn] scroll  [g/G] top/bottom  [w] toggle words  [esc] back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.layout()
	v.scrollTo(v.scrollOffset)
}

// Name returns the previewed image name.
func (v *View) Name() string {
	return v.name
}

// Entry returns the loaded entry, or nil.
func (v *View) Entry() *domain.ImageEntry {
	return v.entry
}

// Rows returns the rendered rows.
func (v *View) Rows() []string {
	return v.rows
}

// ScrollOffset returns the first visible row.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}

// ShowWords reports whether word boxes are listed.
func (v *View) ShowWords() bool {
	return v.showWords
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
