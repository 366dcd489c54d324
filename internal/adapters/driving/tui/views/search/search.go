// Package search provides the main search view for the TUI.
package search

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/shotsearch/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/shotsearch/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/shotsearch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/shotsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/shotsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/shotsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/shotsearch/internal/core/domain"
	"github.com/custodia-labs/shotsearch/internal/core/ports/driving"
	"github.com/custodia-labs/shotsearch/internal/logger"
)

// Title is the window and header title.
const Title = "Image Text DB Search"

// View is the search view: query input, match list with a text preview
// pane, and status bar. It follows the same session state machine as the
// line-oriented REPL.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	list      *list.MatchList
	statusbar *status.Bar

	search   driving.SearchService
	sink     driving.ResultSink
	history  driving.HistoryService
	settings domain.Settings
	ctx      context.Context

	state  domain.SessionState
	result domain.SearchResult

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = typing a query, false = navigating matches
	preview    string
}

// NewView creates a new search view. sink and history may be nil.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	search driving.SearchService,
	sink driving.ResultSink,
	history driving.HistoryService,
	settings domain.Settings,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:     s,
		keymap:     km,
		input:      input.NewQueryInput(s),
		list:       list.NewMatchList(s),
		statusbar:  status.NewBar(s, km),
		search:     search,
		sink:       sink,
		history:    history,
		settings:   settings,
		ctx:        context.Background(),
		state:      domain.StateAwaitingQuery,
		width:      80,
		height:     24,
		focusInput: true,
	}
	if search != nil {
		v.statusbar.SetMessage(fmt.Sprintf("%d entries loaded", search.Stats().Entries))
	}
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		return v, v.handleSearchCompleted(msg)

	case messages.ResultsPresented:
		return v, v.handleResultsPresented(msg)

	case messages.EntriesLoaded:
		return v, v.handleEntriesLoaded(msg)

	case messages.IndexChanged:
		v.statusbar.SetNotice("index file changed on disk; restart to reload")
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	if v.focusInput {
		v.input, cmd = v.input.Update(msg)
	}
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.focusInput {
		if msg.Type == tea.KeyEnter {
			return v, v.submit(v.input.Submit())
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	switch {
	case msg.Type == tea.KeyEnter:
		name := v.list.SelectedName()
		if name == "" {
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.EntrySelected{Name: name}
		}
	case msg.Type == tea.KeyEsc, keymap.Matches(msg.String(), v.keymap.NewSearch):
		v.focusInput = true
		return v, v.input.Focus()
	}

	v.list, _ = v.list.Update(msg)
	v.refreshPreview()
	return v, nil
}

// submit feeds a query into the session state machine.
func (v *View) submit(query string) tea.Cmd {
	if v.state != domain.StateAwaitingQuery {
		return nil
	}
	var effect domain.SessionEffect
	v.state, effect = domain.NextState(v.state, domain.SessionEvent{Kind: domain.EventQuery, Query: query})
	return v.dispatch(effect, query)
}

func (v *View) dispatch(effect domain.SessionEffect, query string) tea.Cmd {
	switch effect {
	case domain.EffectSearch:
		v.statusbar.SetState(status.StateSearching)
		return v.performSearch(query)
	case domain.EffectBrowse:
		v.statusbar.SetState(status.StateSearching)
		return v.loadEntries()
	case domain.EffectPresent:
		return v.present(v.result)
	case domain.EffectPrompt:
		v.focusInput = v.list.IsEmpty()
		if v.focusInput {
			return v.input.Focus()
		}
		v.input.Blur()
	case domain.EffectNone, domain.EffectExit, domain.EffectReportAndExit:
	}
	return nil
}

func (v *View) performSearch(query string) tea.Cmd {
	search, history, settings, ctx := v.search, v.history, v.settings, v.ctx
	return func() tea.Msg {
		if search == nil {
			return messages.SearchCompleted{Err: ErrNoSearchService}
		}
		result, err := search.Search(ctx, query, domain.SearchOptions{FoldQuery: settings.FoldQuery})
		if err != nil {
			return messages.SearchCompleted{Err: err}
		}
		if history != nil && settings.HistoryEnabled {
			if err := history.Record(ctx, search.Stats().Path, result); err != nil {
				logger.Warn("Recording history failed: %v", err)
			}
		}
		return messages.SearchCompleted{Result: result}
	}
}

func (v *View) loadEntries() tea.Cmd {
	search, limit, ctx := v.search, v.settings.BrowseLimit, v.ctx
	return func() tea.Msg {
		if search == nil {
			return messages.EntriesLoaded{Err: ErrNoSearchService}
		}
		entries, err := search.Browse(ctx, limit)
		return messages.EntriesLoaded{Entries: entries, Err: err}
	}
}

func (v *View) present(result domain.SearchResult) tea.Cmd {
	sink, ctx := v.sink, v.ctx
	return func() tea.Msg {
		if sink == nil {
			return messages.ResultsPresented{Count: result.Count()}
		}
		return messages.ResultsPresented{Count: result.Count(), Err: sink.Present(ctx, result)}
	}
}

func (v *View) handleSearchCompleted(msg messages.SearchCompleted) tea.Cmd {
	if msg.Err != nil {
		v.state = domain.StateAwaitingQuery
		v.setError(msg.Err)
		v.focusInput = true
		return v.input.Focus()
	}

	v.err = nil
	v.result = msg.Result
	v.list.SetNames("Matches", msg.Result.Matches)
	v.refreshPreview()
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetMatches(msg.Result.Count(), msg.Result.Elapsed)

	var effect domain.SessionEffect
	v.state, effect = domain.NextState(v.state, domain.SessionEvent{Kind: domain.EventSearchDone})
	return tea.Batch(
		tea.SetWindowTitle(fmt.Sprintf("%s - %d matches", Title, msg.Result.Count())),
		v.dispatch(effect, ""),
	)
}

func (v *View) handleResultsPresented(msg messages.ResultsPresented) tea.Cmd {
	if msg.Err != nil {
		if errors.Is(msg.Err, domain.ErrWrite) {
			v.statusbar.SetNotice("Warning: " + msg.Err.Error())
		} else {
			v.setError(msg.Err)
		}
	}
	var effect domain.SessionEffect
	v.state, effect = domain.NextState(v.state, domain.SessionEvent{Kind: domain.EventPresented})
	return v.dispatch(effect, "")
}

func (v *View) handleEntriesLoaded(msg messages.EntriesLoaded) tea.Cmd {
	if msg.Err != nil {
		v.state = domain.StateAwaitingQuery
		v.setError(msg.Err)
		v.focusInput = true
		return v.input.Focus()
	}

	v.err = nil
	names := make([]string, 0, len(msg.Entries))
	for _, e := range msg.Entries {
		names = append(names, e.Name)
	}
	v.list.SetNames(fmt.Sprintf("First %d Entries", len(names)), names)
	v.refreshPreview()
	v.statusbar.SetState(status.StateBrowsing)
	v.statusbar.SetMatches(len(names), 0)

	var effect domain.SessionEffect
	v.state, effect = domain.NextState(v.state, domain.SessionEvent{Kind: domain.EventBrowsed})
	return v.dispatch(effect, "")
}

// refreshPreview loads the text of the selected image into the side pane.
func (v *View) refreshPreview() {
	v.preview = ""
	name := v.list.SelectedName()
	if name == "" || v.search == nil {
		return
	}
	entry, err := v.search.Entry(v.ctx, name)
	if err != nil {
		v.preview = v.styles.Error.Render(err.Error())
		return
	}
	v.preview = entry.Text
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Title.Render(v.heading()), "", v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	listWidth := v.listWidth()
	left := lipgloss.NewStyle().Width(listWidth).Render(v.list.View())
	body := left
	if !v.list.IsEmpty() {
		right := v.styles.Preview.Width(v.width - listWidth - 3).Render(v.renderPreview())
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}
	sections = append(sections, body, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) heading() string {
	if v.state == domain.StateAwaitingQuery && v.result.Term != "" {
		return fmt.Sprintf("%s - %d matches", Title, v.result.Count())
	}
	return Title
}

func (v *View) renderPreview() string {
	if v.preview == "" {
		return v.styles.Muted.Render("(no text)")
	}
	return v.styles.Normal.Render(v.preview)
}

func (v *View) listWidth() int {
	w := v.width * 2 / 5
	if w < 20 {
		w = 20
	}
	return w
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(v.listWidth(), height-10) // header, input, status
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// State returns the session state.
func (v *View) State() domain.SessionState {
	return v.state
}

// Query returns the text currently typed in the input.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the input text.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Result returns the last completed search.
func (v *View) Result() domain.SearchResult {
	return v.result
}

// Listed returns the names currently shown.
func (v *View) Listed() []string {
	return v.list.Names()
}

// SelectedName returns the highlighted image name.
func (v *View) SelectedName() string {
	return v.list.SelectedName()
}

// Preview returns the text shown for the highlighted image.
func (v *View) Preview() string {
	return v.preview
}

// Status returns the status bar.
func (v *View) Status() *status.Bar {
	return v.statusbar
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
