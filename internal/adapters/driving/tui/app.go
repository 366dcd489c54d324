package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/shotsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/shotsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/shotsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/shotsearch/internal/adapters/driving/tui/views/preview"
	"github.com/custodia-labs/shotsearch/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/shotsearch/internal/core/domain"
	"github.com/custodia-labs/shotsearch/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	searchView  *search.View
	previewView *preview.View

	currentView messages.ViewType

	// previousView is restored when help is closed.
	previousView messages.ViewType

	err    error
	width  int
	height int
	ready  bool

	mu      sync.Mutex
	program *tea.Program
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	settings := domain.DefaultSettings()
	if ports.Settings != nil {
		s, err := ports.Settings.Get()
		if err != nil {
			logger.Warn("Using default settings: %v", err)
		} else {
			settings = *s
		}
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		searchView:  search.NewView(s, km, ports.Search, ports.Sink, ports.History, settings),
		previewView: preview.NewView(s, ports.Search),
		currentView: messages.ViewSearch,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.previewView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(search.Title),
		a.searchView.Init(),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.EntrySelected:
		a.currentView = messages.ViewPreview
		return a, a.previewView.SetEntry(msg.Name, a.searchView.Result().Term)

	case messages.EntryLoaded:
		a.previewView, cmd = a.previewView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.SearchCompleted, messages.ResultsPresented, messages.EntriesLoaded,
		messages.IndexChanged:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewPreview {
			a.previewView, cmd = a.previewView.Update(msg)
		} else {
			a.searchView, cmd = a.searchView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	if a.currentView == messages.ViewSearch {
		a.searchView, cmd = a.searchView.Update(msg)
	}
	return a, cmd
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewSearch:
		if !a.searchView.InputFocused() {
			switch {
			case keymap.Matches(msg.String(), a.keymap.Quit):
				return a, tea.Quit
			case keymap.Matches(msg.String(), a.keymap.Help):
				a.showHelp()
				return a, nil
			}
		}
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.ViewPreview:
		switch {
		case keymap.Matches(msg.String(), a.keymap.Quit):
			return a, tea.Quit
		case keymap.Matches(msg.String(), a.keymap.Help):
			a.showHelp()
			return a, nil
		}
		a.previewView, cmd = a.previewView.Update(msg)
		return a, cmd

	case messages.ViewHelp:
		switch {
		case keymap.Matches(msg.String(), a.keymap.Quit):
			return a, tea.Quit
		case msg.Type == tea.KeyEsc, keymap.Matches(msg.String(), a.keymap.Help):
			a.currentView = a.previousView
		}
		return a, nil
	}
	return a, nil
}

func (a *App) showHelp() {
	a.previousView = a.currentView
	a.currentView = messages.ViewHelp
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewPreview:
		return a.previewView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewSearch:
	}
	return a.searchView.View()
}

func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	sections := []string{"Search", "Results", "General"}
	for i, group := range a.keymap.FullHelp() {
		b.WriteString(a.styles.Subtitle.Render(sections[i]))
		b.WriteString("\n")
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-10s %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Muted.Render("An empty query lists the first entries of the index."))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back"))
	return b.String()
}

// Run starts the TUI and blocks until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.WithContext(ctx)

	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(ctx))
	a.mu.Lock()
	a.program = p
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.program = nil
		a.mu.Unlock()
	}()

	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

// NotifyIndexChanged reports that the index file changed on disk.
// It is safe to call from any goroutine and is a no-op when not running.
func (a *App) NotifyIndexChanged(path string) {
	a.mu.Lock()
	p := a.program
	a.mu.Unlock()
	if p != nil {
		p.Send(messages.IndexChanged{Path: path})
	}
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SearchView returns the search view.
func (a *App) SearchView() *search.View {
	return a.searchView
}

// PreviewView returns the preview view.
func (a *App) PreviewView() *preview.View {
	return a.previewView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.searchView.SetDimensions(width, height)
	a.previewView.SetDimensions(width, height)
}
