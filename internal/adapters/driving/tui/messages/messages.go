// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/shotsearch/internal/core/domain"
)

// SearchCompleted carries a search result back to the model.
type SearchCompleted struct {
	Result domain.SearchResult
	Err    error
}

// EntriesLoaded carries a browse listing back to the model.
type EntriesLoaded struct {
	Entries []domain.IndexEntry
	Err     error
}

// ResultsPresented signals the match list was persisted.
// Err is a *domain.WriteError when the side-channel file could not be written.
type ResultsPresented struct {
	Count int
	Err   error
}

// EntrySelected is sent when an image is chosen for preview.
type EntrySelected struct {
	Name string
}

// EntryLoaded carries the recognition result for a previewed image.
type EntryLoaded struct {
	Name  string
	Entry *domain.ImageEntry
	Err   error
}

// IndexChanged is sent when the index file changes on disk.
type IndexChanged struct {
	Path string
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSearch is the search input and results view.
	ViewSearch ViewType = iota
	// ViewPreview shows the recognised lines and words of one image.
	ViewPreview
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewPreview:
		return "preview"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
