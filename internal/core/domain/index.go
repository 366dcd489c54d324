package domain

// WordBox is the bounding rectangle of one recognised word.
type WordBox struct {
	Height float64
	Width  float64
	X      float64
	Y      float64
}

// Word is one recognised token.
type Word struct {
	// BoundingRect locates the word in the image.
	BoundingRect WordBox

	// Text is the word's text.
	Text string
}

// Line is one recognised line or sentence fragment.
type Line struct {
	// Text summarises Words. It is not validated against them.
	Text string

	// Words are the individual tokens, in reading order.
	Words []Word
}

// ImageEntry is the full recognition result for one image.
type ImageEntry struct {
	// Lines are the recognised lines, in reading order.
	Lines []Line

	// Text aggregates all lines. It is the field that searches match against.
	Text string
}

// IndexEntry pairs an image name with its entry.
type IndexEntry struct {
	Name  string
	Entry ImageEntry
}

// Index maps image filenames to their recognition results.
// An Index is immutable once built and safe for concurrent readers.
type Index struct {
	entries map[string]ImageEntry
}

// NewIndex builds an Index that takes ownership of entries.
// Callers must not modify entries afterwards.
func NewIndex(entries map[string]ImageEntry) *Index {
	if entries == nil {
		entries = make(map[string]ImageEntry)
	}
	return &Index{entries: entries}
}

// Len returns the number of entries.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.entries)
}

// Get returns the entry for name.
func (x *Index) Get(name string) (ImageEntry, bool) {
	if x == nil {
		return ImageEntry{}, false
	}
	e, ok := x.entries[name]
	return e, ok
}

// Names returns all image names in unspecified order.
func (x *Index) Names() []string {
	if x == nil {
		return nil
	}
	names := make([]string, 0, len(x.entries))
	for name := range x.entries {
		names = append(names, name)
	}
	return names
}

// Range calls fn for every entry until fn returns false.
// Iteration order is unspecified.
func (x *Index) Range(fn func(name string, entry ImageEntry) bool) {
	if x == nil {
		return
	}
	for name, entry := range x.entries {
		if !fn(name, entry) {
			return
		}
	}
}
