package jsonfile

import (
	"fmt"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
)

// Wire types use pointer fields so a missing field can be told apart from
// a zero value.

type wireBox struct {
	Height *float64 `json:"height"`
	Width  *float64 `json:"width"`
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
}

type wireWord struct {
	BoundingRect *wireBox `json:"bounding_rect"`
	Text         *string  `json:"text"`
}

type wireEntry struct {
	Lines *[]wireLine `json:"lines"`
	Text  *string     `json:"text"`
}

type wireLine struct {
	Text  *string     `json:"text"`
	Words *[]wireWord `json:"words"`
}

// toDomain validates e and converts it. The returned path names the first
// missing field, relative to the entry.
func (e wireEntry) toDomain() (domain.ImageEntry, string) {
	if e.Lines == nil {
		return domain.ImageEntry{}, "lines"
	}
	if e.Text == nil {
		return domain.ImageEntry{}, "text"
	}

	lines := make([]domain.Line, 0, len(*e.Lines))
	for i, l := range *e.Lines {
		line, missing := l.toDomain()
		if missing != "" {
			return domain.ImageEntry{}, fmt.Sprintf("lines[%d].%s", i, missing)
		}
		lines = append(lines, line)
	}

	return domain.ImageEntry{Lines: lines, Text: *e.Text}, ""
}

func (l wireLine) toDomain() (domain.Line, string) {
	if l.Text == nil {
		return domain.Line{}, "text"
	}
	if l.Words == nil {
		return domain.Line{}, "words"
	}

	words := make([]domain.Word, 0, len(*l.Words))
	for i, w := range *l.Words {
		word, missing := w.toDomain()
		if missing != "" {
			return domain.Line{}, fmt.Sprintf("words[%d].%s", i, missing)
		}
		words = append(words, word)
	}

	return domain.Line{Text: *l.Text, Words: words}, ""
}

func (w wireWord) toDomain() (domain.Word, string) {
	if w.BoundingRect == nil {
		return domain.Word{}, "bounding_rect"
	}
	if w.Text == nil {
		return domain.Word{}, "text"
	}

	box, missing := w.BoundingRect.toDomain()
	if missing != "" {
		return domain.Word{}, "bounding_rect." + missing
	}
	return domain.Word{BoundingRect: box, Text: *w.Text}, ""
}

func (b wireBox) toDomain() (domain.WordBox, string) {
	switch {
	case b.Height == nil:
		return domain.WordBox{}, "height"
	case b.Width == nil:
		return domain.WordBox{}, "width"
	case b.X == nil:
		return domain.WordBox{}, "x"
	case b.Y == nil:
		return domain.WordBox{}, "y"
	}
	return domain.WordBox{Height: *b.Height, Width: *b.Width, X: *b.X, Y: *b.Y}, ""
}
