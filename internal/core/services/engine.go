package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
)

// FindTerm returns the names of all entries whose lowercased text contains
// term, in natural order.
//
// Only the indexed text is lowercased. The term is matched as given, so an
// uppercase term never matches; callers wanting case-insensitive search must
// lowercase the term first. An empty term matches every entry.
//
// The scan is sequential and the result is sorted once after the scan. The
// returned slice is never nil.
func FindTerm(index *domain.Index, term string) []string {
	matches := make([]string, 0)
	if index == nil {
		return matches
	}

	lower := cases.Lower(language.Und)
	index.Range(func(name string, entry domain.ImageEntry) bool {
		if term == "" || strings.Contains(lower.String(entry.Text), term) {
			matches = append(matches, name)
		}
		return true
	})

	SortNatural(matches)
	return matches
}

// FoldTerm lowercases a query term the same way indexed text is lowercased.
func FoldTerm(term string) string {
	return cases.Lower(language.Und).String(term)
}
