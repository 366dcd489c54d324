package search

import "errors"

// ErrNoSearchService is reported when a query is submitted with no index
// behind the view.
var ErrNoSearchService = errors.New("search view: no index to search")
