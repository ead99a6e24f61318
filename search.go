package qna

import "context"

// SearchProvider turns a free-text query into an ordered list of candidate
// page URLs. Order is the rank order returned by the upstream search page;
// no further relevance scoring happens downstream.
type SearchProvider interface {
	// Search issues the search request and returns candidate URLs in
	// document order. An empty slice is a normal outcome for queries
	// with no matches, not an error.
	Search(ctx context.Context, query string) ([]string, error)
}
