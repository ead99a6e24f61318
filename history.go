package qna

import (
	"context"
	"time"
)

// Search represents one submitted query in the history archive.
type Search struct {
	ID        string    `json:"id"`
	Query     string    `json:"query"`
	Results   int       `json:"results"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the search contains invalid fields.
func (s *Search) Validate() error {
	if s.Query == "" {
		return Errorf(EINVALID, "search query required")
	}
	return nil
}

// ArchivedPage is a resolved page recorded against a search.
// The archive is an append-only log for the history command; it is never
// consulted by the session cache, which is rebuilt for every query.
type ArchivedPage struct {
	ID          string    `json:"id"`
	SearchID    string    `json:"searchId"`
	URL         string    `json:"url"`
	Position    int       `json:"position"`
	Question    string    `json:"question"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the archived page contains invalid fields.
func (p *ArchivedPage) Validate() error {
	if p.SearchID == "" {
		return Errorf(EINVALID, "search id required")
	}
	if p.URL == "" {
		return Errorf(EINVALID, "page url required")
	}
	return nil
}

// HistoryService records searches and their resolved pages.
type HistoryService interface {
	// CreateSearch records a submitted query.
	CreateSearch(ctx context.Context, search *Search) error

	// CreatePage records a resolved page under a search.
	CreatePage(ctx context.Context, page *ArchivedPage) error

	// RecentSearches returns up to limit searches, newest first.
	RecentSearches(ctx context.Context, limit int) ([]*Search, error)

	// FindPagesBySearch returns archived pages for a search in
	// candidate order.
	FindPagesBySearch(ctx context.Context, searchID string) ([]*ArchivedPage, error)
}
