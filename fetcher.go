package qna

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations may use browser automation to handle pages that refuse
// plain HTTP clients.
type Fetcher interface {
	// Fetch performs a single GET of the URL and returns the body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
