package qna

// Sink receives resolved pages as a session navigates its candidates.
// PageReady fires exactly once per resolution, whether the page came from
// the cache or from the network.
type Sink interface {
	// PageReady delivers the extracted content for the candidate at the
	// session's current cursor.
	PageReady(url string, page *Page)

	// Unavailable signals that the requested content cannot be shown:
	// a query with zero candidates, a peek before any page resolved, or
	// a failed fetch. The session remains usable afterwards.
	Unavailable(reason string)
}
