// Package session owns the navigable result set for one query: the ordered
// candidate list, the cursor, the per-query page cache, and the
// fetch → extract → cache → deliver orchestration.
//
// Concurrency model: methods block in the caller's goroutine. A new Submit
// supersedes any outstanding work through an epoch counter plus context
// cancellation, so a slow response from a previous query is discarded when
// it finally arrives instead of corrupting the current result set.
// Navigation while a page fetch is in flight is rejected rather than
// queued, and duplicate fetches of the same URL are collapsed through
// singleflight, so no two fetches can race for the same cursor.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/qna"
	"golang.org/x/sync/singleflight"
)

// DefaultMaxPos is the navigation ceiling: the cursor never advances past
// this index no matter how many candidates the search returned. A safety
// cap, not a relevance judgment; tune it through Session.MaxPos.
const DefaultMaxPos = 10

// State identifies where a session is in its lifecycle.
type State int

// Session states.
const (
	Idle State = iota
	Searching
	Ready
	FetchingPage
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Searching:
		return "searching"
	case Ready:
		return "ready"
	case FetchingPage:
		return "fetching"
	default:
		return "unknown"
	}
}

// errSuperseded marks completions that arrived after a newer query took
// over the session. Discarded silently, never delivered to the sink.
var errSuperseded = qna.Errorf(qna.EUNAVAILABLE, "superseded by a newer query")

// Session orchestrates candidate discovery and page navigation for one
// query at a time. Configure the exported fields before the first Submit;
// they must not change afterwards.
type Session struct {
	Search    qna.SearchProvider
	Fetcher   qna.Fetcher
	Extractor qna.Extractor
	Sink      qna.Sink

	// History, if set, receives an archive record per search and per
	// resolved page. Archive failures are ignored; history is a log,
	// not a dependency.
	History qna.HistoryService

	// Limiter, if set, paces page fetches per host.
	Limiter *Limiter

	// MaxPos caps the cursor. Zero means DefaultMaxPos.
	MaxPos int

	// RetryDelays are the backoff delays between fetch attempts.
	// Nil means DefaultRetryDelays().
	RetryDelays []time.Duration

	mu         sync.Mutex
	group      singleflight.Group
	state      State
	epoch      uint64
	cancel     context.CancelFunc
	query      string
	searchID   string
	candidates []string
	cursor     int
	cache      *Cache
}

// Submit starts a new query. Any outstanding search or page fetch from a
// previous query is canceled and its late completion discarded. The
// candidate list, cursor and cache are reset; on success the page at
// cursor 0 is resolved and delivered to the sink before Submit returns.
//
// A query with zero candidates leaves the session idle and returns
// ENOTFOUND; that is a reported terminal state, not a failure.
func (s *Session) Submit(ctx context.Context, query string) error {
	s.mu.Lock()
	s.epoch++
	epoch := s.epoch
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.state = Searching
	s.query = query
	s.searchID = ""
	s.candidates = nil
	s.cursor = 0
	s.cache = NewCache()
	s.mu.Unlock()

	urls, err := s.Search.Search(ctx, query)

	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return errSuperseded
	}
	if err != nil {
		s.state = Idle
		s.mu.Unlock()
		return err
	}
	if len(urls) == 0 {
		s.state = Idle
		s.mu.Unlock()
		if s.Sink != nil {
			s.Sink.Unavailable("no results found")
		}
		return qna.Errorf(qna.ENOTFOUND, "no results for %q", query)
	}
	s.candidates = urls
	s.state = Ready
	s.mu.Unlock()

	if s.History != nil {
		search := &qna.Search{Query: query, Results: len(urls)}
		if err := s.History.CreateSearch(ctx, search); err == nil {
			s.mu.Lock()
			if s.epoch == epoch {
				s.searchID = search.ID
			}
			s.mu.Unlock()
		}
	}

	return s.moveTo(ctx, epoch, 0)
}

// Advance moves the cursor forward by one, clamped to the navigation
// ceiling and the end of the candidate list, and resolves the page at the
// new position (from cache when possible). Advancing an already-clamped
// cursor redelivers the current page.
func (s *Session) Advance(ctx context.Context) error {
	s.mu.Lock()
	epoch, target, err := s.navTarget(1)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.moveTo(ctx, epoch, target)
}

// Retreat moves the cursor back by one, clamped to zero, and resolves the
// page at the new position.
func (s *Session) Retreat(ctx context.Context) error {
	s.mu.Lock()
	epoch, target, err := s.navTarget(-1)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.moveTo(ctx, epoch, target)
}

// navTarget validates a navigation request and computes the clamped target
// cursor. Caller must hold s.mu.
func (s *Session) navTarget(delta int) (epoch uint64, target int, err error) {
	if s.state == FetchingPage {
		return 0, 0, qna.Errorf(qna.EUNAVAILABLE, "a page fetch is already in flight")
	}
	if len(s.candidates) == 0 {
		return 0, 0, qna.Errorf(qna.ENOTFOUND, "no active query")
	}

	target = s.cursor + delta
	if max := s.maxPos(); target > max {
		target = max
	}
	if last := len(s.candidates) - 1; target > last {
		target = last
	}
	if target < 0 {
		target = 0
	}
	return s.epoch, target, nil
}

// moveTo sets the cursor and resolves the page at it: cache hit delivers
// immediately, cache miss fetches, extracts and caches. On a failed fetch
// the cursor is restored so the session stays Ready at its prior position.
func (s *Session) moveTo(ctx context.Context, epoch uint64, target int) error {
	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return errSuperseded
	}
	if s.state == FetchingPage {
		s.mu.Unlock()
		return qna.Errorf(qna.EUNAVAILABLE, "a page fetch is already in flight")
	}
	prev := s.cursor
	s.cursor = target
	url := s.candidates[target]

	if page, ok := s.cache.Get(url); ok {
		s.mu.Unlock()
		if s.Sink != nil {
			s.Sink.PageReady(url, page)
		}
		return nil
	}

	s.state = FetchingPage
	s.mu.Unlock()

	v, err, _ := s.group.Do(url, func() (any, error) {
		return s.fetchPage(ctx, url)
	})

	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return errSuperseded
	}
	s.state = Ready
	if err != nil {
		s.cursor = prev
		s.mu.Unlock()
		if s.Sink != nil {
			s.Sink.Unavailable("retrieval failed for " + url)
		}
		return qna.Errorf(qna.EUNAVAILABLE, "retrieval failed for %s: %v", url, err)
	}

	page := v.(*qna.Page)
	s.cache.Put(url, page)
	searchID := s.searchID
	s.mu.Unlock()

	if s.History != nil && searchID != "" {
		_ = s.History.CreatePage(ctx, &qna.ArchivedPage{
			SearchID: searchID,
			URL:      url,
			Position: target,
			Question: page.Question,
			Content:  strings.Join(page.Answers, "\n\n"),
		})
	}

	if s.Sink != nil {
		s.Sink.PageReady(url, page)
	}
	return nil
}

// fetchPage performs the network and extraction work for one candidate.
func (s *Session) fetchPage(ctx context.Context, url string) (*qna.Page, error) {
	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx, url); err != nil {
			return nil, err
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := fetchWithRetry(ctx, s.Fetcher, url, delays)
	if err != nil {
		return nil, err
	}

	page, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}
	page.URL = url
	return page, nil
}

// Current returns the cached record for the candidate at the cursor
// without triggering a network fetch. Returns ENOTFOUND when no query is
// active or the page has not resolved yet; peeking must never fetch.
func (s *Session) Current() (*qna.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.candidates) == 0 {
		return nil, qna.Errorf(qna.ENOTFOUND, "no active query")
	}
	page, ok := s.cache.Get(s.candidates[s.cursor])
	if !ok {
		return nil, qna.Errorf(qna.ENOTFOUND, "page not resolved yet")
	}
	return page, nil
}

// CurrentURL returns the candidate URL at the cursor.
func (s *Session) CurrentURL() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.candidates) == 0 {
		return "", qna.Errorf(qna.ENOTFOUND, "no active query")
	}
	return s.candidates[s.cursor], nil
}

// Query returns the active query string.
func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Cursor returns the current cursor position.
func (s *Session) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Candidates returns a copy of the candidate list.
func (s *Session) Candidates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.candidates))
	copy(out, s.candidates)
	return out
}

// State returns the session's lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// maxPos returns the navigation ceiling. Caller must hold s.mu.
func (s *Session) maxPos() int {
	if s.MaxPos > 0 {
		return s.MaxPos
	}
	return DefaultMaxPos
}
