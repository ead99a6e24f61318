// Package google implements candidate discovery against Google's HTML
// search results. The result markup is unversioned and changes without
// notice, so parsing is a tolerant textual scan rather than a strict DOM
// parse: each extraction rule is a small named function that degrades to
// "fewer results" instead of failing.
package google

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/qna"
)

// DefaultSiteFilter restricts results to Stack Overflow.
const DefaultSiteFilter = "site:stackoverflow.com"

// defaultResultMarker precedes each organic result title in the markup
// Google serves to simple HTTP clients.
const defaultResultMarker = `<h3 class="r">`

const searchEndpoint = "https://www.google.com/search?q="

// SearchURL builds the search request URL for a query. The site filter and
// the query payload are percent-encoded independently and then joined, so
// literal characters in the filter term (the colon in "site:") come out
// exactly as the encoder renders them regardless of what the query
// contains. Empty queries pass through unvalidated; the search engine
// simply returns nothing useful for them.
func SearchURL(siteFilter, query string) string {
	return searchEndpoint + url.QueryEscape(siteFilter) + "+" + url.QueryEscape(query)
}

// ParseResults extracts candidate page URLs from a search-results document,
// in document order. Result-title markers with no following anchor are
// skipped and scanning continues; a document that yields fewer results than
// expected is a normal condition, not an error.
func ParseResults(html, marker string) []string {
	if marker == "" {
		marker = defaultResultMarker
	}

	var candidates []string
	seen := make(map[string]bool)

	pos := 0
	for {
		i := strings.Index(html[pos:], marker)
		if i < 0 {
			break
		}
		pos += i + len(marker)

		href, next, ok := nextAnchorHref(html, pos)
		if !ok {
			// No anchor anywhere after this marker; later markers
			// can't have one either.
			break
		}
		pos = next

		dest, ok := destination(href)
		if !ok {
			continue
		}
		if !seen[dest] {
			seen[dest] = true
			candidates = append(candidates, dest)
		}
	}

	return candidates
}

// nextAnchorHref finds the first anchor tag at or after from and returns
// its href attribute value and the scan position just past it.
func nextAnchorHref(html string, from int) (href string, next int, ok bool) {
	i := strings.Index(html[from:], "<a ")
	if i < 0 {
		return "", 0, false
	}
	tagStart := from + i

	j := strings.Index(html[tagStart:], `href="`)
	if j < 0 {
		return "", 0, false
	}
	valStart := tagStart + j + len(`href="`)

	k := strings.Index(html[valStart:], `"`)
	if k < 0 {
		return "", 0, false
	}

	return html[valStart : valStart+k], valStart + k, true
}

// destination recovers the true target URL from a result anchor href.
// Google wraps destinations in a redirect of the form /url?q=<dest>&sa=...;
// the rule splits at the q= parameter and truncates at the next &.
func destination(href string) (string, bool) {
	_, rest, found := strings.Cut(href, "q=")
	if !found {
		return "", false
	}
	dest, _, _ := strings.Cut(rest, "&")
	if dest == "" {
		return "", false
	}
	return dest, true
}

// Ensure Provider implements qna.SearchProvider at compile time.
var _ qna.SearchProvider = (*Provider)(nil)

// Provider issues search requests through a Fetcher and parses the results.
type Provider struct {
	fetcher    qna.Fetcher
	siteFilter string
	marker     string
}

// Option configures a Provider.
type Option func(*Provider)

// WithSiteFilter overrides the site filter term prepended to every query.
func WithSiteFilter(filter string) Option {
	return func(p *Provider) {
		p.siteFilter = filter
	}
}

// WithResultMarker overrides the result-title marker scanned for in the
// results page. The marker is the part of the markup most likely to drift;
// keeping it injectable means a markup change is a configuration fix.
func WithResultMarker(marker string) Option {
	return func(p *Provider) {
		p.marker = marker
	}
}

// NewProvider creates a Provider that fetches through the given Fetcher.
func NewProvider(fetcher qna.Fetcher, opts ...Option) *Provider {
	p := &Provider{
		fetcher:    fetcher,
		siteFilter: DefaultSiteFilter,
		marker:     defaultResultMarker,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Search fetches the results page for the query and returns candidate URLs
// in rank order.
func (p *Provider) Search(ctx context.Context, query string) ([]string, error) {
	html, err := p.fetcher.Fetch(ctx, SearchURL(p.siteFilter, query))
	if err != nil {
		return nil, qna.Errorf(qna.EUNAVAILABLE, "search request failed: %v", err)
	}
	return ParseResults(html, p.marker), nil
}
