package qna

// Page holds the content extracted from one candidate Q&A page.
// A Page is created once per URL per session and is immutable afterwards;
// it is owned by the session cache.
type Page struct {
	// URL is the candidate page the content was extracted from.
	URL string

	// Question is the question text. Empty unless question extraction
	// was requested and the page carried a recognizable question region.
	Question string

	// Answers are the plain-text answer blocks in document order.
	Answers []string

	// AnswersHTML are the raw captured answer fragments, parallel to
	// Answers. Retained so display layers can re-render (e.g. to
	// Markdown) without refetching.
	AnswersHTML []string

	// Snippets are the code blocks in document order, one per answer
	// that contains a recognizable code region. Answers without code
	// contribute nothing, so Snippets is indexed independently of
	// Answers: Snippets[k] is not guaranteed to belong to Answers[k].
	Snippets []string
}

// Empty reports whether extraction found no usable content at all.
func (p *Page) Empty() bool {
	return p.Question == "" && len(p.Answers) == 0 && len(p.Snippets) == 0
}

// Extractor extracts structured Q&A content from a candidate page.
// Implementations must tolerate malformed input: absence of expected
// structure yields omitted or empty fields, never an error.
type Extractor interface {
	// Extract processes raw HTML and returns the extracted page content.
	// The URL field of the returned Page is left for the caller to fill.
	Extract(html string) (*Page, error)
}

// ChainExtractor tries each extractor in order and returns the first
// non-empty result. It exists because the site filter on the search request
// is advisory: the occasional candidate is not Q&A markup at all, and a
// generic main-content extractor at the end of the chain still produces
// something readable for it.
type ChainExtractor []Extractor

var _ Extractor = (ChainExtractor)(nil)

// Extract runs the chain. The last extractor's result is returned even when
// empty, so callers always get a Page for a successfully fetched document.
func (c ChainExtractor) Extract(html string) (*Page, error) {
	var last *Page
	for _, e := range c {
		page, err := e.Extract(html)
		if err != nil {
			continue
		}
		if !page.Empty() {
			return page, nil
		}
		last = page
	}
	if last == nil {
		return &Page{}, nil
	}
	return last, nil
}
