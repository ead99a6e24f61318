// Package goquery implements qna.Extractor with CSS selectors for pages
// whose markup parses cleanly. It understands both the current Stack
// Overflow post-body classes and the legacy ones; for markup too broken to
// parse, the scan package's textual scanner is the tolerant alternative.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/qna"
)

// postBodySelector matches the post body across markup generations.
const postBodySelector = ".js-post-body, .s-prose, .post-text"

var blankRe = regexp.MustCompile(`\n{3,}`)

// Ensure Extractor implements qna.Extractor at compile time.
var _ qna.Extractor = (*Extractor)(nil)

// Extractor extracts Q&A content via DOM traversal.
type Extractor struct {
	includeQuestion bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithQuestion enables extraction of the question text.
func WithQuestion(include bool) Option {
	return func(e *Extractor) {
		e.includeQuestion = include
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML into a Page. Unparseable or unexpected markup
// degrades to empty fields rather than an error, matching the contract
// shared by all qna.Extractor implementations.
func (e *Extractor) Extract(raw string) (*qna.Page, error) {
	page := &qna.Page{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return page, nil
	}

	if e.includeQuestion {
		q := doc.Find("#question, div.question").First().Find(postBodySelector).First()
		page.Question = normalize(q.Text())
	}

	doc.Find("div.answer").Each(func(_ int, sel *goquery.Selection) {
		body := sel.Find(postBodySelector).First()
		if body.Length() == 0 {
			return
		}

		frag, err := body.Html()
		if err != nil {
			frag = ""
		}
		page.Answers = append(page.Answers, normalize(body.Text()))
		page.AnswersHTML = append(page.AnswersHTML, frag)

		if code := sel.Find("pre code").First(); code.Length() > 0 {
			page.Snippets = append(page.Snippets, strings.Trim(code.Text(), "\n"))
		} else if code := sel.Find("code").First(); code.Length() > 0 {
			page.Snippets = append(page.Snippets, code.Text())
		}
	})

	return page, nil
}

// normalize collapses excess blank lines and trims the text.
func normalize(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	return strings.TrimSpace(blankRe.ReplaceAllString(strings.Join(lines, "\n"), "\n\n"))
}
