// Package readability is the last fallback in the extractor chain. Where
// trafilatura gives up, go-readability's scoring heuristics usually still
// find a main content region, so a fetched page never renders blank.
package readability

import (
	"strings"

	"github.com/fwojciec/qna"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements qna.Extractor at compile time.
var _ qna.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as a single
// answer block. The page title stands in for the question. Pages
// readability cannot score yield an empty page, not an error, per the
// qna.Extractor contract.
func (e *Extractor) Extract(rawHTML string) (*qna.Page, error) {
	page := &qna.Page{}
	if rawHTML == "" {
		return page, nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return page, nil
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return page, nil
	}

	page.Question = strings.TrimSpace(article.Title)
	page.Answers = []string{text}
	page.AnswersHTML = []string{article.Content}
	page.Snippets = codeBlocks(article.Content)

	return page, nil
}

// codeBlocks recovers code regions from the content HTML so the snippet
// view works for readability-extracted pages too.
func codeBlocks(frag string) []string {
	var snippets []string
	for rest := frag; ; {
		i := strings.Index(rest, "<code")
		if i < 0 {
			break
		}
		open := strings.Index(rest[i:], ">")
		if open < 0 {
			break
		}
		start := i + open + 1
		j := strings.Index(rest[start:], "</code>")
		if j < 0 {
			break
		}
		if code := strings.TrimSpace(stripTags(rest[start : start+j])); code != "" {
			snippets = append(snippets, code)
		}
		rest = rest[start+j+len("</code>"):]
	}
	return snippets
}

// stripTags removes markup from a fragment, keeping only text content.
func stripTags(frag string) string {
	var sb strings.Builder
	inTag := false
	for _, r := range frag {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
