// Package trafilatura provides a generic main-content fallback for
// candidate pages that carry no recognizable Q&A markup. The site filter on
// the search request is advisory, so the occasional candidate is a blog
// post or documentation page; extracting its main content as a single
// answer block keeps the result navigable instead of blank.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/qna"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements qna.Extractor at compile time.
var _ qna.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as a single
// answer block. Pages trafilatura cannot make sense of yield an empty
// page, not an error, per the qna.Extractor contract.
func (e *Extractor) Extract(rawHTML string) (*qna.Page, error) {
	page := &qna.Page{}
	if rawHTML == "" {
		return page, nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return page, nil
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" {
		return page, nil
	}

	page.Answers = []string{text}
	if result.ContentNode != nil {
		if frag, err := renderNode(result.ContentNode); err == nil {
			page.AnswersHTML = []string{frag}
			page.Snippets = codeBlocks(frag)
		}
	}

	return page, nil
}

// codeBlocks recovers code regions from the content HTML so the snippet
// view works for non-Q&A pages too.
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
		if code := strings.TrimSpace(textOf(rest[start : start+j])); code != "" {
			snippets = append(snippets, code)
		}
		rest = rest[start+j+len("</code>"):]
	}
	return snippets
}

// textOf flattens an HTML fragment to its text content.
func textOf(frag string) string {
	node, err := html.Parse(strings.NewReader(frag))
	if err != nil {
		return frag
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)
	return sb.String()
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
