// Package scan implements qna.Extractor as a tolerant textual scan of
// Stack Overflow question-page markup. The markup is not contract-stable,
// so the scanner never insists on structure: every rule is a small named
// function that yields empty or partial output when its markers are
// missing, and extraction as a whole never fails.
package scan

import (
	"html"
	"regexp"
	"strings"

	"github.com/fwojciec/qna"
)

// Markers for the question-page markup. Each marker is matched as a plain
// substring so attribute drift around it doesn't break the scan.
const (
	questionMarker   = `<div id="question"`
	answerMarker     = `<div id="answer-`
	postCellMarker   = `class="postcell`
	answerCellMarker = `class="answercell`
	postTextMarker   = `class="post-text`
)

var (
	tagRe   = regexp.MustCompile(`<[^>]*>`)
	blankRe = regexp.MustCompile(`\n{3,}`)
)

// structuralTags are stripped from captured fragments before text
// conversion, in their bare opening and closing forms only.
var structuralTags = strings.NewReplacer(
	"<p>", "", "</p>", "",
	"<pre>", "", "</pre>", "",
	"<code>", "", "</code>", "",
	"<hr>", "", "</hr>", "",
)

// Ensure Extractor implements qna.Extractor at compile time.
var _ qna.Extractor = (*Extractor)(nil)

// Extractor scans a candidate page for question text, answers and code
// snippets.
type Extractor struct {
	includeQuestion bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithQuestion enables extraction of the question text. Off by default;
// most callers only want answers.
func WithQuestion(include bool) Option {
	return func(e *Extractor) {
		e.includeQuestion = include
	}
}

// New creates a new Extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML into a Page. Malformed or unexpected markup
// degrades to empty or partial fields; the error result is always nil and
// exists to satisfy qna.Extractor.
func (e *Extractor) Extract(doc string) (*qna.Page, error) {
	page := &qna.Page{}
	if e.includeQuestion {
		page.Question = extractQuestion(doc)
	}
	page.Answers, page.AnswersHTML = extractAnswers(doc)
	page.Snippets = extractSnippets(doc)
	return page, nil
}

// extractQuestion returns the question text, or "" when any of the
// question-container, post-body or post-text markers is missing.
func extractQuestion(doc string) string {
	i := strings.Index(doc, questionMarker)
	if i < 0 {
		return ""
	}
	j := indexFrom(doc, postCellMarker, i)
	if j < 0 {
		return ""
	}
	// Bound the capture at the first answer container so a question
	// without a post-text region can't swallow an answer's.
	frag, ok := captureFragment(doc, j, answerEnd(doc, i))
	if !ok {
		return ""
	}
	return toText(frag)
}

// extractAnswers returns the plain-text answer blocks and their raw
// fragments, in document order. An answer container whose inner markers
// are absent contributes no entry.
func extractAnswers(doc string) (texts, raw []string) {
	pos := 0
	for {
		i := indexFrom(doc, answerMarker, pos)
		if i < 0 {
			break
		}
		end := answerEnd(doc, i+len(answerMarker))

		j := indexFrom(doc[:end], answerCellMarker, i)
		if j < 0 {
			pos = end
			continue
		}
		frag, ok := captureFragment(doc, j, end)
		if !ok {
			pos = end
			continue
		}

		texts = append(texts, toText(frag))
		raw = append(raw, frag)
		pos = end
	}
	return texts, raw
}

// extractSnippets returns the decoded code blocks, one per answer that has
// a recognizable code region. A <pre>…<code> block is preferred, captured
// to the first closing code tag; a bare inline <code> region is the
// fallback. Answers with neither contribute nothing.
func extractSnippets(doc string) []string {
	var snippets []string
	pos := 0
	for {
		i := indexFrom(doc, answerMarker, pos)
		if i < 0 {
			break
		}
		end := answerEnd(doc, i+len(answerMarker))

		if code, ok := snippetIn(doc[i:end]); ok {
			snippets = append(snippets, code)
		}
		pos = end
	}
	return snippets
}

// snippetIn extracts the code snippet from a single answer fragment.
func snippetIn(frag string) (string, bool) {
	if pre := strings.Index(frag, "<pre"); pre >= 0 {
		if code, ok := codeBody(frag[pre:]); ok {
			return code, true
		}
	}
	return codeBody(frag)
}

// codeBody captures the text between the first <code …> tag and the first
// closing </code> tag, with HTML entities decoded.
func codeBody(s string) (string, bool) {
	i := strings.Index(s, "<code")
	if i < 0 {
		return "", false
	}
	open := strings.Index(s[i:], ">")
	if open < 0 {
		return "", false
	}
	start := i + open + 1
	j := strings.Index(s[start:], "</code>")
	if j < 0 {
		return "", false
	}
	return html.UnescapeString(strings.Trim(s[start:start+j], "\n")), true
}

// answerEnd returns the exclusive end of the answer container that starts
// before from: the next answer marker, or the end of the document.
func answerEnd(doc string, from int) int {
	if i := indexFrom(doc, answerMarker, from); i >= 0 {
		return i
	}
	return len(doc)
}

// captureFragment captures the post-text region after a post-body marker
// at from. The fragment runs from the end of the post-text opening tag to
// the closing </td> of the enclosing cell, bounded by limit; when the cell
// never closes the fragment runs to the bound.
func captureFragment(doc string, from, limit int) (string, bool) {
	i := indexFrom(doc[:limit], postTextMarker, from)
	if i < 0 {
		return "", false
	}
	open := strings.Index(doc[i:limit], ">")
	if open < 0 {
		return "", false
	}
	start := i + open + 1

	end := limit
	if j := strings.Index(doc[start:limit], "</td>"); j >= 0 {
		end = start + j
	}
	return doc[start:end], true
}

// toText strips structural tags, removes the remaining markup and
// normalizes whitespace.
func toText(frag string) string {
	text := structuralTags.Replace(frag)
	text = tagRe.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")

	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	text = strings.Join(lines, "\n")
	text = blankRe.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// indexFrom is strings.Index offset by a starting position.
func indexFrom(s, substr string, from int) int {
	if from < 0 || from > len(s) {
		return -1
	}
	i := strings.Index(s[from:], substr)
	if i < 0 {
		return -1
	}
	return from + i
}
