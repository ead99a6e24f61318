package qna

import (
	"fmt"
	"strings"
)

// FormatOptions controls how a Page is rendered for display.
type FormatOptions struct {
	// AnswerCount caps how many answers are shown. Zero or negative
	// means one. Extraction always keeps every answer; the cap is a
	// display concern.
	AnswerCount int

	// IncludeQuestion prepends the question text when present.
	IncludeQuestion bool

	// SnippetsOnly renders only the code snippets, one per block.
	SnippetsOnly bool

	// Converter, if set, re-renders raw answer fragments instead of
	// using the plain-text form. Falls back to plain text per answer
	// when conversion fails or no fragment was captured.
	Converter Converter
}

// FormatPage renders a page as a single text blob for display.
// Sections are separated by blank lines.
func FormatPage(page *Page, opts FormatOptions) string {
	if opts.SnippetsOnly {
		return strings.Join(page.Snippets, "\n\n")
	}

	count := opts.AnswerCount
	if count <= 0 {
		count = 1
	}
	if count > len(page.Answers) {
		count = len(page.Answers)
	}

	var parts []string
	if opts.IncludeQuestion && page.Question != "" {
		parts = append(parts, "## Question\n"+page.Question)
	}
	for i := 0; i < count; i++ {
		body := page.Answers[i]
		if opts.Converter != nil && i < len(page.AnswersHTML) {
			if md, err := opts.Converter.Convert(page.AnswersHTML[i]); err == nil {
				body = strings.TrimSpace(md)
			}
		}
		header := fmt.Sprintf("## Answer %d", i+1)
		if count == 1 {
			header = "## Answer"
		}
		parts = append(parts, header+"\n"+body)
	}

	return strings.Join(parts, "\n\n")
}
