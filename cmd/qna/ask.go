package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/qna"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	sess := deps.Session
	sess.MaxPos = c.MaxPos
	sess.Sink = &consoleSink{errw: deps.Stderr}

	query := strings.Join(c.Query, " ")
	if err := sess.Submit(deps.Ctx, query); err != nil {
		return err
	}

	for i := 0; i < c.Pos; i++ {
		if err := sess.Advance(deps.Ctx); err != nil {
			return err
		}
	}

	if c.Link {
		url, err := sess.CurrentURL()
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, url)
		return nil
	}

	page, err := sess.Current()
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, qna.FormatPage(page, c.formatOptions(deps)))
	return nil
}

func (c *AskCmd) formatOptions(deps *Dependencies) qna.FormatOptions {
	opts := qna.FormatOptions{
		AnswerCount:     c.Answers,
		IncludeQuestion: c.Question,
		SnippetsOnly:    c.Snippet,
	}
	if c.Markdown {
		opts.Converter = deps.Converter
	}
	return opts
}
