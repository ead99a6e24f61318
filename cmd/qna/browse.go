package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/qna"
)

// Run executes the browse command: resolve the first result, then read
// single-letter navigation commands from stdin until quit or EOF.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	sess := deps.Session
	sess.MaxPos = c.MaxPos

	opts := qna.FormatOptions{
		AnswerCount:     c.Answers,
		IncludeQuestion: c.Question,
		SnippetsOnly:    c.Snippet,
	}
	if c.Markdown {
		opts.Converter = deps.Converter
	}
	sess.Sink = &consoleSink{out: deps.Stdout, errw: deps.Stderr, opts: opts}

	query := strings.Join(c.Query, " ")
	if err := sess.Submit(deps.Ctx, query); err != nil {
		return err
	}

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprintf(deps.Stdout, "[%d] n/p/c/u/q> ", sess.Cursor())
		if !scanner.Scan() {
			fmt.Fprintln(deps.Stdout)
			return scanner.Err()
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "n":
			if err := sess.Advance(deps.Ctx); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", qna.ErrorMessage(err))
			}
		case "p":
			if err := sess.Retreat(deps.Ctx); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", qna.ErrorMessage(err))
			}
		case "c":
			page, err := sess.Current()
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", qna.ErrorMessage(err))
				continue
			}
			fmt.Fprintln(deps.Stdout, qna.FormatPage(page, opts))
		case "u":
			url, err := sess.CurrentURL()
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", qna.ErrorMessage(err))
				continue
			}
			fmt.Fprintln(deps.Stdout, url)
		case "q":
			return nil
		case "":
			// Ignore blank lines.
		default:
			fmt.Fprintln(deps.Stdout, "commands: n next, p previous, c current, u url, q quit")
		}
	}
}
