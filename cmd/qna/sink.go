package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/qna"
)

// Ensure consoleSink implements qna.Sink.
var _ qna.Sink = (*consoleSink)(nil)

// consoleSink renders resolved pages to stdout and failures to stderr.
// A nil out suppresses page output for commands that print on their own
// schedule.
type consoleSink struct {
	out  io.Writer
	errw io.Writer
	opts qna.FormatOptions
}

func (s *consoleSink) PageReady(url string, page *qna.Page) {
	if s.out == nil {
		return
	}
	fmt.Fprintln(s.out, qna.FormatPage(page, s.opts))
}

func (s *consoleSink) Unavailable(reason string) {
	fmt.Fprintf(s.errw, "error: %s\n", reason)
}
