package mock

import "github.com/fwojciec/qna"

var _ qna.Sink = (*Sink)(nil)

// Sink is a mock implementation of qna.Sink.
type Sink struct {
	PageReadyFn   func(url string, page *qna.Page)
	UnavailableFn func(reason string)
}

func (s *Sink) PageReady(url string, page *qna.Page) {
	if s.PageReadyFn != nil {
		s.PageReadyFn(url, page)
	}
}

func (s *Sink) Unavailable(reason string) {
	if s.UnavailableFn != nil {
		s.UnavailableFn(reason)
	}
}
