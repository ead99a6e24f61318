package mock

import "github.com/fwojciec/qna"

var _ qna.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of qna.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*qna.Page, error)
}

func (e *Extractor) Extract(html string) (*qna.Page, error) {
	return e.ExtractFn(html)
}
