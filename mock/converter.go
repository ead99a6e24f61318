package mock

import "github.com/fwojciec/qna"

var _ qna.Converter = (*Converter)(nil)

// Converter is a mock implementation of qna.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
