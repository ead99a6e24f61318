package mock

import (
	"context"

	"github.com/fwojciec/qna"
)

var _ qna.SearchProvider = (*SearchProvider)(nil)

// SearchProvider is a mock implementation of qna.SearchProvider.
type SearchProvider struct {
	SearchFn func(ctx context.Context, query string) ([]string, error)
}

func (s *SearchProvider) Search(ctx context.Context, query string) ([]string, error) {
	return s.SearchFn(ctx, query)
}
