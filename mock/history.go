package mock

import (
	"context"

	"github.com/fwojciec/qna"
)

var _ qna.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of qna.HistoryService.
type HistoryService struct {
	CreateSearchFn      func(ctx context.Context, search *qna.Search) error
	CreatePageFn        func(ctx context.Context, page *qna.ArchivedPage) error
	RecentSearchesFn    func(ctx context.Context, limit int) ([]*qna.Search, error)
	FindPagesBySearchFn func(ctx context.Context, searchID string) ([]*qna.ArchivedPage, error)
}

func (h *HistoryService) CreateSearch(ctx context.Context, search *qna.Search) error {
	return h.CreateSearchFn(ctx, search)
}

func (h *HistoryService) CreatePage(ctx context.Context, page *qna.ArchivedPage) error {
	return h.CreatePageFn(ctx, page)
}

func (h *HistoryService) RecentSearches(ctx context.Context, limit int) ([]*qna.Search, error) {
	return h.RecentSearchesFn(ctx, limit)
}

func (h *HistoryService) FindPagesBySearch(ctx context.Context, searchID string) ([]*qna.ArchivedPage, error) {
	return h.FindPagesBySearchFn(ctx, searchID)
}
