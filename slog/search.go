package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/qna"
)

// Ensure LoggingSearchProvider implements qna.SearchProvider.
var _ qna.SearchProvider = (*LoggingSearchProvider)(nil)

// LoggingSearchProvider wraps a SearchProvider with debug logging.
type LoggingSearchProvider struct {
	next   qna.SearchProvider
	logger *slog.Logger
}

// NewLoggingSearchProvider creates a new LoggingSearchProvider.
func NewLoggingSearchProvider(next qna.SearchProvider, logger *slog.Logger) *LoggingSearchProvider {
	return &LoggingSearchProvider{next: next, logger: logger}
}

// Search delegates to the wrapped provider and logs the operation.
func (s *LoggingSearchProvider) Search(ctx context.Context, query string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"candidates", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}
