package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/qna"
	"github.com/fwojciec/qna/mock"
	qnaslog "github.com/fwojciec/qna/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearchProvider_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs query and candidate count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SearchProvider{
			SearchFn: func(ctx context.Context, query string) ([]string, error) {
				return []string{"https://a/1", "https://a/2"}, nil
			},
		}

		provider := qnaslog.NewLoggingSearchProvider(inner, logger)
		urls, err := provider.Search(context.Background(), "format date bash")

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		output := buf.String()
		assert.Contains(t, output, "search")
		assert.Contains(t, output, "query=\"format date bash\"")
		assert.Contains(t, output, "candidates=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SearchProvider{
			SearchFn: func(ctx context.Context, query string) ([]string, error) {
				return nil, qna.Errorf(qna.EUNAVAILABLE, "search request failed")
			},
		}

		provider := qnaslog.NewLoggingSearchProvider(inner, logger)
		_, err := provider.Search(context.Background(), "anything")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "candidates=0")
		assert.Contains(t, output, "search request failed")
	})
}
