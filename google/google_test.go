package google_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/qna"
	"github.com/fwojciec/qna/google"
	"github.com/fwojciec/qna/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchURL(t *testing.T) {
	t.Parallel()

	t.Run("encodes filter and query separately", func(t *testing.T) {
		t.Parallel()

		got := google.SearchURL("site:stackoverflow.com", "format date bash")
		assert.Equal(t, "https://www.google.com/search?q=site%3Astackoverflow.com+format+date+bash", got)
	})

	t.Run("passes empty query through", func(t *testing.T) {
		t.Parallel()

		got := google.SearchURL("site:stackoverflow.com", "")
		assert.Equal(t, "https://www.google.com/search?q=site%3Astackoverflow.com+", got)
	})

	t.Run("escapes reserved characters in the query", func(t *testing.T) {
		t.Parallel()

		got := google.SearchURL("site:stackoverflow.com", "c++ a&b")
		assert.Equal(t, "https://www.google.com/search?q=site%3Astackoverflow.com+c%2B%2B+a%26b", got)
	})
}

const resultsPage = `
<html><body>
<h3 class="r"><a href="/url?q=https://stackoverflow.com/questions/1/how&sa=U&ved=x">How?</a></h3>
<h3 class="r"><a href="/url?q=https://stackoverflow.com/questions/2/why&sa=U">Why?</a></h3>
<h3 class="r"><a href="/url?q=https://stackoverflow.com/questions/3/what">What?</a></h3>
</body></html>`

func TestParseResults(t *testing.T) {
	t.Parallel()

	t.Run("extracts candidates in document order", func(t *testing.T) {
		t.Parallel()

		got := google.ParseResults(resultsPage, "")
		assert.Equal(t, []string{
			"https://stackoverflow.com/questions/1/how",
			"https://stackoverflow.com/questions/2/why",
			"https://stackoverflow.com/questions/3/what",
		}, got)
	})

	t.Run("truncates trailing parameters at the first ampersand", func(t *testing.T) {
		t.Parallel()

		html := `<h3 class="r"><a href="/url?q=https://stackoverflow.com/q/9&sa=U&usg=abc">x</a></h3>`
		got := google.ParseResults(html, "")
		assert.Equal(t, []string{"https://stackoverflow.com/q/9"}, got)
	})

	t.Run("skips markers without a following anchor", func(t *testing.T) {
		t.Parallel()

		html := `<h3 class="r">no link here</h3>` +
			`<h3 class="r"><a href="/url?q=https://stackoverflow.com/q/5">x</a></h3>`
		got := google.ParseResults(html, "")
		assert.Equal(t, []string{"https://stackoverflow.com/q/5"}, got)
	})

	t.Run("skips anchors without an embedded destination", func(t *testing.T) {
		t.Parallel()

		html := `<h3 class="r"><a href="/settings">x</a></h3>` +
			`<h3 class="r"><a href="/url?q=https://stackoverflow.com/q/7">x</a></h3>`
		got := google.ParseResults(html, "")
		assert.Equal(t, []string{"https://stackoverflow.com/q/7"}, got)
	})

	t.Run("deduplicates repeated destinations keeping first position", func(t *testing.T) {
		t.Parallel()

		html := `<h3 class="r"><a href="/url?q=https://stackoverflow.com/q/1">x</a></h3>` +
			`<h3 class="r"><a href="/url?q=https://stackoverflow.com/q/1">x</a></h3>`
		got := google.ParseResults(html, "")
		assert.Equal(t, []string{"https://stackoverflow.com/q/1"}, got)
	})

	t.Run("returns nothing for markerless documents", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, google.ParseResults("<html><body>captcha</body></html>", ""))
	})

	t.Run("honors a custom marker", func(t *testing.T) {
		t.Parallel()

		html := `<div class="result"><a href="/url?q=https://stackoverflow.com/q/2">x</a></div>`
		got := google.ParseResults(html, `<div class="result">`)
		assert.Equal(t, []string{"https://stackoverflow.com/q/2"}, got)
	})
}

func TestProvider_Search(t *testing.T) {
	t.Parallel()

	t.Run("fetches the built URL and parses candidates", func(t *testing.T) {
		t.Parallel()

		var fetched string
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				fetched = url
				return resultsPage, nil
			},
		}

		provider := google.NewProvider(fetcher)
		got, err := provider.Search(context.Background(), "format date bash")
		require.NoError(t, err)
		assert.Len(t, got, 3)
		assert.Equal(t, google.SearchURL(google.DefaultSiteFilter, "format date bash"), fetched)
	})

	t.Run("wraps fetch failures as unavailable", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("connection refused")
			},
		}

		provider := google.NewProvider(fetcher)
		_, err := provider.Search(context.Background(), "anything")
		require.Error(t, err)
		assert.Equal(t, qna.EUNAVAILABLE, qna.ErrorCode(err))
	})

	t.Run("zero candidates is not an error", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}

		provider := google.NewProvider(fetcher)
		got, err := provider.Search(context.Background(), "no such thing")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
