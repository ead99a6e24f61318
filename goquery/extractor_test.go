package goquery_test

import (
	"testing"

	"github.com/fwojciec/qna"
	qnagoquery "github.com/fwojciec/qna/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modernPage = `<html><body>
<div id="question" class="question">
<div class="s-prose js-post-body" itemprop="text">
<p>How do I list files by size?</p>
</div>
</div>
<div id="answers">
<div id="answer-1" class="answer js-answer">
<div class="s-prose js-post-body">
<p>Sort with <code>ls</code>:</p>
<pre class="lang-sh"><code>ls -lS</code></pre>
</div>
</div>
<div id="answer-2" class="answer js-answer">
<div class="s-prose js-post-body">
<p>Or use <code>du -a | sort -n</code> for directories.</p>
</div>
</div>
</body></html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts answers from modern markup", func(t *testing.T) {
		t.Parallel()

		page, err := qnagoquery.NewExtractor().Extract(modernPage)
		require.NoError(t, err)
		require.Len(t, page.Answers, 2)
		assert.Contains(t, page.Answers[0], "Sort with ls:")
		assert.Contains(t, page.Answers[1], "du -a | sort -n")
	})

	t.Run("extracts question when requested", func(t *testing.T) {
		t.Parallel()

		page, err := qnagoquery.NewExtractor(qnagoquery.WithQuestion(true)).Extract(modernPage)
		require.NoError(t, err)
		assert.Equal(t, "How do I list files by size?", page.Question)
	})

	t.Run("prefers pre blocks over inline code", func(t *testing.T) {
		t.Parallel()

		page, err := qnagoquery.NewExtractor().Extract(modernPage)
		require.NoError(t, err)
		require.Len(t, page.Snippets, 2)
		assert.Equal(t, "ls -lS", page.Snippets[0])
		assert.Equal(t, "du -a | sort -n", page.Snippets[1])
	})

	t.Run("retains raw fragments for re-rendering", func(t *testing.T) {
		t.Parallel()

		page, err := qnagoquery.NewExtractor().Extract(modernPage)
		require.NoError(t, err)
		require.Len(t, page.AnswersHTML, 2)
		assert.Contains(t, page.AnswersHTML[0], "<code>ls -lS</code>")
	})

	t.Run("legacy post-text classes still match", func(t *testing.T) {
		t.Parallel()

		doc := `<div class="answer"><div class="post-text"><p>legacy body</p></div></div>`
		page, err := qnagoquery.NewExtractor().Extract(doc)
		require.NoError(t, err)
		require.Len(t, page.Answers, 1)
		assert.Equal(t, "legacy body", page.Answers[0])
	})

	t.Run("non-question pages yield an empty page", func(t *testing.T) {
		t.Parallel()

		page, err := qnagoquery.NewExtractor(qnagoquery.WithQuestion(true)).Extract("<html><body><p>blog post</p></body></html>")
		require.NoError(t, err)
		assert.True(t, page.Empty())
	})

	t.Run("answer without a post body contributes nothing", func(t *testing.T) {
		t.Parallel()

		doc := `<div class="answer"><p>stray</p></div>` +
			`<div class="answer"><div class="js-post-body"><p>kept</p></div></div>`
		page, err := qnagoquery.NewExtractor().Extract(doc)
		require.NoError(t, err)
		require.Len(t, page.Answers, 1)
		assert.Equal(t, "kept", page.Answers[0])
	})
}

// Compile-time verification that Extractor implements qna.Extractor.
var _ qna.Extractor = (*qnagoquery.Extractor)(nil)
