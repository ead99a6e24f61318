package qna

// Converter transforms an HTML fragment into Markdown.
// Used by display layers to re-render captured answer fragments; the
// extracted records themselves stay plain text.
type Converter interface {
	Convert(html string) (string, error)
}
