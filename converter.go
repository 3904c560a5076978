package querymode

// Converter transforms HTML content into Markdown. Used to turn the
// HTML bodies of news feed descriptions into displayable summaries.
type Converter interface {
	Convert(html string) (string, error)
}
