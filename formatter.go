package querymode

import (
	"fmt"
	"strings"
)

// FormatSearchResults renders organic search results as markdown.
// Results are numbered in slice order; the link doubles as the title
// when the title is empty. Returns "" for no results.
func FormatSearchResults(results []*SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for i, r := range results {
		title := r.Title
		if title == "" {
			title = r.Link
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "**%d. [%s](%s)**", i+1, title, r.Link)
		if r.Source != "" {
			fmt.Fprintf(&sb, " (%s)", r.Source)
		}
		if r.Snippet != "" {
			sb.WriteString("\n")
			sb.WriteString(r.Snippet)
		}
		parts = append(parts, sb.String())
	}

	return strings.Join(parts, "\n\n")
}

// FormatSources renders the numbered reference list that follows an
// annotated answer, one source per line. Falls back to the URI when a
// source has no title.
func FormatSources(sources []Source) string {
	if len(sources) == 0 {
		return ""
	}

	parts := make([]string, 0, len(sources))
	for _, s := range sources {
		title := s.Title
		if title == "" {
			title = s.URI
		}
		if s.URI != "" {
			parts = append(parts, fmt.Sprintf("%d. [%s](%s)", s.Number, title, s.URI))
		} else {
			parts = append(parts, fmt.Sprintf("%d. %s", s.Number, title))
		}
	}

	return strings.Join(parts, "\n")
}

// FormatArticles renders news headlines as a markdown list, one
// headline per line: **1. Title** (date; [source](link)).
func FormatArticles(articles []*Article) string {
	if len(articles) == 0 {
		return ""
	}

	parts := make([]string, 0, len(articles))
	for i, a := range articles {
		var sb strings.Builder
		fmt.Fprintf(&sb, "**%d. %s**", i+1, a.Title)

		var meta []string
		if !a.PublishedAt.IsZero() {
			meta = append(meta, a.PublishedAt.Format("Jan 2, 2006"))
		}
		if a.Link != "" {
			meta = append(meta, fmt.Sprintf("[source](%s)", a.Link))
		}
		if len(meta) > 0 {
			fmt.Fprintf(&sb, " (%s)", strings.Join(meta, "; "))
		}
		parts = append(parts, sb.String())
	}

	return strings.Join(parts, "\n")
}
