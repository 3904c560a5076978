package querymode

import (
	"context"
	"math/rand"
	"time"
)

// SearchQuery describes one traditional search request.
type SearchQuery struct {
	Query    string `json:"query"`
	Location string `json:"location,omitempty"` // city used to mimic real search behavior
}

// Validate returns an error if the query contains invalid fields.
func (q SearchQuery) Validate() error {
	if q.Query == "" {
		return Errorf(EINVALID, "search query required")
	}
	return nil
}

// SearchResult is one organic search result.
type SearchResult struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	Link     string `json:"link"`
	Source   string `json:"source,omitempty"`
	Snippet  string `json:"snippet,omitempty"`
}

// SearchService returns organic search results for a query.
type SearchService interface {
	Search(ctx context.Context, query SearchQuery) ([]*SearchResult, error)
}

// Article is one news headline.
type Article struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Source      string    `json:"source,omitempty"`
	Summary     string    `json:"summary,omitempty"` // markdown
	PublishedAt time.Time `json:"publishedAt"`
}

// NewsService returns recent news headlines.
type NewsService interface {
	RecentArticles(ctx context.Context) ([]*Article, error)
}

// SampleArticles returns up to n articles drawn at random without
// replacement. The input slice is not modified. Returns nil when n is
// not positive or there is nothing to sample.
func SampleArticles(articles []*Article, n int) []*Article {
	if n <= 0 || len(articles) == 0 {
		return nil
	}
	if n > len(articles) {
		n = len(articles)
	}

	shuffled := make([]*Article, len(articles))
	copy(shuffled, articles)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
