// Package gnews implements headline retrieval from Google News RSS
// feeds, used for search inspiration in the news command.
package gnews

import (
	"context"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/mr-devs/querymode"
	"golang.org/x/sync/errgroup"
)

// DefaultFeeds are the feeds polled for recent headlines: top stories
// plus the major topic sections.
var DefaultFeeds = []string{
	"https://news.google.com/rss",
	"https://news.google.com/rss/headlines/section/topic/NATION",
	"https://news.google.com/rss/headlines/section/topic/WORLD",
	"https://news.google.com/rss/headlines/section/topic/BUSINESS",
	"https://news.google.com/rss/headlines/section/topic/TECHNOLOGY",
}

// DefaultFetchTimeout bounds each feed request.
const DefaultFetchTimeout = 10 * time.Second

// fetchConcurrency caps in-flight feed requests.
const fetchConcurrency = 4

// Ensure NewsService implements querymode.NewsService at compile time.
var _ querymode.NewsService = (*NewsService)(nil)

// NewsService implements querymode.NewsService over Google News RSS.
type NewsService struct {
	client    *http.Client
	converter querymode.Converter
	feeds     []string
}

// Option configures a NewsService.
type Option func(*NewsService)

// WithFeeds overrides the polled feed URLs. Used in tests.
func WithFeeds(feeds []string) Option {
	return func(s *NewsService) {
		s.feeds = feeds
	}
}

// WithHTTPClient sets the HTTP client. Defaults to a client with
// DefaultFetchTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(s *NewsService) {
		s.client = client
	}
}

// NewNewsService creates a new NewsService. The converter renders the
// HTML feed descriptions as markdown summaries; a nil converter leaves
// summaries empty.
func NewNewsService(converter querymode.Converter, opts ...Option) *NewsService {
	s := &NewsService{
		converter: converter,
		feeds:     DefaultFeeds,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return s
}

// RecentArticles fetches all feeds concurrently and returns the
// deduplicated articles, newest first. The same story often appears in
// several topic feeds; only the first occurrence survives.
func (s *NewsService) RecentArticles(ctx context.Context) ([]*querymode.Article, error) {
	perFeed := make([][]*querymode.Article, len(s.feeds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, feed := range s.feeds {
		g.Go(func() error {
			articles, err := s.fetchFeed(gctx, feed)
			if err != nil {
				return err
			}
			perFeed[i] = articles
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := newDedup()
	var articles []*querymode.Article
	for _, batch := range perFeed {
		for _, a := range batch {
			if seen.insert(a.Link) {
				articles = append(articles, a)
			}
		}
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
	return articles, nil
}

// fetchFeed retrieves and parses one RSS feed.
func (s *NewsService) fetchFeed(ctx context.Context, feedURL string) ([]*querymode.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, querymode.Errorf(querymode.EUNAVAILABLE, "fetching %s: %v", feedURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, querymode.Errorf(querymode.EUNAVAILABLE, "google news returned HTTP %d for %s", resp.StatusCode, feedURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return s.parseFeed(body)
}

// parseFeed extracts articles from an RSS document. Items without a
// title or link are skipped.
func (s *NewsService) parseFeed(data []byte) ([]*querymode.Article, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, querymode.Errorf(querymode.EINTERNAL, "parsing feed: %v", err)
	}

	var articles []*querymode.Article
	for _, item := range doc.FindElements("//channel/item") {
		article := &querymode.Article{}
		if el := item.SelectElement("title"); el != nil {
			article.Title = strings.TrimSpace(el.Text())
		}
		if el := item.SelectElement("link"); el != nil {
			article.Link = strings.TrimSpace(el.Text())
		}
		if el := item.SelectElement("source"); el != nil {
			article.Source = strings.TrimSpace(el.Text())
		}
		if el := item.SelectElement("pubDate"); el != nil {
			article.PublishedAt = parsePubDate(el.Text())
		}
		if el := item.SelectElement("description"); el != nil && s.converter != nil {
			// Descriptions are HTML fragments.
			if summary, err := s.converter.Convert(el.Text()); err == nil {
				article.Summary = strings.TrimSpace(summary)
			}
		}
		if article.Title == "" || article.Link == "" {
			continue
		}
		articles = append(articles, article)
	}
	return articles, nil
}

// parsePubDate parses the RFC 1123 variants RSS feeds use. Returns the
// zero time when the value is unparseable.
func parsePubDate(value string) time.Time {
	value = strings.TrimSpace(value)
	for _, layout := range []string{time.RFC1123, time.RFC1123Z} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC()
		}
	}
	return time.Time{}
}
