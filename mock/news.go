package mock

import (
	"context"

	"github.com/mr-devs/querymode"
)

var _ querymode.NewsService = (*NewsService)(nil)

// NewsService is a mock implementation of querymode.NewsService.
type NewsService struct {
	RecentArticlesFn func(ctx context.Context) ([]*querymode.Article, error)
}

func (s *NewsService) RecentArticles(ctx context.Context) ([]*querymode.Article, error) {
	return s.RecentArticlesFn(ctx)
}
