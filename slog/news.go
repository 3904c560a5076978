package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mr-devs/querymode"
)

// Ensure LoggingNewsService implements querymode.NewsService.
var _ querymode.NewsService = (*LoggingNewsService)(nil)

// LoggingNewsService wraps a NewsService with operation logging.
type LoggingNewsService struct {
	next   querymode.NewsService
	logger *slog.Logger
}

// NewLoggingNewsService creates a new LoggingNewsService.
func NewLoggingNewsService(next querymode.NewsService, logger *slog.Logger) *LoggingNewsService {
	return &LoggingNewsService{next: next, logger: logger}
}

// RecentArticles delegates to the wrapped service and logs the operation.
func (s *LoggingNewsService) RecentArticles(ctx context.Context) (articles []*querymode.Article, err error) {
	defer func(begin time.Time) {
		s.logger.Info("news fetch",
			"count", len(articles),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.RecentArticles(ctx)
}
