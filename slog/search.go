package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mr-devs/querymode"
)

// Ensure LoggingSearchService implements querymode.SearchService.
var _ querymode.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with operation logging.
type LoggingSearchService struct {
	next   querymode.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next querymode.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// Search delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) Search(ctx context.Context, query querymode.SearchQuery) (results []*querymode.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("organic search",
			"query", query.Query,
			"location", query.Location,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}
