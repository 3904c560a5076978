package mock

import (
	"context"

	"github.com/mr-devs/querymode"
)

var _ querymode.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of querymode.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, query querymode.SearchQuery) ([]*querymode.SearchResult, error)
}

func (s *SearchService) Search(ctx context.Context, query querymode.SearchQuery) ([]*querymode.SearchResult, error) {
	return s.SearchFn(ctx, query)
}
