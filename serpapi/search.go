// Package serpapi implements traditional search using the SERP API
// (https://serpapi.com/), which returns structured Google results.
package serpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/mr-devs/querymode"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://serpapi.com"

// DefaultTimeout bounds each SERP API request.
const DefaultTimeout = 10 * time.Second

// DefaultRateLimit is the client-side request limit in requests per
// second. SERP API plans are metered, so keep a conservative default.
const DefaultRateLimit = 1.0

// Ensure SearchService implements querymode.SearchService at compile time.
var _ querymode.SearchService = (*SearchService)(nil)

// SearchService implements querymode.SearchService using the SERP API.
type SearchService struct {
	client  *http.Client
	limiter *rate.Limiter
	baseURL string
	apiKey  string
}

// Option configures a SearchService.
type Option func(*SearchService)

// WithBaseURL overrides the SERP API endpoint. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(s *SearchService) {
		s.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client. Defaults to a client with
// DefaultTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(s *SearchService) {
		s.client = client
	}
}

// WithRateLimit sets the client-side request rate limit in requests per
// second, with a burst of 1.
func WithRateLimit(rps float64) Option {
	return func(s *SearchService) {
		s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewSearchService creates a new SearchService using the given API key.
func NewSearchService(apiKey string, opts ...Option) *SearchService {
	s := &SearchService{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: DefaultTimeout}
	}
	return s
}

// searchResponse mirrors the SERP API response fields we consume.
type searchResponse struct {
	OrganicResults []organicResult `json:"organic_results"`
}

type organicResult struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	Link     string `json:"link"`
	Source   string `json:"source"`
	Snippet  string `json:"snippet"`
}

// Search runs a Google search through the SERP API and returns the
// organic results in response order.
func (s *SearchService) Search(ctx context.Context, query querymode.SearchQuery) ([]*querymode.SearchResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query.Query)
	if query.Location != "" {
		params.Set("location", query.Location)
	}
	params.Set("api_key", s.apiKey)

	var resp searchResponse
	if err := s.getJSON(ctx, "/search.json", params, &resp); err != nil {
		return nil, err
	}

	results := make([]*querymode.SearchResult, 0, len(resp.OrganicResults))
	for _, r := range resp.OrganicResults {
		results = append(results, &querymode.SearchResult{
			Position: r.Position,
			Title:    r.Title,
			Link:     r.Link,
			Source:   r.Source,
			Snippet:  r.Snippet,
		})
	}
	return results, nil
}

// Account verifies the API key against the account endpoint, the same
// check the SERP API dashboard client performs on setup.
func (s *SearchService) Account(ctx context.Context) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	params := url.Values{}
	params.Set("api_key", s.apiKey)

	var resp struct {
		AccountID string `json:"account_id"`
	}
	return s.getJSON(ctx, "/account.json", params, &resp)
}

// getJSON performs a GET request and decodes the JSON response body.
// Authentication failures map to EINVALID, everything else that keeps
// the upstream unreachable maps to EUNAVAILABLE.
func (s *SearchService) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return querymode.Errorf(querymode.EUNAVAILABLE, "serpapi request failed: %v", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return querymode.Errorf(querymode.EINVALID, "serpapi rejected the API key (HTTP %d)", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return querymode.Errorf(querymode.EUNAVAILABLE, "serpapi returned HTTP %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return querymode.Errorf(querymode.EINTERNAL, "decoding serpapi response: %v", err)
	}
	return nil
}
