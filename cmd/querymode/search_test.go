package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/mr-devs/querymode"
	main "github.com/mr-devs/querymode/cmd/querymode"
	"github.com/mr-devs/querymode/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints formatted organic results", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			SearchFn: func(_ context.Context, query querymode.SearchQuery) ([]*querymode.SearchResult, error) {
				assert.Equal(t, "best espresso", query.Query)
				assert.Equal(t, "Portland, Oregon", query.Location)
				return []*querymode.SearchResult{
					{Position: 1, Title: "Espresso guide", Link: "https://coffee.example/guide", Source: "coffee.example", Snippet: "A primer."},
					{Position: 2, Title: "Machine reviews", Link: "https://coffee.example/reviews", Source: "coffee.example", Snippet: "Ranked."},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Search: search,
		}

		cmd := &main.SearchCmd{Query: "best espresso", Location: "Portland, Oregon"}

		err := cmd.Run(deps)

		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "**1. [Espresso guide](https://coffee.example/guide)**")
		assert.Contains(t, output, "A primer.")
		assert.Contains(t, output, "**2. [Machine reviews](https://coffee.example/reviews)**")
	})

	t.Run("shows helpful message when there are no results", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			SearchFn: func(_ context.Context, _ querymode.SearchQuery) ([]*querymode.SearchResult, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Search: search,
		}

		cmd := &main.SearchCmd{Query: "anything"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No search results found")
	})

	t.Run("reports search failure on stderr", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			SearchFn: func(_ context.Context, _ querymode.SearchQuery) ([]*querymode.SearchResult, error) {
				return nil, querymode.Errorf(querymode.EUNAVAILABLE, "search service unavailable")
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Search: search,
		}

		cmd := &main.SearchCmd{Query: "anything"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, querymode.EUNAVAILABLE, querymode.ErrorCode(err))
		assert.Contains(t, stderr.String(), "search service unavailable")
	})
}
