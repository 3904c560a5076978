package main

import (
	"fmt"

	"github.com/mr-devs/querymode"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Search.Search(deps.Ctx, querymode.SearchQuery{
		Query:    c.Query,
		Location: c.Location,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", querymode.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No search results found. Please try again in a few moments.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, querymode.FormatSearchResults(results))
	return nil
}
