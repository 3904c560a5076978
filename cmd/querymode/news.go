package main

import (
	"fmt"

	"github.com/mr-devs/querymode"
)

// Run executes the news command.
func (c *NewsCmd) Run(deps *Dependencies) error {
	articles, err := deps.News.RecentArticles(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", querymode.ErrorMessage(err))
		return err
	}

	sampled := querymode.SampleArticles(articles, c.Count)
	if len(sampled) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Please try again in a few moments.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, querymode.FormatArticles(sampled))
	return nil
}
