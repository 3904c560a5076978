package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/mr-devs/querymode"
	"github.com/mr-devs/querymode/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx           context.Context
	Stdout        io.Writer
	Stderr        io.Writer
	Logger        *slog.Logger
	DB            *sqlite.DB
	Generator     querymode.Generator
	Search        querymode.SearchService
	News          querymode.NewsService
	Conversations querymode.ConversationService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Ask     AskCmd     `cmd:"" help:"Ask a question answered by grounded search with inline citations"`
	Search  SearchCmd  `cmd:"" help:"Run a traditional Google search and show organic results"`
	News    NewsCmd    `cmd:"" help:"Show a sample of recent Google News headlines"`
	History HistoryCmd `cmd:"" help:"List stored conversations, or show one with its turns"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored conversation"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question  string `arg:"" help:"Question to ask"`
	Continue  string `short:"c" help:"Conversation ID to continue"`
	Model     string `help:"Generation model"`
	Prefix    string `default:"[" help:"Citation marker prefix"`
	Suffix    string `default:"]" help:"Citation marker suffix"`
	Separator string `default:"," help:"Separator between citation numbers in one marker"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query    string `arg:"" help:"Search query"`
	Location string `short:"l" help:"City to localize the search, mimicking real search behavior"`
}

// NewsCmd is the "news" subcommand.
type NewsCmd struct {
	Count int `short:"n" default:"5" help:"Number of sampled headlines"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	ID string `arg:"" optional:"" help:"Conversation ID to show"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Conversation ID"`
}
