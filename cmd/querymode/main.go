package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/mr-devs/querymode"
	"github.com/mr-devs/querymode/gemini"
	"github.com/mr-devs/querymode/gnews"
	"github.com/mr-devs/querymode/htmltomarkdown"
	"github.com/mr-devs/querymode/serpapi"
	qmslog "github.com/mr-devs/querymode/slog"
	"github.com/mr-devs/querymode/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the conversation store.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ConversationService querymode.ConversationService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: newLogger(stderr),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("querymode"),
		kong.Description("Explore LLM-integrated web search from the command line."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'querymode --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The conversation store backs ask, history, and delete.
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set QUERYMODE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ConversationService = sqlite.NewConversationService(m.DB)
	deps.DB = m.DB
	deps.Conversations = m.ConversationService

	// Wire command-specific dependencies based on command
	if cmd == "ask" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		if err := gemini.ValidateKey(ctx, client); err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return err
		}

		deps.Generator = qmslog.NewLoggingGenerator(gemini.NewGenerator(client, cli.Ask.Model), deps.Logger)
	}

	if cmd == "search" {
		apiKey := os.Getenv("SERPAPI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "SERPAPI_API_KEY environment variable not set. Get an API key at https://serpapi.com/")
			return fmt.Errorf("SERPAPI_API_KEY not set")
		}

		service := serpapi.NewSearchService(apiKey)
		if err := service.Account(ctx); err != nil {
			fmt.Fprintln(stderr, "Hint: Check your SERPAPI_API_KEY is valid")
			return err
		}

		deps.Search = qmslog.NewLoggingSearchService(service, deps.Logger)
	}

	if cmd == "news" {
		deps.News = qmslog.NewLoggingNewsService(gnews.NewNewsService(htmltomarkdown.NewConverter()), deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newLogger builds the structured logger. Service decorators log at
// info level; that stays hidden unless QUERYMODE_DEBUG is set so
// command output remains clean.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("QUERYMODE_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("QUERYMODE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "querymode.db"
	}
	dir := filepath.Join(home, ".querymode")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "querymode.db")
}
