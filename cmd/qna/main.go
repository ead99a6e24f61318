package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/qna"
	"github.com/fwojciec/qna/google"
	"github.com/fwojciec/qna/goquery"
	"github.com/fwojciec/qna/htmltomarkdown"
	qnahttp "github.com/fwojciec/qna/http"
	"github.com/fwojciec/qna/readability"
	"github.com/fwojciec/qna/rod"
	"github.com/fwojciec/qna/scan"
	"github.com/fwojciec/qna/session"
	qnaslog "github.com/fwojciec/qna/slog"
	"github.com/fwojciec/qna/sqlite"
	"github.com/fwojciec/qna/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the history archive.
	DB *sqlite.DB

	// Services for end-to-end testing.
	HistoryService qna.HistoryService
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
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("qna"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'qna --help' to see available commands")
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

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set QNA_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.HistoryService = sqlite.NewHistoryService(m.DB)
	deps.DB = m.DB
	deps.History = m.HistoryService

	// Wire the search and retrieval pipeline for the querying commands.
	if cmd == "ask" || cmd == "browse" {
		var browser, verbose, dom bool
		switch cmd {
		case "ask":
			browser, verbose, dom = cli.Ask.Browser, cli.Ask.Verbose, cli.Ask.DOM
		case "browse":
			browser, verbose, dom = cli.Browse.Browser, cli.Browse.Verbose, cli.Browse.DOM
		}

		var fetcher qna.Fetcher
		if browser {
			rodFetcher, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = rodFetcher
		} else {
			fetcher = qnahttp.NewFetcher()
		}
		defer fetcher.Close()

		search := qna.SearchProvider(google.NewProvider(fetcher))

		if verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			fetcher = qnaslog.NewLoggingFetcher(fetcher, logger)
			search = qnaslog.NewLoggingSearchProvider(search, logger)
		}

		textual := scan.New(scan.WithQuestion(true))
		structured := goquery.NewExtractor(goquery.WithQuestion(true))
		extractor := qna.ChainExtractor{textual, structured, trafilatura.NewExtractor(), readability.NewExtractor()}
		if dom {
			extractor = qna.ChainExtractor{structured, textual, trafilatura.NewExtractor(), readability.NewExtractor()}
		}

		deps.Session = &session.Session{
			Search:    search,
			Fetcher:   fetcher,
			Extractor: extractor,
			History:   deps.History,
			Limiter:   session.NewLimiter(1.0),
		}
		deps.Converter = htmltomarkdown.NewConverter()
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("QNA_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "qna.db"
	}
	dir := filepath.Join(home, ".qna")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "qna.db")
}
