package main

import (
	"context"
	"io"

	"github.com/fwojciec/qna"
	"github.com/fwojciec/qna/session"
	"github.com/fwojciec/qna/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	History   qna.HistoryService
	Session   *session.Session
	Converter qna.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Ask     AskCmd     `cmd:"" help:"Answer a coding question from the web"`
	Browse  BrowseCmd  `cmd:"" help:"Answer a question and navigate between results"`
	History HistoryCmd `cmd:"" help:"List recent searches"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Query    []string `arg:"" help:"Question to search for"`
	Answers  int      `short:"a" default:"1" help:"Number of answers to show"`
	Question bool     `short:"q" help:"Include the question text"`
	Snippet  bool     `short:"s" help:"Show only code snippets"`
	Pos      int      `short:"p" default:"0" help:"Start at result position N"`
	Link     bool     `help:"Print the result URL instead of its content"`
	Markdown bool     `help:"Render answers as Markdown"`
	DOM      bool     `name:"dom" help:"Prefer the DOM extractor"`
	Browser  bool     `help:"Fetch pages with a headless browser"`
	Verbose  bool     `short:"v" help:"Log network operations to stderr"`
	MaxPos   int      `default:"10" help:"Highest reachable result position"`
}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct {
	Query    []string `arg:"" help:"Question to search for"`
	Answers  int      `short:"a" default:"1" help:"Number of answers to show"`
	Question bool     `short:"q" help:"Include the question text"`
	Snippet  bool     `short:"s" help:"Show only code snippets"`
	Markdown bool     `help:"Render answers as Markdown"`
	DOM      bool     `name:"dom" help:"Prefer the DOM extractor"`
	Browser  bool     `help:"Fetch pages with a headless browser"`
	Verbose  bool     `short:"v" help:"Log network operations to stderr"`
	MaxPos   int      `default:"10" help:"Highest reachable result position"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	N     int  `short:"n" default:"10" help:"Number of searches to show"`
	Pages bool `help:"Show archived pages for each search"`
}
