// Package main is the entry point for the lineedit line editor.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/lineedit/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer func() { _ = application.Shutdown() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The menu blocks on input, so a signal ends the process directly
	// after stopping any running script.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		cancel()
		_ = application.Shutdown()
		os.Exit(130)
	}()

	if err := application.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.IntVar(&opts.Capacity, "capacity", 0, "Maximum number of lines in the buffer")
	flag.IntVar(&opts.UndoLimit, "undo-limit", 0, "Number of operations the undo log keeps")
	flag.StringVar(&opts.Script, "script", "", "Run a Lua script instead of the menu")
	flag.StringVar(&opts.Script, "s", "", "Run a Lua script instead of the menu (shorthand)")
	flag.BoolVar(&opts.Prompts, "prompts", false, "Print the menu and prompts even when input is not a terminal")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "lineedit - menu-driven line editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: lineedit [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  lineedit                     Start with an empty buffer\n")
		fmt.Fprintf(os.Stderr, "  lineedit notes.txt           Read a file, then show the menu\n")
		fmt.Fprintf(os.Stderr, "  lineedit -s fix.lua notes.txt  Read a file and run a script on it\n")
		fmt.Fprintf(os.Stderr, "  lineedit -capacity 100       Allow up to 100 lines\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("lineedit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Validate log level
	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	if opts.Capacity < 0 || opts.UndoLimit < 0 {
		fmt.Fprintf(os.Stderr, "Error: -capacity and -undo-limit must not be negative\n")
		os.Exit(1)
	}

	// Remaining argument is the file to read on startup
	opts.Files = flag.Args()

	return opts
}
