// Package main is the entry point for the Slidestorm viewer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/slidestorm/internal/app"
	"github.com/dshills/slidestorm/internal/engine/deck"
	"github.com/dshills/slidestorm/internal/export"
	"github.com/dshills/slidestorm/internal/renderer/backend"
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
	opts, exportFormat, outputPath := parseFlags()

	// Headless export does not need a terminal or a running app.
	if exportFormat != "" {
		if err := runExport(opts.DeckPath, exportFormat, outputPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	application.SetBackend(term)

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		application.Shutdown()
		term.PostEvent(backend.Event{Type: backend.EventQuit})
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// runExport writes the deck in the requested format to outputPath, or
// stdout when the path is empty.
func runExport(deckPath, format, outputPath string) error {
	d, err := deck.Load(deckPath)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "text":
		return export.Text(w, d)
	case "html":
		return export.NewHTML(d.Title(1)).Write(w, d)
	default:
		return fmt.Errorf("unknown export format %q (must be text or html)", format)
	}
}

func parseFlags() (app.Options, string, string) {
	var opts app.Options
	var exportFormat string
	var outputPath string
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.NoWatch, "no-watch", false, "Disable deck live reload")
	flag.StringVar(&exportFormat, "export", "", "Export the deck and exit (text, html)")
	flag.StringVar(&outputPath, "output", "", "Export output file (default stdout)")
	flag.StringVar(&outputPath, "o", "", "Export output file (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Slidestorm - terminal slide deck viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: slidestorm [options] <deck>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  slidestorm talk.txt                 Present a deck\n")
		fmt.Fprintf(os.Stderr, "  slidestorm -no-watch talk.txt       Present without live reload\n")
		fmt.Fprintf(os.Stderr, "  slidestorm -export html talk.txt    Export to HTML on stdout\n")
		fmt.Fprintf(os.Stderr, "  slidestorm -export text -o out.txt talk.txt\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Slidestorm %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Validate log level
	switch opts.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	opts.DeckPath = flag.Arg(0)

	return opts, exportFormat, outputPath
}
