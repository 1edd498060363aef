// Package main is the entry point for the tern editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/dshills/tern/internal/app"
	"github.com/dshills/tern/internal/config"
	"github.com/dshills/tern/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the parsed command line.
type options struct {
	configPath  string
	logFile     string
	logLevel    string
	showVersion bool
	file        string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if opts.showVersion {
		fmt.Printf("tern %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger := app.NullLogger
	if cfg.Log.File != "" {
		l, closer, err := app.OpenLogFile(cfg.Log.File, app.ParseLogLevel(cfg.Log.Level))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
			return 1
		}
		defer closer.Close()
		logger = l
	}
	logger = logger.WithField("session", uuid.NewString())
	logger.Info("starting tern %s", version)

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open terminal: %v\n", err)
		return 1
	}

	// Checked by the session loop; raw mode turns Ctrl-C into a key.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	session, err := app.New(app.Options{
		Config:  cfg,
		Driver:  term,
		Logger:  logger,
		Signals: signals,
		Version: version,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer session.Close()

	if opts.file != "" {
		if err := session.Open(opts.file); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if err := session.Run(); err != nil && !errors.Is(err, app.ErrQuit) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads the configuration file and applies flag overrides.
func loadConfig(opts options) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("tern", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.logFile, "log", "", "Write the session log to this file")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "tern - a small terminal text editor\n\n")
		fmt.Fprintf(stderr, "Usage: tern [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nKeys:\n")
		fmt.Fprintf(stderr, "  Ctrl-S save, Ctrl-Q quit, Ctrl-F find\n")
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.file = fs.Arg(0)
	default:
		fs.Usage()
		return options{}, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	return opts, nil
}
