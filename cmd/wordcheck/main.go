/*
Package main implements the wordcheck spell checker CLI and IPC server.

wordcheck loads a dictionary (one word per line) into a prefix trie and
reports words of a text file that are not in it, each with a short context
window and suggested replacements taken from the longest matching prefix.

# Usage

Check a file, positional or with flags:

	wordcheck words.txt essay.txt 5
	wordcheck -dict words.txt -file essay.txt -limit 5

A limit of 0, the default, returns every candidate. Output looks like:

	Using dictionary with 4 words.
	Spell checking 4 words.
	Found 2 misspelled words:
	--------------------------------
	--------------------------------
	Misspelled Word: wrld
	Context: hello wrld test exampl
	Suggested Replacements: world

Interactive prompt (check sentences, ':c <prefix>' to complete):

	wordcheck -dict words.txt -c

msgpack IPC server on stdin/stdout, see package server:

	wordcheck -dict words.txt -serve

# Configuration

Defaults come from a TOML file in the user config dir (created on first run)
or from -config. Flags override it.

# Command Line Flags

	-dict string     dictionary file (default cli.dictionary from config)
	-file string     file to check
	-limit int       suggestions per misspelling (default from config)
	-c               interactive prompt
	-serve           msgpack IPC server
	-no-filter       do not filter completion prefixes
	-config string   config file path
	-d               debug logging
	-version         print version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/bastiangx/wordcheck/internal/cli"
	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/checker"
	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/dictionary"
	"github.com/bastiangx/wordcheck/pkg/server"
	"github.com/bastiangx/wordcheck/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "wordcheck"
	gh      = "https://github.com/bastiangx/wordcheck"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// options is the merged result of flags, positional args and config.
type options struct {
	dictPath string
	filePath string
	limit    int
	noFilter bool
}

// main only manages the flow; the work is done in the other packages.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Dictionary file, one word per line")
	filePath := flag.String("file", "", "File to spell check")
	limit := flag.Int("limit", 0, "Suggestions per misspelling, 0 for all (default from config)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive prompt")
	serveMode := flag.Bool("serve", false, "Run the msgpack IPC server on stdin/stdout")
	noFilter := flag.Bool("no-filter", false, "Disable completion prefix filtering")
	configPath := flag.String("config", "", "Path to a TOML config file")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.Setup(*debugMode)

	resolver, err := utils.NewPathResolver()
	if err != nil {
		log.Warnf("Failed to initialize path resolver: %v", err)
	}
	cfg, usedConfig := config.LoadConfigWithPriority(*configPath, resolver)
	log.Debugf("Using config file: (%s)", utils.GetAbsolutePath(usedConfig))

	var limitFlag *int
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "limit" {
			limitFlag = limit
		}
	})

	opts, err := resolveOptions(flag.Args(), *dictPath, *filePath, limitFlag, *noFilter, cfg)
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}
	if resolver != nil {
		opts.dictPath = resolver.ResolveInput(opts.dictPath)
		opts.filePath = resolver.ResolveInput(opts.filePath)
	}

	start := time.Now()
	dict, err := dictionary.LoadFile(opts.dictPath)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	log.Debug("Dictionary loaded", "words", dict.WordCount(), "took", time.Since(start))

	switch {
	case *serveMode:
		completer := suggest.FromVocabulary(dict, 1)
		cfg.Check.SuggestionLimit = opts.limit
		srv := server.NewServer(dict, completer, cfg)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}

	case *cliMode:
		log.Debug("Input info:", "limit", opts.limit, "noFilter", opts.noFilter)
		c := checker.New(dict, opts.limit, checker.WithCacheSize(cfg.Check.CacheSize))
		completer := suggest.FromVocabulary(dict, 1)
		handler := cli.NewInputHandler(c, completer, cfg.CLI.DefaultLimit, opts.noFilter, os.Stdin, os.Stdout)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}

	default:
		words, err := checker.ReadFile(opts.filePath)
		if err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}
		c := checker.New(dict, opts.limit, checker.WithCacheSize(cfg.Check.CacheSize))
		found := c.Check(words)
		log.Debug("Check done", "stats", c.Stats())

		cli.NewPrinter(os.Stdout).PrintReport(cli.Report{
			DictionaryWords: dict.WordCount(),
			CheckedWords:    len(words),
			Misspellings:    found,
			Elapsed:         time.Since(start),
		})
	}
}

// resolveOptions merges positional args (<dictionary> <file> [limit]) with
// flags; flags win. limit is nil when the flag was not given. The config
// dictionary is the last resort for the dictionary path.
func resolveOptions(args []string, dictPath, filePath string, limit *int, noFilter bool, cfg *config.Config) (options, error) {
	opts := options{
		dictPath: dictPath,
		filePath: filePath,
		limit:    cfg.Check.SuggestionLimit,
		noFilter: noFilter || cfg.CLI.NoFilter,
	}

	if len(args) > 3 {
		return opts, fmt.Errorf("too many arguments: %v", args[3:])
	}
	if len(args) > 0 && opts.dictPath == "" {
		opts.dictPath = args[0]
	}
	if len(args) > 1 && opts.filePath == "" {
		opts.filePath = args[1]
	}
	if len(args) > 2 {
		n, err := strconv.Atoi(args[2])
		if err != nil || n < 0 {
			return opts, fmt.Errorf("suggestion limit must be a non-negative integer, got %q", args[2])
		}
		opts.limit = n
	}
	if limit != nil {
		if *limit < 0 {
			return opts, fmt.Errorf("suggestion limit must be a non-negative integer, got %d", *limit)
		}
		opts.limit = *limit
	}

	if opts.dictPath == "" {
		opts.dictPath = cfg.CLI.Dictionary
	}
	if opts.dictPath == "" {
		return opts, dictionary.ErrNoPath
	}
	return opts, nil
}

// printVersion shows a styled banner.
func printVersion() {
	banner := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ wordcheck ] prefix trie spell checker")
	banner.Print("", "version", Version)
	banner.Print("")
	if resolver, err := utils.NewPathResolver(); err == nil {
		banner.Print("", "config", resolver.ConfigDir())
	}
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}
