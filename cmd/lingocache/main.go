// Command lingocache translates text on demand with a persistent cache.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ZaguanLabs/lingocache"
	"github.com/ZaguanLabs/lingocache/cache"
	"github.com/ZaguanLabs/lingocache/provider"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = lingocache.Version
	commit    = lingocache.GitCommit
	buildDate = lingocache.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("lingocache", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	targetLang := fs.String("lang", "", "Target language code (e.g., es, ja_JP)")
	sourceLang := fs.String("source", "en", "Source language code")
	cacheFile := fs.String("cache", "", "Cache file path (JSON blob)")
	redisURL := fs.String("redis", "", "Redis URL for the cache blob (e.g., redis://localhost:6379)")
	dbFile := fs.String("db", "", "SQLite database file for the cache blob")
	apiKey := fs.String("api-key", "", "OpenAI API key (default: OPENAI_API_KEY env)")
	model := fs.String("model", "gpt-4o-mini", "OpenAI model to use")
	htmlMode := fs.Bool("html", false, "Treat input as an HTML document")
	dump := fs.Bool("dump", false, "Print the cache contents as JSON and exit")
	showVersion := fs.Bool("version", false, "Show version")
	quiet := fs.Bool("quiet", false, "Suppress log output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", lingocache.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	handler := log.NewWithOptions(stderr, log.Options{Prefix: "lingocache"})
	if *quiet {
		handler.SetLevel(log.ErrorLevel)
	}
	logger := slog.New(handler)

	// Pick the storage medium: redis > sqlite > file > memory.
	var medium cache.Medium
	switch {
	case *redisURL != "":
		m, err := cache.NewRedisMedium(cache.RedisConfig{URL: *redisURL})
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer m.Close()
		medium = m
	case *dbFile != "":
		m, err := cache.NewSQLiteMedium(*dbFile)
		if err != nil {
			return fmt.Errorf("opening cache database: %w", err)
		}
		defer m.Close()
		medium = m
	case *cacheFile != "":
		medium = cache.NewFileMedium(*cacheFile)
	default:
		medium = cache.NewMemoryMedium()
	}

	store := cache.New(medium, cache.WithLogger(logger))
	ctx := context.Background()

	if *dump {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(store.Snapshot(ctx))
	}

	if *targetLang == "" {
		fs.Usage()
		return fmt.Errorf("--lang is required")
	}

	opts := []lingocache.Option{
		lingocache.WithLanguage(*targetLang),
		lingocache.WithSourceLang(*sourceLang),
		lingocache.WithLogger(logger),
	}

	key := *apiKey
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	if key != "" {
		fn := provider.NewOpenAIFunc(provider.OpenAIConfig{
			APIKey:     key,
			Model:      *model,
			SourceLang: *sourceLang,
		})
		opts = append(opts, lingocache.WithProvider(
			lingocache.RetryingFunc(fn, lingocache.DefaultRetryConfig())))
	} else {
		logger.Warn("no API key, output will be fallback markers")
	}

	t := lingocache.New(store, opts...)

	if *htmlMode {
		var input string
		if fs.NArg() == 0 {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			input = string(data)
		} else {
			data, err := os.ReadFile(fs.Arg(0)) // #nosec G304 - CLI tool reads user-specified files
			if err != nil {
				return fmt.Errorf("reading file: %w", err)
			}
			input = string(data)
		}

		result, err := t.TranslateHTML(ctx, input)
		if err != nil {
			return fmt.Errorf("translating HTML: %w", err)
		}
		fmt.Fprint(stdout, result)
		return nil
	}

	// Plain mode: positional args are the texts, otherwise one text per
	// stdin line.
	if fs.NArg() > 0 {
		for _, text := range fs.Args() {
			fmt.Fprintln(stdout, t.Translate(ctx, text))
		}
		return nil
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fmt.Fprintln(stdout, t.Translate(ctx, text))
	}
	return scanner.Err()
}
