package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/deidaraiorek/deistem/internal/batch"
	"github.com/deidaraiorek/deistem/internal/fetcher"
	"github.com/deidaraiorek/deistem/internal/registry"
	"github.com/deidaraiorek/deistem/internal/storage"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run holds every deferred close, so main only exits once they have run.
func run() error {
	language := flag.String("lang", "english", "stemming algorithm")
	inPath := flag.String("in", "", "input file (default stdin)")
	outPath := flag.String("out", "", "output file (default stdout)")
	mode := flag.String("mode", string(batch.ModeWords), "input mode: words, text or html")
	workers := flag.Int("workers", 4, "number of stemming workers")
	batchSize := flag.Int("batch", 1000, "lines per batch")
	cachePath := flag.String("cache", "", "sqlite stem cache (optional)")
	logPath := flag.String("log", "", "also append log output to this file")
	pageURL := flag.String("url", "", "stem the text of a web page (implies -mode html)")
	render := flag.Bool("render", false, "render -url in headless Chrome before extracting text")
	list := flag.Bool("list", false, "print the available algorithms and exit")
	flag.Parse()

	if *list {
		for _, name := range registry.Languages() {
			if _, err := os.Stdout.WriteString(name + "\n"); err != nil {
				return err
			}
		}
		return nil
	}

	// stdout may carry stems, so logging stays on stderr.
	if *logPath != "" {
		logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logFile.Close()

		log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var in io.Reader = os.Stdin
	switch {
	case *pageURL != "" && *render:
		log.Printf("Rendering %s", *pageURL)
		html, err := fetcher.NewBrowserFetcher("").FetchHTML(ctx, *pageURL)
		if err != nil {
			return fmt.Errorf("failed to render page: %w", err)
		}
		in = strings.NewReader(html)
		*mode = string(batch.ModeHTML)
	case *pageURL != "":
		log.Printf("Fetching %s", *pageURL)
		body, err := fetcher.New("").Fetch(ctx, *pageURL)
		if err != nil {
			return fmt.Errorf("failed to fetch page: %w", err)
		}
		defer body.Close()
		in = body
		*mode = string(batch.ModeHTML)
	case *inPath != "":
		f, err := os.Open(*inPath)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	var cache *storage.StemCache
	if *cachePath != "" {
		var err error
		cache, err = storage.NewStemCache(*cachePath)
		if err != nil {
			return fmt.Errorf("failed to open stem cache: %w", err)
		}
		defer cache.Close()
	}

	runner, err := batch.New(&batch.Config{
		Language:  *language,
		Workers:   *workers,
		BatchSize: *batchSize,
		Mode:      batch.Mode(*mode),
		Cache:     cache,
	})
	if err != nil {
		return fmt.Errorf("failed to create stemmer: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			log.Println("Shutting down after the current batch...")
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := runner.Run(ctx, in, out); err != nil {
		return fmt.Errorf("stemming failed: %w", err)
	}

	if cache != nil {
		if count, err := cache.Count(*language); err == nil {
			log.Printf("Stem cache %s holds %d %s stems", *cachePath, count, *language)
		}
	}
	return nil
}
