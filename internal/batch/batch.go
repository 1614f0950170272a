// Package batch stems line oriented input with a pool of workers.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/deidaraiorek/deistem/internal/storage"
	"github.com/deidaraiorek/deistem/internal/textprocessor"
)

type Mode string

const (
	ModeWords Mode = "words"
	ModeText  Mode = "text"
	ModeHTML  Mode = "html"
)

const maxLineSize = 1024 * 1024

type Config struct {
	Language  string
	Workers   int
	BatchSize int
	Mode      Mode
	Cache     *storage.StemCache
}

type Stats struct {
	Lines     int
	Words     int
	CacheHits int
	Stemmed   int
}

type Runner struct {
	config    *Config
	processor *textprocessor.TextProcessor

	stats Stats
	mu    sync.Mutex
}

func New(config *Config) (*Runner, error) {
	if config.Language == "" {
		config.Language = "english"
	}
	if config.Workers <= 0 {
		config.Workers = 4
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 1000
	}
	if config.Mode == "" {
		config.Mode = ModeWords
	}

	switch config.Mode {
	case ModeWords, ModeText, ModeHTML:
	default:
		return nil, fmt.Errorf("unknown mode %q", config.Mode)
	}

	processor, err := textprocessor.NewTextProcessor(config.Language)
	if err != nil {
		return nil, err
	}

	return &Runner{
		config:    config,
		processor: processor,
	}, nil
}

// Run reads in, stems it and writes one output line per input line. In
// html mode the whole document is read first and every extracted token
// becomes a line. Cancelling ctx stops the run before the next batch;
// lines stemmed before that are still written to out.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (err error) {
	log.Printf("Stemming %s input (language: %s, workers: %d, batch size: %d)",
		r.config.Mode, r.config.Language, r.config.Workers, r.config.BatchSize)

	if r.config.Mode == ModeHTML {
		text, err := textprocessor.ExtractText(in)
		if err != nil {
			return err
		}
		in = strings.NewReader(strings.Join(r.processor.Tokenize(text), "\n"))
	}

	writer := bufio.NewWriter(out)
	defer func() {
		if flushErr := writer.Flush(); flushErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to write output: %w", flushErr))
		}
	}()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	batch := make([]string, 0, r.config.BatchSize)
	for scanner.Scan() {
		batch = append(batch, scanner.Text())
		if len(batch) < r.config.BatchSize {
			continue
		}
		if err := r.flushBatch(ctx, batch, writer); err != nil {
			return err
		}
		batch = batch[:0]
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if len(batch) > 0 {
		if err := r.flushBatch(ctx, batch, writer); err != nil {
			return err
		}
	}

	stats := r.Stats()
	log.Printf("Stemming completed. Lines: %d, words: %d, cache hits: %d, stemmed: %d",
		stats.Lines, stats.Words, stats.CacheHits, stats.Stemmed)
	return nil
}

func (r *Runner) flushBatch(ctx context.Context, lines []string, w *bufio.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	results, err := r.ProcessBatch(lines)
	if err != nil {
		return err
	}

	for _, result := range results {
		if _, err := w.WriteString(result); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// ProcessBatch stems every line of one batch. results[i] belongs to
// lines[i]; the words of a line are joined with single spaces.
func (r *Runner) ProcessBatch(lines []string) ([]string, error) {
	lineWords := make([][]string, len(lines))
	seen := make(map[string]bool)
	var unique []string
	total := 0

	for i, line := range lines {
		words := r.split(line)
		lineWords[i] = words
		total += len(words)
		for _, word := range words {
			if !seen[word] {
				seen[word] = true
				unique = append(unique, word)
			}
		}
	}

	stems, err := r.resolve(unique)
	if err != nil {
		return nil, err
	}

	results := make([]string, len(lines))
	for i, words := range lineWords {
		parts := make([]string, len(words))
		for j, word := range words {
			parts[j] = stems[word]
		}
		results[i] = strings.Join(parts, " ")
	}

	r.mu.Lock()
	r.stats.Lines += len(lines)
	r.stats.Words += total
	r.mu.Unlock()

	return results, nil
}

func (r *Runner) split(line string) []string {
	if r.config.Mode == ModeText {
		return r.processor.Tokenize(line)
	}

	word := strings.ToLower(strings.TrimSpace(line))
	if word == "" {
		return nil
	}
	return []string{word}
}

func (r *Runner) resolve(words []string) (map[string]string, error) {
	stems := make(map[string]string, len(words))
	missing := words

	cache := r.config.Cache
	if cache != nil && len(words) > 0 {
		cached, err := cache.GetMany(r.config.Language, words)
		if err != nil {
			return nil, fmt.Errorf("failed to read stem cache: %w", err)
		}

		missing = make([]string, 0, len(words)-len(cached))
		for _, word := range words {
			if stem, ok := cached[word]; ok {
				stems[word] = stem
			} else {
				missing = append(missing, word)
			}
		}

		r.mu.Lock()
		r.stats.CacheHits += len(cached)
		r.mu.Unlock()
	}

	computed := r.stemAll(missing)
	for i, word := range missing {
		stems[word] = computed[i]
	}

	if cache != nil && len(missing) > 0 {
		fresh := make(map[string]string, len(missing))
		for i, word := range missing {
			fresh[word] = computed[i]
		}
		if err := cache.PutMany(r.config.Language, fresh); err != nil {
			return nil, fmt.Errorf("failed to update stem cache: %w", err)
		}
	}

	r.mu.Lock()
	r.stats.Stemmed += len(missing)
	r.mu.Unlock()

	return stems, nil
}

func (r *Runner) stemAll(words []string) []string {
	results := make([]string, len(words))
	if len(words) == 0 {
		return results
	}

	stemmer := r.processor.Stemmer()
	jobs := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < min(r.config.Workers, len(words)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = stemmer.Stem(words[idx])
			}
		}()
	}

	for i := range words {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

func (r *Runner) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}
