package storage

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// CacheVersion is bumped whenever an algorithm change makes stored stems
// stale. Opening a cache written under another version empties it.
const CacheVersion = "1"

// maxQueryParams keeps IN lists under SQLite's host parameter limit.
const maxQueryParams = 500

// StemCache persists word to stem mappings per language.
type StemCache struct {
	db *sql.DB
}

func NewStemCache(dbPath string) (*StemCache, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open stem cache: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	cache := &StemCache{
		db: db,
	}

	if err := cache.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	if err := cache.checkVersion(); err != nil {
		db.Close()
		return nil, err
	}

	return cache, nil
}

func (c *StemCache) initSchema() error {
	if _, err := c.db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (c *StemCache) checkVersion() error {
	version, err := c.GetMetadata("cache_version")
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to read cache version: %w", err)
	}
	if version == CacheVersion {
		return nil
	}

	log.Printf("Stem cache version %q does not match %q, clearing stored stems", version, CacheVersion)
	if _, err := c.db.Exec("DELETE FROM stems"); err != nil {
		return fmt.Errorf("failed to clear stale stems: %w", err)
	}
	if err := c.SetMetadata("cache_version", CacheVersion); err != nil {
		return fmt.Errorf("failed to update cache version: %w", err)
	}
	return nil
}

// Get returns the cached stem and whether one was found.
func (c *StemCache) Get(language, word string) (string, bool, error) {
	var stem string
	err := c.db.QueryRow(
		"SELECT stem FROM stems WHERE language = ? AND word = ?",
		language, word,
	).Scan(&stem)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read stem: %w", err)
	}
	return stem, true, nil
}

// GetMany looks up every word and returns the ones that are cached.
func (c *StemCache) GetMany(language string, words []string) (map[string]string, error) {
	found := make(map[string]string, len(words))

	for start := 0; start < len(words); start += maxQueryParams {
		end := start + maxQueryParams
		if end > len(words) {
			end = len(words)
		}
		chunk := words[start:end]

		args := make([]interface{}, 0, len(chunk)+1)
		args = append(args, language)
		for _, word := range chunk {
			args = append(args, word)
		}

		query := "SELECT word, stem FROM stems WHERE language = ? AND word IN (?" +
			strings.Repeat(", ?", len(chunk)-1) + ")"

		rows, err := c.db.Query(query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to query stems: %w", err)
		}

		for rows.Next() {
			var word, stem string
			if err := rows.Scan(&word, &stem); err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to scan stem: %w", err)
			}
			found[word] = stem
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to iterate stems: %w", err)
		}
	}

	return found, nil
}

// PutMany stores all pairs in a single transaction.
func (c *StemCache) PutMany(language string, stems map[string]string) error {
	if len(stems) == 0 {
		return nil
	}

	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO stems (language, word, stem) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for word, stem := range stems {
		if _, err := stmt.Exec(language, word, stem); err != nil {
			return fmt.Errorf("failed to insert stem for %q: %w", word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit stems: %w", err)
	}
	return nil
}

func (c *StemCache) Put(language, word, stem string) error {
	return c.PutMany(language, map[string]string{word: stem})
}

func (c *StemCache) Count(language string) (int, error) {
	var count int
	err := c.db.QueryRow(
		"SELECT COUNT(*) FROM stems WHERE language = ?",
		language,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count stems: %w", err)
	}
	return count, nil
}

// WordsForStem lists the cached words that reduce to stem, sorted.
func (c *StemCache) WordsForStem(language, stem string) ([]string, error) {
	rows, err := c.db.Query(
		"SELECT word FROM stems WHERE language = ? AND stem = ? ORDER BY word",
		language, stem,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, word)
	}
	return words, rows.Err()
}

func (c *StemCache) SetMetadata(key, value string) error {
	_, err := c.db.Exec(
		"INSERT OR REPLACE INTO cache_metadata (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)",
		key, value,
	)
	return err
}

func (c *StemCache) GetMetadata(key string) (string, error) {
	var value string
	err := c.db.QueryRow(
		"SELECT value FROM cache_metadata WHERE key = ?",
		key,
	).Scan(&value)
	return value, err
}

func (c *StemCache) Close() error {
	return c.db.Close()
}
