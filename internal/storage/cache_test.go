package storage_test

import (
	"fmt"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/deidaraiorek/deistem/internal/storage"
)

func newCache(t *testing.T) *storage.StemCache {
	t.Helper()
	cache, err := storage.NewStemCache(filepath.Join(t.TempDir(), "stems.db"))
	if err != nil {
		t.Fatalf("Failed to create stem cache: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestNewStemCache(t *testing.T) {
	cache := newCache(t)

	count, err := cache.Count("swedish")
	if err != nil {
		t.Fatalf("Failed to count stems: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 stems, got %d", count)
	}

	version, err := cache.GetMetadata("cache_version")
	if err != nil {
		t.Fatalf("Failed to read metadata: %v", err)
	}
	if version != storage.CacheVersion {
		t.Errorf("Expected cache_version %s, got %q", storage.CacheVersion, version)
	}
}

func TestGetAndPut(t *testing.T) {
	cache := newCache(t)

	_, found, err := cache.Get("swedish", "flickorna")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Error("Expected flickorna to be missing")
	}

	if err := cache.Put("swedish", "flickorna", "flick"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	stem, found, err := cache.Get("swedish", "flickorna")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found || stem != "flick" {
		t.Errorf("Get() = (%q, %v), want (\"flick\", true)", stem, found)
	}

	_, found, err = cache.Get("danish", "flickorna")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Error("Expected stems to be kept per language")
	}
}

func TestPutManyReplaces(t *testing.T) {
	cache := newCache(t)

	if err := cache.PutMany("porter", map[string]string{"ponies": "pony"}); err != nil {
		t.Fatalf("PutMany failed: %v", err)
	}
	if err := cache.PutMany("porter", map[string]string{"ponies": "poni", "cats": "cat"}); err != nil {
		t.Fatalf("PutMany failed: %v", err)
	}

	stem, _, err := cache.Get("porter", "ponies")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stem != "poni" {
		t.Errorf("Expected replaced stem poni, got %q", stem)
	}

	count, err := cache.Count("porter")
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 stems, got %d", count)
	}
}

func TestGetMany(t *testing.T) {
	cache := newCache(t)

	stored := make(map[string]string)
	var words []string
	for i := 0; i < 1200; i++ {
		word := fmt.Sprintf("word%d", i)
		words = append(words, word)
		if i%2 == 0 {
			stored[word] = fmt.Sprintf("stem%d", i)
		}
	}

	if err := cache.PutMany("english", stored); err != nil {
		t.Fatalf("PutMany failed: %v", err)
	}

	found, err := cache.GetMany("english", words)
	if err != nil {
		t.Fatalf("GetMany failed: %v", err)
	}
	if !reflect.DeepEqual(found, stored) {
		t.Errorf("GetMany returned %d entries, want %d", len(found), len(stored))
	}

	empty, err := cache.GetMany("english", nil)
	if err != nil {
		t.Fatalf("GetMany(nil) failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected no entries, got %d", len(empty))
	}
}

func TestWordsForStem(t *testing.T) {
	cache := newCache(t)

	err := cache.PutMany("swedish", map[string]string{
		"flickorna": "flick",
		"flickor":   "flick",
		"pojkarna":  "pojk",
	})
	if err != nil {
		t.Fatalf("PutMany failed: %v", err)
	}

	words, err := cache.WordsForStem("swedish", "flick")
	if err != nil {
		t.Fatalf("WordsForStem failed: %v", err)
	}

	expected := []string{"flickor", "flickorna"}
	if !reflect.DeepEqual(words, expected) {
		t.Errorf("WordsForStem() = %v, want %v", words, expected)
	}
}

func TestCachePersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "stems.db")

	cache, err := storage.NewStemCache(dbPath)
	if err != nil {
		t.Fatalf("Failed to create stem cache: %v", err)
	}
	if err := cache.Put("danish", "hestene", "hest"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	cache.Close()

	cache, err = storage.NewStemCache(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen stem cache: %v", err)
	}
	defer cache.Close()

	stem, found, err := cache.Get("danish", "hestene")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found || stem != "hest" {
		t.Errorf("Get() = (%q, %v), want (\"hest\", true)", stem, found)
	}
}

func TestStaleCacheVersionClearsStems(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "stems.db")

	cache, err := storage.NewStemCache(dbPath)
	if err != nil {
		t.Fatalf("Failed to create stem cache: %v", err)
	}
	if err := cache.Put("danish", "hestene", "hest"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := cache.SetMetadata("cache_version", "0"); err != nil {
		t.Fatalf("SetMetadata failed: %v", err)
	}
	cache.Close()

	cache, err = storage.NewStemCache(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen stem cache: %v", err)
	}
	defer cache.Close()

	count, err := cache.Count("danish")
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected stale stems to be cleared, got %d", count)
	}

	version, err := cache.GetMetadata("cache_version")
	if err != nil {
		t.Fatalf("Failed to read metadata: %v", err)
	}
	if version != storage.CacheVersion {
		t.Errorf("Expected cache_version %s after reopen, got %q", storage.CacheVersion, version)
	}
}
