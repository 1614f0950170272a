package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/deidaraiorek/deistem/internal/api"
	"github.com/deidaraiorek/deistem/internal/registry"
	"github.com/deidaraiorek/deistem/internal/storage"
)

func do(t *testing.T, handler http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
	}
}

func TestLanguages(t *testing.T) {
	handler := api.NewServer(nil).Routes()

	rec := do(t, handler, http.MethodGet, "/languages", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp api.LanguagesResponse
	decode(t, rec, &resp)

	if !reflect.DeepEqual(resp.Languages, registry.Languages()) {
		t.Errorf("Languages = %v, want %v", resp.Languages, registry.Languages())
	}
}

func TestStemWord(t *testing.T) {
	handler := api.NewServer(nil).Routes()

	tests := []struct {
		target   string
		language string
		word     string
		stem     string
	}{
		{"/stem/swedish/flickorna", "swedish", "flickorna", "flick"},
		{"/stem/porter/Ponies", "porter", "ponies", "poni"},
		{"/stem/danish/hestene", "danish", "hestene", "hest"},
		{"/stem/english/running", "english", "running", "run"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := do(t, handler, http.MethodGet, tt.target, "", "")
			if rec.Code != http.StatusOK {
				t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
			}

			var resp api.StemResponse
			decode(t, rec, &resp)

			expected := api.StemResponse{Language: tt.language, Word: tt.word, Stem: tt.stem}
			if resp != expected {
				t.Errorf("Response = %+v, want %+v", resp, expected)
			}
		})
	}
}

func TestUnknownLanguage(t *testing.T) {
	handler := api.NewServer(nil).Routes()

	tests := []struct {
		method string
		target string
		body   string
	}{
		{http.MethodGet, "/stem/klingon/qapla", ""},
		{http.MethodPost, "/stem/klingon", `{"words": ["qapla"]}`},
		{http.MethodPost, "/analyze/klingon", "qapla"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := do(t, handler, tt.method, tt.target, "", tt.body)
			if rec.Code != http.StatusNotFound {
				t.Fatalf("Expected 404, got %d", rec.Code)
			}

			var resp api.ErrorResponse
			decode(t, rec, &resp)
			if !strings.Contains(resp.Error, `"klingon"`) {
				t.Errorf("Expected error to name klingon, got %q", resp.Error)
			}
		})
	}
}

func TestStemWords(t *testing.T) {
	handler := api.NewServer(nil).Routes()

	rec := do(t, handler, http.MethodPost, "/stem/swedish", "application/json",
		`{"words": ["flickorna", "POJKARNA", "hus"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp api.StemBatchResponse
	decode(t, rec, &resp)

	expected := []string{"flick", "pojk", "hus"}
	if !reflect.DeepEqual(resp.Stems, expected) {
		t.Errorf("Stems = %v, want %v", resp.Stems, expected)
	}
}

func TestStemWordsBadBody(t *testing.T) {
	handler := api.NewServer(nil).Routes()

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"words": [`},
		{"missing words", `{}`},
		{"wrong type", `{"words": "flickorna"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, handler, http.MethodPost, "/stem/swedish", "application/json", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestAnalyze(t *testing.T) {
	handler := api.NewServer(nil).Routes()

	tests := []struct {
		name        string
		contentType string
		body        string
		tokens      []string
		frequencies map[string]int
	}{
		{
			name:        "plain text",
			contentType: "text/plain",
			body:        "running dogs and running cats",
			tokens:      []string{"run", "dog", "run", "cat"},
			frequencies: map[string]int{"run": 2, "dog": 1, "cat": 1},
		},
		{
			name:        "html",
			contentType: "text/html; charset=utf-8",
			body:        "<html><body><nav>Menu</nav><script>var x;</script><p>Dogs running</p></body></html>",
			tokens:      []string{"dog", "run"},
			frequencies: map[string]int{"dog": 1, "run": 1},
		},
		{
			name:        "html weights title and description",
			contentType: "text/html",
			body:        `<html><head><title>Cats</title><meta name="description" content="Ponies"></head><body><p>Dogs running</p></body></html>`,
			tokens:      []string{"cat", "poni", "dog", "run"},
			frequencies: map[string]int{"cat": 3, "poni": 2, "dog": 1, "run": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, handler, http.MethodPost, "/analyze/english", tt.contentType, tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
			}

			var resp api.AnalyzeResponse
			decode(t, rec, &resp)

			if !reflect.DeepEqual(resp.Tokens, tt.tokens) {
				t.Errorf("Tokens = %v, want %v", resp.Tokens, tt.tokens)
			}
			if !reflect.DeepEqual(resp.Frequencies, tt.frequencies) {
				t.Errorf("Frequencies = %v, want %v", resp.Frequencies, tt.frequencies)
			}

			total := 0
			for _, freq := range tt.frequencies {
				total += freq
			}
			if resp.TotalTerms != total || resp.UniqueTerms != len(tt.frequencies) {
				t.Errorf("Got %d total and %d unique terms, want %d and %d",
					resp.TotalTerms, resp.UniqueTerms, total, len(tt.frequencies))
			}
		})
	}
}

func TestWordsForStem(t *testing.T) {
	cache, err := storage.NewStemCache(filepath.Join(t.TempDir(), "stems.db"))
	if err != nil {
		t.Fatalf("Failed to create stem cache: %v", err)
	}
	defer cache.Close()

	handler := api.NewServer(cache).Routes()

	for _, word := range []string{"flickorna", "flickor", "pojkarna"} {
		rec := do(t, handler, http.MethodGet, "/stem/swedish/"+word, "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200 stemming %s, got %d", word, rec.Code)
		}
	}

	stem, found, err := cache.Get("swedish", "flickorna")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found || stem != "flick" {
		t.Errorf("Expected flickorna to be cached as flick, got (%q, %v)", stem, found)
	}

	tests := []struct {
		name   string
		target string
		status int
		words  []string
	}{
		{"known stem", "/words/swedish/flick", http.StatusOK, []string{"flickor", "flickorna"}},
		{"unseen stem", "/words/swedish/hus", http.StatusOK, []string{}},
		{"unknown language", "/words/klingon/flick", http.StatusNotFound, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, handler, http.MethodGet, tt.target, "", "")
			if rec.Code != tt.status {
				t.Fatalf("Expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
			if tt.status != http.StatusOK {
				return
			}

			var resp api.WordsResponse
			decode(t, rec, &resp)
			if !reflect.DeepEqual(resp.Words, tt.words) {
				t.Errorf("Words = %v, want %v", resp.Words, tt.words)
			}
		})
	}
}

func TestWordsForStemWithoutCache(t *testing.T) {
	handler := api.NewServer(nil).Routes()

	rec := do(t, handler, http.MethodGet, "/words/swedish/flick", "", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503, got %d", rec.Code)
	}
}

func TestStemWordsUsesCache(t *testing.T) {
	cache, err := storage.NewStemCache(filepath.Join(t.TempDir(), "stems.db"))
	if err != nil {
		t.Fatalf("Failed to create stem cache: %v", err)
	}
	defer cache.Close()

	if err := cache.Put("swedish", "hus", "cached-hus"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	handler := api.NewServer(cache).Routes()

	rec := do(t, handler, http.MethodPost, "/stem/swedish", "application/json",
		`{"words": ["hus", "flickorna", "flickorna"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp api.StemBatchResponse
	decode(t, rec, &resp)

	expected := []string{"cached-hus", "flick", "flick"}
	if !reflect.DeepEqual(resp.Stems, expected) {
		t.Errorf("Stems = %v, want %v", resp.Stems, expected)
	}

	stem, found, err := cache.Get("swedish", "flickorna")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found || stem != "flick" {
		t.Errorf("Expected flickorna to be cached as flick, got (%q, %v)", stem, found)
	}
}
