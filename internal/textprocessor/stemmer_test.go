package textprocessor_test

import (
	"errors"
	"testing"

	"github.com/deidaraiorek/deistem/internal/registry"
	"github.com/deidaraiorek/deistem/internal/textprocessor"
)

func newStemmer(t testing.TB, language string) *textprocessor.Stemmer {
	t.Helper()
	stemmer, err := textprocessor.NewStemmer(language)
	if err != nil {
		t.Fatalf("NewStemmer(%q) failed: %v", language, err)
	}
	return stemmer
}

func TestStem(t *testing.T) {
	stemmer := newStemmer(t, "english")

	tests := []struct {
		input    string
		expected string
	}{
		// Verbs
		{"running", "run"},
		{"runs", "run"},
		{"ran", "ran"},

		{"walking", "walk"},
		{"walked", "walk"},
		{"walks", "walk"},

		{"playing", "play"},
		{"played", "play"},

		// Plural nouns
		{"cars", "car"},
		{"boxes", "box"},
		{"companies", "compani"},
		{"stories", "stori"},

		{"databases", "databas"},
		{"algorithms", "algorithm"},

		{"machine", "machin"},
		{"learning", "learn"},
		{"data", "data"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := stemmer.Stem(tt.input)
			if result != tt.expected {
				t.Errorf("Stem(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestStemNativeLanguages(t *testing.T) {
	tests := []struct {
		language string
		input    string
		expected string
	}{
		{"swedish", "flickorna", "flick"},
		{"swedish", "pojkarna", "pojk"},
		{"porter", "relational", "relat"},
		{"porter", "ponies", "poni"},
		{"danish", "hestene", "hest"},
	}

	for _, tt := range tests {
		t.Run(tt.language+"/"+tt.input, func(t *testing.T) {
			result := newStemmer(t, tt.language).Stem(tt.input)
			if result != tt.expected {
				t.Errorf("Stem(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNewStemmerUnknownLanguage(t *testing.T) {
	_, err := textprocessor.NewStemmer("klingon")
	if err == nil {
		t.Fatal("Expected an error for an unknown language")
	}
	if !errors.Is(err, registry.ErrUnknownAlgorithm) {
		t.Errorf("Expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestStemBatch(t *testing.T) {
	stemmer := newStemmer(t, "english")

	input := []string{"running", "walked", "dogs", "quickly"}
	expected := []string{"run", "walk", "dog", "quick"}

	result := stemmer.StemBatch(input)

	if len(result) != len(expected) {
		t.Fatalf("Expected %d stems, got %d", len(expected), len(result))
	}

	for i := range result {
		if result[i] != expected[i] {
			t.Errorf("Position %d: Stem(%q) = %q, want %q",
				i, input[i], result[i], expected[i])
		}
	}
}

func BenchmarkStem(b *testing.B) {
	stemmer := newStemmer(b, "swedish")
	word := "flickorna"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		stemmer.Stem(word)
	}
}

func BenchmarkStemBatch(b *testing.B) {
	stemmer := newStemmer(b, "porter")
	words := []string{
		"running", "walked", "quickly", "databases",
		"algorithms", "functions", "searching", "indexing",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		stemmer.StemBatch(words)
	}
}
