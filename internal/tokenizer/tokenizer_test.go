package tokenizer_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/deidaraiorek/deistem/internal/tokenizer"
)

func TestTokenize(t *testing.T) {
	tok := tokenizer.NewTokenizerForLanguage("english")

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "basic text",
			input:    "The quick brown fox jumps over the lazy dog",
			expected: []string{"quick", "brown", "fox", "jumps", "lazy", "dog"},
		},
		{
			name:     "with punctuation",
			input:    "Hello, world! How are you?",
			expected: []string{"hello", "world"},
		},
		{
			name:     "with numbers",
			input:    "Python 3.11 is great for AI/ML tasks",
			expected: []string{"python", "great", "ai", "ml", "tasks"},
		},
		{
			name:     "hyphenated words",
			input:    "machine-learning and deep-learning are cool",
			expected: []string{"machine", "learning", "deep", "learning", "cool"},
		},
		{
			name:     "HTML entities",
			input:    "This&nbsp;is&amp;test&lt;html&gt;",
			expected: []string{"isandtest", "html"},
		},
		{
			name:     "accented letters stay in the word",
			input:    "Café naïve Übergröße",
			expected: []string{"café", "naïve", "übergröße"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
		{
			name:     "only stop words",
			input:    "the and or but",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tok.Tokenize(tt.input)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizerForLanguage(t *testing.T) {
	tests := []struct {
		language string
		input    string
		expected []string
	}{
		{"swedish", "Flickorna och pojkarna är här", []string{"flickorna", "pojkarna", "här"}},
		{"danish", "Hestene og hundene", []string{"hestene", "hundene"}},
		{"finnish", "the kissa", []string{"the", "kissa"}},
		{"porter", "the running dogs", []string{"running", "dogs"}},
	}

	for _, tt := range tests {
		t.Run(tt.language, func(t *testing.T) {
			result := tokenizer.NewTokenizerForLanguage(tt.language).Tokenize(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsValidToken(t *testing.T) {
	tok := tokenizer.NewTokenizerForLanguage("english")

	tests := []struct {
		token    string
		expected bool
	}{
		{"hello", true},
		{"covid19", true},
		{"123", false},
		{"abc123def", true},
		{"a1b2c3d4", true},
		{"ö12", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			result := tok.IsValidToken(tt.token)
			if result != tt.expected {
				t.Errorf("IsValidToken(%q) = %v, want %v", tt.token, result, tt.expected)
			}
		})
	}
}

func TestLengthFiltering(t *testing.T) {
	tok := tokenizer.NewTokenizerForLanguage("english")

	result := tok.Tokenize("a b c hello world å")
	expected := []string{"hello", "world"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Tokenize() = %v, want %v", result, expected)
	}

	longToken := strings.Repeat("ä", 50)
	result = tok.Tokenize(longToken + " hello")
	expected = []string{longToken, "hello"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("length is counted in runes: got %v, want %v", result, expected)
	}

	result = tok.Tokenize(strings.Repeat("a", 60) + " hello")
	expected = []string{"hello"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Long token filtering failed: got %v, want %v", result, expected)
	}
}

func BenchmarkTokenize(b *testing.B) {
	tok := tokenizer.NewTokenizerForLanguage("english")
	text := `Machine learning is a subset of artificial intelligence that focuses on
	building systems that learn from data. Deep learning, a subset of machine learning,
	uses neural networks with multiple layers to analyze various factors of data.`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tok.Tokenize(text)
	}
}
