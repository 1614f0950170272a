package textprocessor_test

import (
	"reflect"
	"testing"

	"github.com/deidaraiorek/deistem/internal/textprocessor"
)

func newProcessor(t testing.TB, language string) *textprocessor.TextProcessor {
	t.Helper()
	processor, err := textprocessor.NewTextProcessor(language)
	if err != nil {
		t.Fatalf("NewTextProcessor(%q) failed: %v", language, err)
	}
	return processor
}

func TestProcess(t *testing.T) {
	processor := newProcessor(t, "english")

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "basic text with stemming",
			input:    "The dogs are running in the park",
			expected: []string{"dog", "run", "park"},
		},
		{
			name:     "tech content",
			input:    "Building scalable systems requires databases and algorithms",
			expected: []string{"build", "scalabl", "system", "requir", "databas", "algorithm"},
		},
		{
			name:     "past tense",
			input:    "He walked quickly and talked loudly",
			expected: []string{"walk", "quick", "talk", "loud"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := processor.Process(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Process(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestProcessSwedish(t *testing.T) {
	processor := newProcessor(t, "swedish")

	result := processor.Process("Flickorna och pojkarna")
	expected := []string{"flick", "pojk"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Process() = %v, want %v", result, expected)
	}
}

func TestProcessToFrequency(t *testing.T) {
	processor := newProcessor(t, "english")

	input := "running dogs and running cats are running fast"
	result := processor.ProcessToFrequency(input)

	expected := map[string]int{
		"run":  3,
		"dog":  1,
		"cat":  1,
		"fast": 1,
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("ProcessToFrequency() = %v, want %v", result, expected)
	}
}

func TestProcessDocument(t *testing.T) {
	processor := newProcessor(t, "english")

	doc := textprocessor.DocumentFields{
		Title:       "Machine Learning Tutorial",
		Description: "Learn machine learning basics",
		Content:     "Machine learning is a powerful approach to building intelligent systems",
	}

	result := processor.ProcessDocument(doc)

	if result.TermFrequencies["machin"] != 3 {
		t.Errorf("Expected 'machin' frequency = 3, got %d", result.TermFrequencies["machin"])
	}
	if result.TermFrequencies["learn"] != 4 {
		t.Errorf("Expected 'learn' frequency = 4, got %d", result.TermFrequencies["learn"])
	}

	total := 0
	for _, freq := range result.TermFrequencies {
		total += freq
	}
	if result.TotalTerms != total {
		t.Errorf("TotalTerms = %d, want %d", result.TotalTerms, total)
	}
	if result.UniqueTerms != len(result.TermFrequencies) {
		t.Errorf("UniqueTerms = %d, want %d", result.UniqueTerms, len(result.TermFrequencies))
	}
}

func TestProcessDocumentWithWeights(t *testing.T) {
	processor := newProcessor(t, "english")

	doc := textprocessor.DocumentFields{
		Title:       "machine learning",
		Description: "machine learning",
		Content:     "machine learning",
	}

	result := processor.ProcessDocumentWithWeights(doc, 3, 2, 1)

	if result.TermFrequencies["machin"] != 6 {
		t.Errorf("Expected 'machin' frequency = 6, got %d", result.TermFrequencies["machin"])
	}
	if result.TermFrequencies["learn"] != 6 {
		t.Errorf("Expected 'learn' frequency = 6, got %d", result.TermFrequencies["learn"])
	}
	if result.TotalTerms != 12 {
		t.Errorf("Expected 12 total terms, got %d", result.TotalTerms)
	}
}

func TestProcessDocumentEmptyFields(t *testing.T) {
	processor := newProcessor(t, "english")

	doc := textprocessor.DocumentFields{
		Title: "Test",
	}

	result := processor.ProcessDocument(doc)

	if result.UniqueTerms != 1 {
		t.Errorf("Expected 1 unique term, got %d", result.UniqueTerms)
	}

	if result.TermFrequencies["test"] != 1 {
		t.Error("Expected 'test' to appear once")
	}
}

func TestNewTextProcessorUnknownLanguage(t *testing.T) {
	if _, err := textprocessor.NewTextProcessor("klingon"); err == nil {
		t.Error("Expected an error for an unknown language")
	}
}

func BenchmarkProcess(b *testing.B) {
	processor := newProcessor(b, "english")
	text := `Machine learning is a subset of artificial intelligence that focuses on
	building systems that learn from data. Deep learning uses neural networks with
	multiple layers to analyze various factors of data.`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		processor.Process(text)
	}
}

func BenchmarkProcessDocument(b *testing.B) {
	processor := newProcessor(b, "english")
	doc := textprocessor.DocumentFields{
		Title:       "Introduction to Machine Learning and AI",
		Description: "Learn the fundamentals of machine learning, deep learning, and artificial intelligence",
		Content: `Machine learning is a subset of artificial intelligence that focuses on
		building systems that learn from data. Deep learning uses neural networks with
		multiple layers to analyze various factors of data.`,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		processor.ProcessDocument(doc)
	}
}
