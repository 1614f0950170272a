package textprocessor

import (
	"github.com/deidaraiorek/deistem/internal/tokenizer"
)

type TextProcessor struct {
	tokenizer *tokenizer.Tokenizer
	stemmer   *Stemmer
}

// NewTextProcessor pairs the stemmer for language with a tokenizer using
// that language's stop words.
func NewTextProcessor(language string) (*TextProcessor, error) {
	stemmer, err := NewStemmer(language)
	if err != nil {
		return nil, err
	}
	return &TextProcessor{
		tokenizer: tokenizer.NewTokenizerForLanguage(language),
		stemmer:   stemmer,
	}, nil
}

func (tp *TextProcessor) Stemmer() *Stemmer {
	return tp.stemmer
}

func (tp *TextProcessor) Tokenize(text string) []string {
	return tp.tokenizer.Tokenize(text)
}

func (tp *TextProcessor) Process(text string) []string {
	tokens := tp.tokenizer.Tokenize(text)

	stemmed := make([]string, len(tokens))
	for i, token := range tokens {
		stemmed[i] = tp.stemmer.Stem(token)
	}
	return stemmed
}

func (tp *TextProcessor) ProcessToFrequency(text string) map[string]int {
	tokens := tp.Process(text)

	freq := make(map[string]int)
	for _, token := range tokens {
		freq[token]++
	}

	return freq
}

type DocumentFields struct {
	Title       string
	Description string
	Content     string
}

type ProcessedDocument struct {
	TermFrequencies map[string]int
	TotalTerms      int
	UniqueTerms     int
}

func (tp *TextProcessor) ProcessDocument(doc DocumentFields) ProcessedDocument {
	return tp.ProcessDocumentWithWeights(doc, 1, 1, 1)
}

func (tp *TextProcessor) ProcessDocumentWithWeights(doc DocumentFields, titleWeight, descWeight, contentWeight int) ProcessedDocument {
	termFreq := make(map[string]int)

	fields := []struct {
		text   string
		weight int
	}{
		{doc.Title, titleWeight},
		{doc.Description, descWeight},
		{doc.Content, contentWeight},
	}

	for _, field := range fields {
		if field.text == "" || field.weight <= 0 {
			continue
		}
		for term, freq := range tp.ProcessToFrequency(field.text) {
			termFreq[term] += freq * field.weight
		}
	}

	totalTerms := 0
	for _, freq := range termFreq {
		totalTerms += freq
	}

	return ProcessedDocument{
		TermFrequencies: termFreq,
		TotalTerms:      totalTerms,
		UniqueTerms:     len(termFreq),
	}
}
