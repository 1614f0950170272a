package textprocessor

import (
	"github.com/deidaraiorek/deistem/internal/registry"
	"github.com/deidaraiorek/deistem/internal/snowball"
)

type Stemmer struct {
	language string
	program  snowball.Program
}

func NewStemmer(language string) (*Stemmer, error) {
	program, err := registry.Lookup(language)
	if err != nil {
		return nil, err
	}
	return &Stemmer{
		language: language,
		program:  program,
	}, nil
}

func (s *Stemmer) Language() string {
	return s.language
}

func (s *Stemmer) Stem(word string) string {
	stemmed, ok := registry.Run(s.program, word)
	if !ok {
		return word
	}
	return stemmed
}

func (s *Stemmer) StemBatch(words []string) []string {
	stemmed := make([]string, len(words))
	for i, word := range words {
		stemmed[i] = s.Stem(word)
	}
	return stemmed
}
