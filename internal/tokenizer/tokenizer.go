package tokenizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

type Tokenizer struct {
	StopWords map[string]bool
	minLength int
	maxLength int
}

// NewTokenizerForLanguage returns a tokenizer with the stop words of the
// given language. Languages without a list keep every word.
func NewTokenizerForLanguage(language string) *Tokenizer {
	return NewTokenizerWithStopWords(stopWords[language])
}

func NewTokenizerWithStopWords(words []string) *Tokenizer {
	stopWords := make(map[string]bool, len(words))
	for _, word := range words {
		stopWords[word] = true
	}
	return &Tokenizer{
		StopWords: stopWords,
		minLength: 2,
		maxLength: 50,
	}
}

func (t *Tokenizer) Tokenize(text string) []string {
	normalized := t.normalize(text)
	words := t.split(normalized)

	tokens := make([]string, 0)

	for _, word := range words {
		if word == "" {
			continue
		}

		if t.StopWords[word] {
			continue
		}

		length := utf8.RuneCountInString(word)
		if length < t.minLength || length > t.maxLength {
			continue
		}

		if !t.IsValidToken(word) {
			continue
		}

		tokens = append(tokens, word)
	}
	return tokens
}

func (t *Tokenizer) normalize(text string) string {
	text = strings.ToLower(text)

	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = strings.ReplaceAll(text, "&amp;", "and")
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")

	text = strings.ReplaceAll(text, "-", " ")
	text = strings.ReplaceAll(text, "_", " ")

	return text
}

func (t *Tokenizer) split(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

func (t *Tokenizer) IsValidToken(word string) bool {
	alphaCount := 0
	digitCount := 0

	for _, r := range word {
		if unicode.IsLetter(r) {
			alphaCount++
		} else if unicode.IsDigit(r) {
			digitCount++
		}
	}
	if alphaCount == 0 {
		return false
	}
	if digitCount > alphaCount {
		return false
	}
	return true
}
