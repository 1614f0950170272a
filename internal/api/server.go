// Package api exposes the stemmers over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/deidaraiorek/deistem/internal/fetcher"
	"github.com/deidaraiorek/deistem/internal/registry"
	"github.com/deidaraiorek/deistem/internal/storage"
	"github.com/deidaraiorek/deistem/internal/textprocessor"
)

const maxBodySize = 10 * 1024 * 1024

// Term weights for analyzed HTML pages.
const (
	titleWeight       = 3
	descriptionWeight = 2
	contentWeight     = 1
)

type StemRequest struct {
	Words []string `json:"words"`
}

type StemResponse struct {
	Language string `json:"language"`
	Word     string `json:"word"`
	Stem     string `json:"stem"`
}

type StemBatchResponse struct {
	Language string   `json:"language"`
	Stems    []string `json:"stems"`
}

type AnalyzeResponse struct {
	Language    string         `json:"language"`
	Tokens      []string       `json:"tokens"`
	Frequencies map[string]int `json:"frequencies"`
	TotalTerms  int            `json:"total_terms"`
	UniqueTerms int            `json:"unique_terms"`
}

type WordsResponse struct {
	Language string   `json:"language"`
	Stem     string   `json:"stem"`
	Words    []string `json:"words"`
}

type LanguagesResponse struct {
	Languages []string `json:"languages"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Server answers stemming requests. The cache is optional.
type Server struct {
	cache *storage.StemCache
}

func NewServer(cache *storage.StemCache) *Server {
	return &Server{
		cache: cache,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5, "application/json"))

	r.Get("/languages", s.handleLanguages)
	r.Get("/stem/{language}/{word}", s.handleStemWord)
	r.Post("/stem/{language}", s.handleStemWords)
	r.Post("/analyze/{language}", s.handleAnalyze)
	r.Get("/words/{language}/{stem}", s.handleWordsForStem)

	return r
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, LanguagesResponse{Languages: registry.Languages()})
}

func (s *Server) handleStemWord(w http.ResponseWriter, r *http.Request) {
	language := chi.URLParam(r, "language")
	word := strings.ToLower(chi.URLParam(r, "word"))

	stemmer, ok := s.stemmer(w, language)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, StemResponse{
		Language: language,
		Word:     word,
		Stem:     s.stemWord(stemmer, word),
	})
}

func (s *Server) handleStemWords(w http.ResponseWriter, r *http.Request) {
	language := chi.URLParam(r, "language")

	stemmer, ok := s.stemmer(w, language)
	if !ok {
		return
	}

	var req StemRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Words == nil {
		writeError(w, http.StatusBadRequest, "words is required")
		return
	}

	words := make([]string, len(req.Words))
	for i, word := range req.Words {
		words[i] = strings.ToLower(strings.TrimSpace(word))
	}

	writeJSON(w, http.StatusOK, StemBatchResponse{
		Language: language,
		Stems:    s.stemWords(stemmer, words),
	})
}

// handleAnalyze tokenizes and stems a plain text or HTML body. For HTML
// the frequencies weight title and description terms above body terms.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	language := chi.URLParam(r, "language")

	processor, err := textprocessor.NewTextProcessor(language)
	if err != nil {
		writeLookupError(w, err)
		return
	}

	body := http.MaxBytesReader(w, r.Body, maxBodySize)

	var text string
	var doc textprocessor.ProcessedDocument
	if fetcher.IsHTMLContentType(r.Header.Get("Content-Type")) {
		page, err := textprocessor.ExtractPage(body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read body: "+err.Error())
			return
		}
		text = page.Text()
		doc = processor.ProcessDocumentWithWeights(page.Fields(), titleWeight, descriptionWeight, contentWeight)
	} else {
		raw, err := io.ReadAll(body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read body: "+err.Error())
			return
		}
		text = string(raw)
		doc = processor.ProcessDocument(textprocessor.DocumentFields{Content: text})
	}

	writeJSON(w, http.StatusOK, AnalyzeResponse{
		Language:    language,
		Tokens:      s.stemWords(processor.Stemmer(), processor.Tokenize(text)),
		Frequencies: doc.TermFrequencies,
		TotalTerms:  doc.TotalTerms,
		UniqueTerms: doc.UniqueTerms,
	})
}

// handleWordsForStem lists the cached words that reduce to a stem.
func (s *Server) handleWordsForStem(w http.ResponseWriter, r *http.Request) {
	language := chi.URLParam(r, "language")
	stem := strings.ToLower(chi.URLParam(r, "stem"))

	if _, err := registry.Lookup(language); err != nil {
		writeLookupError(w, err)
		return
	}
	if s.cache == nil {
		writeError(w, http.StatusServiceUnavailable, "no stem cache configured")
		return
	}

	words, err := s.cache.WordsForStem(language, stem)
	if err != nil {
		log.Printf("Error reading stem cache: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to read stem cache")
		return
	}
	if words == nil {
		words = []string{}
	}

	writeJSON(w, http.StatusOK, WordsResponse{
		Language: language,
		Stem:     stem,
		Words:    words,
	})
}

func (s *Server) stemmer(w http.ResponseWriter, language string) (*textprocessor.Stemmer, bool) {
	stemmer, err := textprocessor.NewStemmer(language)
	if err != nil {
		writeLookupError(w, err)
		return nil, false
	}
	return stemmer, true
}

// stemWord stems a single word through the cache when there is one.
func (s *Server) stemWord(stemmer *textprocessor.Stemmer, word string) string {
	if s.cache == nil {
		return stemmer.Stem(word)
	}

	language := stemmer.Language()
	stem, found, err := s.cache.Get(language, word)
	if err != nil {
		log.Printf("Warning: Failed to read stem cache: %v", err)
	}
	if found {
		return stem
	}

	stem = stemmer.Stem(word)
	if err := s.cache.Put(language, word, stem); err != nil {
		log.Printf("Warning: Failed to update stem cache: %v", err)
	}
	return stem
}

// stemWords stems words in order, going through the cache when there is one.
// Cache failures are logged and the words are stemmed directly.
func (s *Server) stemWords(stemmer *textprocessor.Stemmer, words []string) []string {
	if s.cache == nil {
		return stemmer.StemBatch(words)
	}

	stems := make([]string, len(words))
	if len(words) == 0 {
		return stems
	}

	language := stemmer.Language()

	cached, err := s.cache.GetMany(language, words)
	if err != nil {
		log.Printf("Warning: Failed to read stem cache: %v", err)
	}

	fresh := make(map[string]string)
	for i, word := range words {
		if stem, ok := cached[word]; ok {
			stems[i] = stem
			continue
		}
		if stem, ok := fresh[word]; ok {
			stems[i] = stem
			continue
		}
		stems[i] = stemmer.Stem(word)
		fresh[word] = stems[i]
	}

	if len(fresh) > 0 {
		if err := s.cache.PutMany(language, fresh); err != nil {
			log.Printf("Warning: Failed to update stem cache: %v", err)
		}
	}

	return stems
}

func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, registry.ErrUnknownAlgorithm) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
