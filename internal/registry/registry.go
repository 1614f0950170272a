// Package registry maps language names to stemming programs.
package registry

import (
	"errors"
	"fmt"
	"sort"

	ksnowball "github.com/kljensen/snowball"

	"github.com/deidaraiorek/deistem/internal/algorithms/danish"
	"github.com/deidaraiorek/deistem/internal/algorithms/dutch"
	"github.com/deidaraiorek/deistem/internal/algorithms/finnish"
	"github.com/deidaraiorek/deistem/internal/algorithms/hungarian"
	"github.com/deidaraiorek/deistem/internal/algorithms/irish"
	"github.com/deidaraiorek/deistem/internal/algorithms/norwegian"
	"github.com/deidaraiorek/deistem/internal/algorithms/porter"
	"github.com/deidaraiorek/deistem/internal/algorithms/romanian"
	"github.com/deidaraiorek/deistem/internal/algorithms/swedish"
	"github.com/deidaraiorek/deistem/internal/snowball"
)

var ErrUnknownAlgorithm = errors.New("unknown stemming algorithm")

type UnknownAlgorithmError struct {
	Name string
}

func (e *UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("unknown stemming algorithm %q", e.Name)
}

func (e *UnknownAlgorithmError) Is(target error) bool {
	return target == ErrUnknownAlgorithm
}

// programs is built once at start-up and never written afterwards, so it
// is safe to read from any number of goroutines.
var programs = map[string]snowball.Program{
	"danish":    danish.Stem,
	"dutch":     dutch.Stem,
	"finnish":   finnish.Stem,
	"hungarian": hungarian.Stem,
	"irish":     irish.Stem,
	"norwegian": norwegian.Stem,
	"porter":    porter.Stem,
	"romanian":  romanian.Stem,
	"swedish":   swedish.Stem,

	"english": external("english"),
	"french":  external("french"),
	"russian": external("russian"),
	"spanish": external("spanish"),
}

// external runs one of the kljensen/snowball stemmers over the buffer.
func external(language string) snowball.Program {
	return func(env *snowball.Env) bool {
		stemmed, err := ksnowball.Stem(env.AssignTo(), language, true)
		if err != nil {
			return false
		}
		env.SetCurrent(stemmed)
		return true
	}
}

func Lookup(language string) (snowball.Program, error) {
	program, ok := programs[language]
	if !ok {
		return nil, &UnknownAlgorithmError{Name: language}
	}
	return program, nil
}

func Languages() []string {
	names := make([]string, 0, len(programs))
	for name := range programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run stems word with an already resolved program. It reports false if
// the program gave up, in which case the buffer is returned as it stood.
func Run(program snowball.Program, word string) (string, bool) {
	env := snowball.NewEnv(word)
	ok := program(env)
	return env.AssignTo(), ok
}

// Stem reduces word to its stem using the named algorithm. The word is
// expected to be lowercased already.
func Stem(language, word string) (string, error) {
	program, err := Lookup(language)
	if err != nil {
		return "", err
	}
	stemmed, _ := Run(program, word)
	return stemmed, nil
}
