// Package snowball is the runtime for Snowball stemming programs. A program
// drives an Env through cursor moves, grouping tests, among lookups and slice
// edits until the buffer holds the stem.
package snowball

import (
	"unicode/utf8"
)

// Env is the mutable state of one stemming call. It is owned by a single
// goroutine for the duration of a Program run.
//
// All offsets are byte offsets into the buffer and always satisfy
// 0 <= LimitBackward <= Cursor <= Limit <= len(Current()).
type Env struct {
	current string

	Cursor        int
	Limit         int
	LimitBackward int
	Bra           int
	Ket           int
}

// Program is a compiled stemming algorithm. It reports whether it ran to
// completion; the stem is read back with AssignTo.
type Program func(env *Env) bool

// NewEnv returns an Env holding word with the cursor at the start.
func NewEnv(word string) *Env {
	env := &Env{}
	env.SetCurrent(word)
	return env
}

// SetCurrent replaces the buffer and resets every offset. The string is
// shared with the caller until the first edit builds a new one.
func (env *Env) SetCurrent(word string) {
	env.current = word
	env.Cursor = 0
	env.Limit = len(word)
	env.LimitBackward = 0
	env.Bra = 0
	env.Ket = len(word)
}

func (env *Env) Current() string {
	return env.current
}

func (env *Env) onCharBoundary(pos int) bool {
	if pos <= 0 || pos >= len(env.current) {
		return true
	}
	return utf8.RuneStart(env.current[pos])
}

// NextChar moves the cursor forward by one code point. The caller checks
// Cursor < Limit first.
func (env *Env) NextChar() {
	env.Cursor++
	for !env.onCharBoundary(env.Cursor) {
		env.Cursor++
	}
}

// PrevChar moves the cursor back by one code point. The caller checks
// Cursor > LimitBackward first.
func (env *Env) PrevChar() {
	env.Cursor--
	for !env.onCharBoundary(env.Cursor) {
		env.Cursor--
	}
}

// Hop advances the cursor by n code points. If fewer than n code points are
// left before Limit the cursor is not moved and Hop returns false.
func (env *Env) Hop(n int) bool {
	if n < 0 {
		return false
	}
	pos := env.Cursor
	for ; n > 0; n-- {
		if pos >= env.Limit {
			return false
		}
		pos++
		for pos < env.Limit && !env.onCharBoundary(pos) {
			pos++
		}
	}
	env.Cursor = pos
	return true
}

// HopBack is Hop towards LimitBackward.
func (env *Env) HopBack(n int) bool {
	if n < 0 {
		return false
	}
	pos := env.Cursor
	for ; n > 0; n-- {
		if pos <= env.LimitBackward {
			return false
		}
		pos--
		for pos > env.LimitBackward && !env.onCharBoundary(pos) {
			pos--
		}
	}
	env.Cursor = pos
	return true
}

// EqS matches s at the cursor and steps past it.
func (env *Env) EqS(s string) bool {
	if env.Limit-env.Cursor < len(s) {
		return false
	}
	if env.current[env.Cursor:env.Cursor+len(s)] != s {
		return false
	}
	env.Cursor += len(s)
	return true
}

// EqSB matches s ending at the cursor and steps back over it.
func (env *Env) EqSB(s string) bool {
	if env.Cursor-env.LimitBackward < len(s) {
		return false
	}
	if env.current[env.Cursor-len(s):env.Cursor] != s {
		return false
	}
	env.Cursor -= len(s)
	return true
}
