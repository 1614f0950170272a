package snowball

import "fmt"

// ReplaceS replaces current[bra:ket] with s and returns the change in
// length. Limit follows the edit; a cursor at or past ket moves with the
// text after it and a cursor inside the replaced span collapses to bra.
// Replacing a span with identical text changes nothing.
func (env *Env) ReplaceS(bra, ket int, s string) int {
	if bra < 0 || bra > ket || ket > len(env.current) {
		panic(fmt.Sprintf("snowball: replace [%d, %d) outside buffer of length %d", bra, ket, len(env.current)))
	}
	if env.current[bra:ket] == s {
		return 0
	}
	adjustment := len(s) - (ket - bra)
	env.current = env.current[:bra] + s + env.current[ket:]
	env.Limit += adjustment
	if env.Cursor >= ket {
		env.Cursor += adjustment
	} else if env.Cursor > bra {
		env.Cursor = bra
	}
	return adjustment
}

// MarkSlice sets the bracket to [bra, ket).
func (env *Env) MarkSlice(bra, ket int) {
	env.Bra = bra
	env.Ket = ket
}

func (env *Env) sliceCheck() bool {
	return 0 <= env.Bra && env.Bra <= env.Ket && env.Ket <= env.Limit && env.Limit <= len(env.current)
}

// SliceFrom replaces the bracketed slice with s.
func (env *Env) SliceFrom(s string) bool {
	if !env.sliceCheck() {
		return false
	}
	env.ReplaceS(env.Bra, env.Ket, s)
	return true
}

func (env *Env) SliceDel() bool {
	return env.SliceFrom("")
}

// Insert puts s in place of current[bra:ket] and shifts the stored bracket
// when the edit starts at or before either end of it.
func (env *Env) Insert(bra, ket int, s string) {
	adjustment := env.ReplaceS(bra, ket, s)
	if bra <= env.Bra {
		env.Bra += adjustment
	}
	if bra <= env.Ket {
		env.Ket += adjustment
	}
}

// SliceTo returns the bracketed slice, or "" if the bracket is invalid.
func (env *Env) SliceTo() string {
	if !env.sliceCheck() {
		return ""
	}
	return env.current[env.Bra:env.Ket]
}

// AssignTo returns the buffer up to Limit, which is the stem once a
// Program has finished.
func (env *Env) AssignTo() string {
	return env.current[:env.Limit]
}
