package snowball

import (
	"fmt"
	"unicode/utf8"
)

// Grouping is a set of code points stored as a bit array over [Min, Max].
type Grouping struct {
	Bits []byte
	Min  rune
	Max  rune
}

// NewGrouping builds the smallest grouping holding every rune of chars.
func NewGrouping(chars string) *Grouping {
	if chars == "" {
		return &Grouping{}
	}
	lo, hi := utf8.MaxRune, rune(0)
	for _, r := range chars {
		lo = min(lo, r)
		hi = max(hi, r)
	}
	g := &Grouping{
		Bits: make([]byte, (hi-lo)/8+1),
		Min:  lo,
		Max:  hi,
	}
	for _, r := range chars {
		off := r - lo
		g.Bits[off>>3] |= 1 << uint(off&7)
	}
	return g
}

func (g *Grouping) Contains(r rune) bool {
	if len(g.Bits) == 0 || r < g.Min || r > g.Max {
		return false
	}
	off := r - g.Min
	return g.Bits[off>>3]&(1<<uint(off&7)) != 0
}

func (g *Grouping) Validate() error {
	if g.Max < g.Min {
		return fmt.Errorf("grouping range [%d, %d] is empty", g.Min, g.Max)
	}
	need := int(g.Max-g.Min)/8 + 1
	if len(g.Bits) < need {
		return fmt.Errorf("grouping [%d, %d] needs %d bytes, has %d", g.Min, g.Max, need, len(g.Bits))
	}
	return nil
}

func (env *Env) runeAt() (rune, bool) {
	if env.Cursor >= env.Limit {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(env.current[env.Cursor:env.Limit])
	if r == utf8.RuneError && size <= 1 {
		return 0, false
	}
	return r, true
}

func (env *Env) runeBefore() (rune, bool) {
	if env.Cursor <= env.LimitBackward {
		return 0, false
	}
	r, size := utf8.DecodeLastRuneInString(env.current[env.LimitBackward:env.Cursor])
	if r == utf8.RuneError && size <= 1 {
		return 0, false
	}
	return r, true
}

// InGrouping steps forward over one code point that belongs to g.
func (env *Env) InGrouping(g *Grouping) bool {
	r, ok := env.runeAt()
	if !ok || !g.Contains(r) {
		return false
	}
	env.NextChar()
	return true
}

// InGroupingB steps back over one code point that belongs to g.
func (env *Env) InGroupingB(g *Grouping) bool {
	r, ok := env.runeBefore()
	if !ok || !g.Contains(r) {
		return false
	}
	env.PrevChar()
	return true
}

// OutGrouping steps forward over one code point that is not in g.
func (env *Env) OutGrouping(g *Grouping) bool {
	r, ok := env.runeAt()
	if !ok || g.Contains(r) {
		return false
	}
	env.NextChar()
	return true
}

// OutGroupingB steps back over one code point that is not in g.
func (env *Env) OutGroupingB(g *Grouping) bool {
	r, ok := env.runeBefore()
	if !ok || g.Contains(r) {
		return false
	}
	env.PrevChar()
	return true
}
