package snowball

import (
	"fmt"
	"strings"
)

// AcceptFunc decides whether a textual among match is taken. It runs with
// the cursor just past the pattern and may inspect or edit the buffer.
type AcceptFunc func(env *Env, ctx interface{}) bool

// Among is one row of a pattern table. Forward tables are sorted by Str,
// backward tables by Str read right to left. Backtrack points at the row
// holding the longest proper prefix of Str (suffix for backward tables), or
// is -1.
type Among struct {
	Str       string
	Backtrack int
	Result    int
	Accept    AcceptFunc
}

// FindAmong finds the longest row of amongs matching at the cursor whose
// Accept approves it, moves the cursor past it and returns its Result.
// It returns 0 if no row is taken.
func (env *Env) FindAmong(amongs []Among, ctx interface{}) int {
	if len(amongs) == 0 {
		return 0
	}
	i, j := 0, len(amongs)
	c, l := env.Cursor, env.Limit
	commonI, commonJ := 0, 0
	firstKeyInspected := false

	for {
		k := i + (j-i)>>1
		diff := 0
		common := min(commonI, commonJ)
		w := &amongs[k]
		for i2 := common; i2 < len(w.Str); i2++ {
			if c+common == l {
				diff = -1
				break
			}
			diff = int(env.current[c+common]) - int(w.Str[i2])
			if diff != 0 {
				break
			}
			common++
		}
		if diff < 0 {
			j = k
			commonJ = common
		} else {
			i = k
			commonI = common
		}
		if j-i <= 1 {
			if i > 0 {
				break
			}
			if j == i {
				break
			}
			// amongs[0] may be the empty string; look at it once more.
			if firstKeyInspected {
				break
			}
			firstKeyInspected = true
		}
	}

	for {
		w := &amongs[i]
		if commonI >= len(w.Str) {
			env.Cursor = c + len(w.Str)
			if w.Accept == nil {
				return w.Result
			}
			res := w.Accept(env, ctx)
			env.Cursor = c + len(w.Str)
			if res {
				return w.Result
			}
		}
		i = w.Backtrack
		if i < 0 {
			return 0
		}
	}
}

// FindAmongB is FindAmong for text ending at the cursor. Patterns are
// compared from their last byte and a match moves the cursor before them.
func (env *Env) FindAmongB(amongs []Among, ctx interface{}) int {
	if len(amongs) == 0 {
		return 0
	}
	i, j := 0, len(amongs)
	c, lb := env.Cursor, env.LimitBackward
	commonI, commonJ := 0, 0
	firstKeyInspected := false

	for {
		k := i + (j-i)>>1
		diff := 0
		common := min(commonI, commonJ)
		w := &amongs[k]
		for i2 := len(w.Str) - 1 - common; i2 >= 0; i2-- {
			if c-common == lb {
				diff = -1
				break
			}
			diff = int(env.current[c-1-common]) - int(w.Str[i2])
			if diff != 0 {
				break
			}
			common++
		}
		if diff < 0 {
			j = k
			commonJ = common
		} else {
			i = k
			commonI = common
		}
		if j-i <= 1 {
			if i > 0 {
				break
			}
			if j == i {
				break
			}
			if firstKeyInspected {
				break
			}
			firstKeyInspected = true
		}
	}

	for {
		w := &amongs[i]
		if commonI >= len(w.Str) {
			env.Cursor = c - len(w.Str)
			if w.Accept == nil {
				return w.Result
			}
			res := w.Accept(env, ctx)
			env.Cursor = c - len(w.Str)
			if res {
				return w.Result
			}
		}
		i = w.Backtrack
		if i < 0 {
			return 0
		}
	}
}

// ValidateAmong checks the backtrack links of a forward table.
func ValidateAmong(amongs []Among) error {
	return validateAmong(amongs, strings.HasPrefix)
}

// ValidateAmongB checks the backtrack links of a backward table.
func ValidateAmongB(amongs []Among) error {
	return validateAmong(amongs, strings.HasSuffix)
}

func validateAmong(amongs []Among, contains func(s, part string) bool) error {
	for i, w := range amongs {
		if w.Backtrack < -1 || w.Backtrack >= len(amongs) {
			return fmt.Errorf("among row %d (%q): backtrack %d out of range", i, w.Str, w.Backtrack)
		}
		if w.Backtrack == -1 {
			continue
		}
		to := amongs[w.Backtrack].Str
		if len(to) >= len(w.Str) || !contains(w.Str, to) {
			return fmt.Errorf("among row %d (%q): backtrack row %d (%q) is not a shorter match", i, w.Str, w.Backtrack, to)
		}
	}
	return nil
}
