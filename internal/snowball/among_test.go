package snowball_test

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/deidaraiorek/deistem/internal/snowball"
)

func reject(env *snowball.Env, ctx interface{}) bool { return false }

func TestFindAmongLongestMatch(t *testing.T) {
	table := []snowball.Among{
		{Str: "a", Backtrack: -1, Result: 1},
		{Str: "ab", Backtrack: -1, Result: 2},
		{Str: "abc", Backtrack: -1, Result: 3},
	}
	env := snowball.NewEnv("abcd")

	if got := env.FindAmong(table, nil); got != 3 {
		t.Errorf("FindAmong = %d, want 3", got)
	}
	if env.Cursor != 3 {
		t.Errorf("cursor = %d, want 3", env.Cursor)
	}
}

func TestFindAmongRejectedWithoutFallback(t *testing.T) {
	table := []snowball.Among{
		{Str: "a", Backtrack: -1, Result: 1},
		{Str: "ab", Backtrack: -1, Result: 2},
		{Str: "abc", Backtrack: -1, Result: 3, Accept: reject},
	}
	env := snowball.NewEnv("abcd")

	if got := env.FindAmong(table, nil); got != 0 {
		t.Errorf("FindAmong = %d, want 0", got)
	}
	if env.Cursor != 3 {
		t.Errorf("cursor = %d, want 3", env.Cursor)
	}
}

func TestFindAmongRejectedFallsBack(t *testing.T) {
	table := []snowball.Among{
		{Str: "a", Backtrack: -1, Result: 1},
		{Str: "ab", Backtrack: 0, Result: 2},
		{Str: "abc", Backtrack: 1, Result: 3, Accept: reject},
	}
	env := snowball.NewEnv("abcd")

	if got := env.FindAmong(table, nil); got != 2 {
		t.Errorf("FindAmong = %d, want 2", got)
	}
	if env.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", env.Cursor)
	}
}

func TestFindAmongNoMatchLeavesCursor(t *testing.T) {
	table := []snowball.Among{
		{Str: "b", Backtrack: -1, Result: 1},
		{Str: "c", Backtrack: -1, Result: 2},
	}
	env := snowball.NewEnv("abc")

	if got := env.FindAmong(table, nil); got != 0 {
		t.Errorf("FindAmong = %d, want 0", got)
	}
	if env.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", env.Cursor)
	}
	if got := env.FindAmong(nil, nil); got != 0 {
		t.Errorf("FindAmong(empty) = %d, want 0", got)
	}
}

func TestFindAmongFirstKey(t *testing.T) {
	tests := []struct {
		name  string
		table []snowball.Among
		word  string
		want  int
	}{
		{"single row", []snowball.Among{{Str: "a", Backtrack: -1, Result: 1}}, "ab", 1},
		{"first of two", []snowball.Among{{Str: "a", Backtrack: -1, Result: 1}, {Str: "b", Backtrack: -1, Result: 2}}, "ab", 1},
		{"empty first row", []snowball.Among{{Str: "", Backtrack: -1, Result: 1}, {Str: "x", Backtrack: 0, Result: 2}}, "ab", 1},
		{"first of three", []snowball.Among{{Str: "a", Backtrack: -1, Result: 1}, {Str: "b", Backtrack: -1, Result: 2}, {Str: "c", Backtrack: -1, Result: 3}}, "a", 1},
		{"buffer shorter than row", []snowball.Among{{Str: "ab", Backtrack: -1, Result: 1}}, "a", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := snowball.NewEnv(tt.word)
			if got := env.FindAmong(tt.table, nil); got != tt.want {
				t.Errorf("FindAmong = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFindAmongBackward(t *testing.T) {
	table := []snowball.Among{
		{Str: "a", Backtrack: -1, Result: 1},
		{Str: "arna", Backtrack: 0, Result: 2},
		{Str: "erna", Backtrack: 0, Result: 3},
		{Str: "heterna", Backtrack: 2, Result: 4},
		{Str: "s", Backtrack: -1, Result: 5},
	}
	if err := snowball.ValidateAmongB(table); err != nil {
		t.Fatalf("ValidateAmongB() = %v", err)
	}

	tests := []struct {
		word       string
		want       int
		wantCursor int
	}{
		{"flickorna", 1, 8},
		{"pojkarna", 2, 4},
		{"snällheterna", 4, 6},
		{"tjejerna", 3, 4},
		{"sjukdoma", 1, 7},
		{"hus", 5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			env := snowball.NewEnv(tt.word)
			env.Cursor = env.Limit
			if got := env.FindAmongB(table, nil); got != tt.want {
				t.Errorf("FindAmongB = %d, want %d", got, tt.want)
			}
			if env.Cursor != tt.wantCursor {
				t.Errorf("cursor = %d, want %d", env.Cursor, tt.wantCursor)
			}
		})
	}
}

func TestFindAmongBRespectsLimitBackward(t *testing.T) {
	table := []snowball.Among{
		{Str: "a", Backtrack: -1, Result: 1},
		{Str: "arna", Backtrack: 0, Result: 2},
	}
	env := snowball.NewEnv("pojkarna")
	env.Cursor = env.Limit
	env.LimitBackward = 6

	if got := env.FindAmongB(table, nil); got != 1 {
		t.Errorf("FindAmongB = %d, want 1", got)
	}
	if env.Cursor != 7 {
		t.Errorf("cursor = %d, want 7", env.Cursor)
	}
}

func TestFindAmongAcceptContext(t *testing.T) {
	type counter struct{ calls int }
	count := func(env *snowball.Env, ctx interface{}) bool {
		c := ctx.(*counter)
		c.calls++
		if env.Cursor != 3 {
			return false
		}
		// Accept actions may edit the buffer.
		env.MarkSlice(0, 1)
		return env.SliceFrom("A")
	}
	table := []snowball.Among{
		{Str: "abc", Backtrack: -1, Result: 7, Accept: count},
	}
	ctx := &counter{}
	env := snowball.NewEnv("abcd")

	if got := env.FindAmong(table, ctx); got != 7 {
		t.Errorf("FindAmong = %d, want 7", got)
	}
	if ctx.calls != 1 {
		t.Errorf("accept called %d times, want 1", ctx.calls)
	}
	if env.Current() != "Abcd" {
		t.Errorf("text = %q, want %q", env.Current(), "Abcd")
	}
}

func TestValidateAmong(t *testing.T) {
	good := []snowball.Among{
		{Str: "a", Backtrack: -1, Result: 1},
		{Str: "ab", Backtrack: 0, Result: 2},
	}
	if err := snowball.ValidateAmong(good); err != nil {
		t.Errorf("ValidateAmong(good) = %v", err)
	}

	tests := []struct {
		name  string
		table []snowball.Among
	}{
		{"out of range", []snowball.Among{{Str: "a", Backtrack: 3}}},
		{"below -1", []snowball.Among{{Str: "a", Backtrack: -2}}},
		{"not a prefix", []snowball.Among{{Str: "b", Backtrack: -1}, {Str: "cd", Backtrack: 0}}},
		{"self", []snowball.Among{{Str: "a", Backtrack: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := snowball.ValidateAmong(tt.table); err == nil {
				t.Error("ValidateAmong accepted a broken table")
			}
		})
	}
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// randomTable builds a table the way the Snowball compiler lays them out:
// sorted, with each row linked to its longest proper prefix (suffix when
// backward) present in the table.
func randomTable(rng *rand.Rand, backward bool) ([]snowball.Among, []int) {
	seen := map[string]bool{}
	var strs []string
	for n := rng.Intn(12) + 1; len(strs) < n; {
		b := make([]byte, rng.Intn(5))
		for i := range b {
			b[i] = "abc"[rng.Intn(3)]
		}
		if s := string(b); !seen[s] {
			seen[s] = true
			strs = append(strs, s)
		}
	}
	key := func(s string) string { return s }
	has := strings.HasPrefix
	if backward {
		key = reverse
		has = strings.HasSuffix
	}
	sort.Slice(strs, func(i, j int) bool { return key(strs[i]) < key(strs[j]) })

	table := make([]snowball.Among, len(strs))
	mode := make([]int, len(strs))
	for i, s := range strs {
		table[i] = snowball.Among{Str: s, Backtrack: -1, Result: i + 1}
		best := -1
		for j, p := range strs {
			if len(p) < len(s) && has(s, p) && (best < 0 || len(p) > len(strs[best])) {
				best = j
			}
		}
		table[i].Backtrack = best

		mode[i] = rng.Intn(3)
		switch mode[i] {
		case 1:
			table[i].Accept = func(env *snowball.Env, ctx interface{}) bool {
				env.Cursor = env.LimitBackward
				return true
			}
		case 2:
			table[i].Accept = func(env *snowball.Env, ctx interface{}) bool {
				env.Cursor = env.Limit
				return false
			}
		}
	}
	return table, mode
}

func TestFindAmongMatchesChainWalker(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 0; n < 2000; n++ {
		backward := n%2 == 1
		table, mode := randomTable(rng, backward)
		if backward {
			if err := snowball.ValidateAmongB(table); err != nil {
				t.Fatalf("generated table invalid: %v", err)
			}
		} else if err := snowball.ValidateAmong(table); err != nil {
			t.Fatalf("generated table invalid: %v", err)
		}

		b := make([]byte, rng.Intn(7))
		for i := range b {
			b[i] = "abcd"[rng.Intn(4)]
		}
		word := string(b)
		env := snowball.NewEnv(word)
		start := rng.Intn(len(word) + 1)
		env.Cursor = start
		if backward {
			env.LimitBackward = rng.Intn(start + 1)
		} else {
			env.Limit = start + rng.Intn(len(word)-start+1)
		}

		// Reference: every matching row, longest first; the first one
		// whose accept action approves wins.
		var region string
		if backward {
			region = word[env.LimitBackward:start]
		} else {
			region = word[start:env.Limit]
		}
		var matches []int
		for i, w := range table {
			if (!backward && strings.HasPrefix(region, w.Str)) || (backward && strings.HasSuffix(region, w.Str)) {
				matches = append(matches, i)
			}
		}
		sort.Slice(matches, func(a, b int) bool { return len(table[matches[a]].Str) > len(table[matches[b]].Str) })

		want, wantCursor := 0, start
		for _, i := range matches {
			if backward {
				wantCursor = start - len(table[i].Str)
			} else {
				wantCursor = start + len(table[i].Str)
			}
			if mode[i] != 2 {
				want = table[i].Result
				break
			}
		}

		var got int
		if backward {
			got = env.FindAmongB(table, nil)
		} else {
			got = env.FindAmong(table, nil)
		}
		if got != want || env.Cursor != wantCursor {
			t.Fatalf("backward=%v table=%v word=%q cursor=%d: got (%d, cursor %d), want (%d, cursor %d)",
				backward, table, word, start, got, env.Cursor, want, wantCursor)
		}
	}
}
