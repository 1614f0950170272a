package snowball_test

import (
	"math/rand"
	"testing"
	"unicode/utf8"

	"github.com/deidaraiorek/deistem/internal/snowball"
)

func TestSliceFrom(t *testing.T) {
	tests := []struct {
		name       string
		repl       string
		cursor     int
		wantText   string
		wantLimit  int
		wantCursor int
	}{
		{"same length", "XY", 4, "aXYdef", 6, 4},
		{"shorter moves cursor after ket", "X", 4, "aXdef", 5, 3},
		{"longer moves cursor after ket", "XYZ", 3, "aXYZdef", 7, 4},
		{"cursor inside collapses to bra", "", 2, "adef", 4, 1},
		{"cursor at bra stays", "XYZW", 1, "aXYZWdef", 8, 1},
		{"cursor before bra stays", "", 0, "adef", 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := snowball.NewEnv("abcdef")
			env.MarkSlice(1, 3)
			env.Cursor = tt.cursor

			if !env.SliceFrom(tt.repl) {
				t.Fatalf("SliceFrom(%q) failed", tt.repl)
			}
			if env.Current() != tt.wantText {
				t.Errorf("text = %q, want %q", env.Current(), tt.wantText)
			}
			if env.Limit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", env.Limit, tt.wantLimit)
			}
			if env.Cursor != tt.wantCursor {
				t.Errorf("cursor = %d, want %d", env.Cursor, tt.wantCursor)
			}
		})
	}
}

func TestSliceDel(t *testing.T) {
	env := snowball.NewEnv("hoppande")
	env.Cursor = env.Limit
	env.MarkSlice(4, 8)

	if !env.SliceDel() {
		t.Fatal("SliceDel failed")
	}
	if got := env.AssignTo(); got != "hopp" {
		t.Errorf("AssignTo() = %q, want %q", got, "hopp")
	}
	if env.Cursor != 4 {
		t.Errorf("cursor = %d, want 4", env.Cursor)
	}
}

func TestSliceFromInvalidBracket(t *testing.T) {
	env := snowball.NewEnv("abcdef")
	env.MarkSlice(4, 2)

	if env.SliceFrom("x") {
		t.Error("SliceFrom succeeded with bra > ket")
	}
	if env.SliceTo() != "" {
		t.Errorf("SliceTo() = %q with bra > ket, want empty", env.SliceTo())
	}

	env.MarkSlice(2, 5)
	env.Limit = 4
	if env.SliceDel() {
		t.Error("SliceDel succeeded with ket > limit")
	}
	if env.Current() != "abcdef" {
		t.Errorf("failed edit changed text to %q", env.Current())
	}
}

func TestReplaceSPanicsOutsideBuffer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ReplaceS did not panic on a span past the buffer")
		}
	}()
	env := snowball.NewEnv("abc")
	env.ReplaceS(1, 9, "x")
}

func TestIdentityReplaceIsNoop(t *testing.T) {
	for cursor := 0; cursor <= 6; cursor++ {
		env := snowball.NewEnv("abcdef")
		env.MarkSlice(1, 4)
		env.Cursor = cursor

		env.SliceFrom(env.SliceTo())

		if env.Current() != "abcdef" || env.Limit != 6 || env.Cursor != cursor {
			t.Errorf("cursor %d: identity replace left text %q limit %d cursor %d",
				cursor, env.Current(), env.Limit, env.Cursor)
		}
	}
}

func TestInsert(t *testing.T) {
	env := snowball.NewEnv("hopping")
	env.MarkSlice(3, 5)
	env.Cursor = 7

	env.Insert(2, 2, "XX")

	if env.Current() != "hoXXpping" {
		t.Errorf("text = %q, want %q", env.Current(), "hoXXpping")
	}
	if env.Bra != 5 || env.Ket != 7 {
		t.Errorf("bracket = [%d, %d), want [5, 7)", env.Bra, env.Ket)
	}
	if env.Cursor != 9 || env.Limit != 9 {
		t.Errorf("cursor/limit = %d/%d, want 9/9", env.Cursor, env.Limit)
	}
	if got := env.SliceTo(); got != "pi" {
		t.Errorf("SliceTo() = %q, want %q", got, "pi")
	}

	env.Insert(8, 8, "e")
	if env.Bra != 5 || env.Ket != 7 {
		t.Errorf("insert after bracket moved it to [%d, %d)", env.Bra, env.Ket)
	}
}

func TestAssignToStopsAtLimit(t *testing.T) {
	env := snowball.NewEnv("stemmed")
	env.Limit = 4
	if got := env.AssignTo(); got != "stem" {
		t.Errorf("AssignTo() = %q, want %q", got, "stem")
	}
}

func boundaries(s string) []int {
	var out []int
	for i := range s {
		out = append(out, i)
	}
	return append(out, len(s))
}

func TestEditsKeepInvariants(t *testing.T) {
	pieces := []string{"", "a", "é", "ß", "xyz", "€", "ö"}
	rng := rand.New(rand.NewSource(11))

	for n := 0; n < 300; n++ {
		env := snowball.NewEnv("häst€ög")
		for step := 0; step < 12; step++ {
			b := boundaries(env.Current())
			var inside []int
			for _, pos := range b {
				if pos >= env.LimitBackward && pos <= env.Limit {
					inside = append(inside, pos)
				}
			}
			bra := inside[rng.Intn(len(inside))]
			ket := inside[rng.Intn(len(inside))]
			if bra > ket {
				bra, ket = ket, bra
			}
			env.Cursor = inside[rng.Intn(len(inside))]
			s := pieces[rng.Intn(len(pieces))]

			if rng.Intn(2) == 0 {
				env.MarkSlice(bra, ket)
				env.SliceFrom(s)
			} else {
				env.Insert(bra, ket, s)
			}

			text := env.Current()
			if !(0 <= env.LimitBackward && env.LimitBackward <= env.Cursor &&
				env.Cursor <= env.Limit && env.Limit <= len(text)) {
				t.Fatalf("offsets out of order: lb %d cursor %d limit %d len %d",
					env.LimitBackward, env.Cursor, env.Limit, len(text))
			}
			if !utf8.ValidString(text) {
				t.Fatalf("edit produced invalid text %q", text)
			}
			for _, pos := range []int{env.Cursor, env.Limit, env.LimitBackward} {
				if pos < len(text) && !utf8.RuneStart(text[pos]) {
					t.Fatalf("offset %d splits a character in %q", pos, text)
				}
			}
		}
	}
}
