package snowball_test

import (
	"math/rand"
	"testing"

	"github.com/deidaraiorek/deistem/internal/snowball"
)

var vowels = snowball.NewGrouping("aeiouyåäö")

func TestGroupingContains(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'a', true},
		{'y', true},
		{'ö', true},
		{'b', false},
		{'A', false},
		{'ÿ', false},
		{'€', false},
	}

	for _, tt := range tests {
		if got := vowels.Contains(tt.r); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestGroupingMatchesPackedTable(t *testing.T) {
	// The vowel table of the Swedish program: a e i o u y ä å ö.
	g := &snowball.Grouping{
		Bits: []byte{17, 65, 16, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 24, 0, 32},
		Min:  97,
		Max:  246,
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	for r := rune(90); r < 260; r++ {
		if g.Contains(r) != vowels.Contains(r) {
			t.Errorf("Contains(%q) differs from NewGrouping", r)
		}
	}
}

func TestGroupingValidate(t *testing.T) {
	short := &snowball.Grouping{Bits: []byte{1}, Min: 97, Max: 121}
	if err := short.Validate(); err == nil {
		t.Error("Validate accepted a bit array that is too short")
	}
	if err := vowels.Validate(); err != nil {
		t.Errorf("Validate() = %v for NewGrouping result", err)
	}
}

func TestInGrouping(t *testing.T) {
	env := snowball.NewEnv("öka")

	if !env.InGrouping(vowels) {
		t.Fatal("InGrouping failed on 'ö'")
	}
	if env.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", env.Cursor)
	}
	if env.InGrouping(vowels) {
		t.Error("InGrouping matched 'k'")
	}
	if env.Cursor != 2 {
		t.Errorf("failed InGrouping moved cursor to %d", env.Cursor)
	}
	if !env.OutGrouping(vowels) {
		t.Error("OutGrouping failed on 'k'")
	}
	if !env.InGrouping(vowels) {
		t.Error("InGrouping failed on 'a'")
	}
	if env.InGrouping(vowels) || env.OutGrouping(vowels) {
		t.Error("grouping test succeeded at the limit")
	}
	if env.Cursor != 4 {
		t.Errorf("cursor = %d, want 4", env.Cursor)
	}
}

func TestInGroupingBackward(t *testing.T) {
	env := snowball.NewEnv("taö")
	env.Cursor = env.Limit

	if !env.InGroupingB(vowels) {
		t.Fatal("InGroupingB failed on 'ö'")
	}
	if env.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", env.Cursor)
	}
	env.LimitBackward = 1
	if !env.InGroupingB(vowels) {
		t.Error("InGroupingB failed on 'a'")
	}
	if env.InGroupingB(vowels) || env.OutGroupingB(vowels) {
		t.Error("grouping test succeeded at the backward limit")
	}
	if env.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", env.Cursor)
	}
}

func TestOutGroupingOutsideRange(t *testing.T) {
	env := snowball.NewEnv("Z€")

	if !env.OutGrouping(vowels) {
		t.Error("OutGrouping failed below the grouping range")
	}
	if !env.OutGrouping(vowels) {
		t.Error("OutGrouping failed above the grouping range")
	}
	if env.Cursor != len("Z€") {
		t.Errorf("cursor = %d, want %d", env.Cursor, len("Z€"))
	}
	if !env.OutGroupingB(vowels) {
		t.Error("OutGroupingB failed above the grouping range")
	}
	if env.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", env.Cursor)
	}
}

func TestInGroupingRoundTrip(t *testing.T) {
	alphabet := []rune("abcdeiouyåäöxz")
	rng := rand.New(rand.NewSource(7))

	for n := 0; n < 500; n++ {
		word := make([]rune, rng.Intn(8)+1)
		for i := range word {
			word[i] = alphabet[rng.Intn(len(alphabet))]
		}
		env := snowball.NewEnv(string(word))
		for env.Cursor < env.Limit {
			start := env.Cursor
			if env.InGrouping(vowels) {
				if !env.InGroupingB(vowels) {
					t.Fatalf("%q: InGroupingB failed after InGrouping from %d", string(word), start)
				}
				if env.Cursor != start {
					t.Fatalf("%q: round trip from %d ended at %d", string(word), start, env.Cursor)
				}
			}
			env.NextChar()
		}
	}
}
