package norwegian

import (
	"testing"

	ksnowball "github.com/kljensen/snowball"

	snowballRuntime "github.com/deidaraiorek/deistem/internal/snowball"
)

func TestStem(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hestene", "hest"},
		{"bilene", "bil"},
		{"gutter", "gutt"},
		{"skolen", "skol"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			env := snowballRuntime.NewEnv(tt.input)
			Stem(env)
			if result := env.AssignTo(); result != tt.expected {
				t.Errorf("Stem(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestStemMatchesKljensen(t *testing.T) {
	for _, word := range []string{"hestene", "bilene", "husene", "gutter", "jentene", "boken", "dager", "skolen"} {
		expected, err := ksnowball.Stem(word, "norwegian", true)
		if err != nil {
			t.Fatalf("ksnowball.Stem(%q) failed: %v", word, err)
		}

		env := snowballRuntime.NewEnv(word)
		Stem(env)
		if result := env.AssignTo(); result != expected {
			t.Errorf("Stem(%q) = %q, kljensen/snowball gives %q", word, result, expected)
		}
	}
}

func TestTables(t *testing.T) {
	for i, table := range [][]snowballRuntime.Among{A_0, A_1, A_2} {
		if err := snowballRuntime.ValidateAmongB(table); err != nil {
			t.Errorf("A_%d: %v", i, err)
		}
	}
	for _, g := range []*snowballRuntime.Grouping{G_v, G_s_ending} {
		if err := g.Validate(); err != nil {
			t.Error(err)
		}
	}
}
