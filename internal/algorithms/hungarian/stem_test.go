package hungarian

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
		{"forrásból", "forrás"},
		{"csatolmányokkal", "csatolmány"},
		{"linkekkel", "link"},
		{"hálózatán", "hálózat"},
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
	for _, word := range []string{"forrásból", "csatolmányokkal", "linkekkel", "hálózatán"} {
		expected, err := ksnowball.Stem(word, "hungarian", true)
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
	if err := snowballRuntime.ValidateAmong(A_0); err != nil {
		t.Errorf("A_0: %v", err)
	}
	for i, table := range [][]snowballRuntime.Among{A_1, A_2, A_3, A_4, A_5, A_6, A_7, A_8, A_9, A_10, A_11} {
		if err := snowballRuntime.ValidateAmongB(table); err != nil {
			t.Errorf("A_%d: %v", i+1, err)
		}
	}
	for _, g := range []*snowballRuntime.Grouping{G_v} {
		if err := g.Validate(); err != nil {
			t.Error(err)
		}
	}
}
