package dutch

import (
	"testing"

	snowballRuntime "github.com/deidaraiorek/deistem/internal/snowball"
)

func TestStem(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"boeken", "boek"},
		{"katten", "kat"},
		{"lichamelijk", "licham"},
		{"bomen", "bom"},
		{"brood", "brod"},
		{"groot", "grot"},
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

func TestTables(t *testing.T) {
	for i, table := range [][]snowballRuntime.Among{A_0, A_1} {
		if err := snowballRuntime.ValidateAmong(table); err != nil {
			t.Errorf("A_%d: %v", i, err)
		}
	}
	for i, table := range [][]snowballRuntime.Among{A_2, A_3, A_4, A_5} {
		if err := snowballRuntime.ValidateAmongB(table); err != nil {
			t.Errorf("A_%d: %v", i+2, err)
		}
	}
	for _, g := range []*snowballRuntime.Grouping{G_v, G_v_I, G_v_j} {
		if err := g.Validate(); err != nil {
			t.Error(err)
		}
	}
}
