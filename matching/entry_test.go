package matching

import (
	"testing"

	"github.com/nihei9/smerge/model"
)

func TestPerfectMatchEquivalence(t *testing.T) {
	tests := []struct {
		caption string
		left    model.CSTNode
		right   model.CSTNode
		score   int
		want    bool
	}{
		{
			caption: "terminals covered by the score are perfect",
			left:    model.NewTerminal("kind", "value"),
			right:   model.NewTerminal("kind", "value"),
			score:   1,
			want:    true,
		},
		{
			caption: "a partial cover is not perfect",
			left:    model.NewNonTerminal("kind", model.NewTerminal("a", "a")),
			right:   model.NewNonTerminal("kind", model.NewTerminal("b", "b")),
			score:   1,
			want:    false,
		},
		{
			caption: "a full cover of equal-size trees is perfect",
			left:    model.NewNonTerminal("kind", model.NewTerminal("a", "a")),
			right:   model.NewNonTerminal("kind", model.NewTerminal("a", "a")),
			score:   2,
			want:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			entry := NewMatchingEntry(tt.left, tt.right, tt.score)
			if entry.IsPerfectMatch != tt.want {
				t.Fatalf("unexpected perfection; want: %v, got: %v", tt.want, entry.IsPerfectMatch)
			}
			if got := 2*entry.Score == tt.left.TreeSize()+tt.right.TreeSize(); got != entry.IsPerfectMatch {
				t.Fatalf("the equivalence must hold by construction")
			}
		})
	}
}
