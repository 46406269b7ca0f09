package merge

import (
	"errors"
	"reflect"
	"testing"

	"github.com/nihei9/smerge/model"
)

// Subtrees with per-kind identity: the root kind matches across revisions
// even when the inner value changed, which is how a "changed" (matched but
// imperfect) base alignment arises.
func makeKindedSubtree(kind, value string) model.CSTNode {
	return model.NewNonTerminal(kind,
		model.NewTerminal("value", value),
	)
}

func mergedKindedSubtree(kind, value string) MergedCSTNode {
	return &MergedNonTerminal{Kind: kind, Children: []MergedCSTNode{
		&MergedTerminal{Kind: "value", Value: value},
	}}
}

func TestBothSidesDeletedEachOthersPeer(t *testing.T) {
	tests := []struct {
		caption string
		left    model.CSTNode
		right   model.CSTNode
		want    []MergedCSTNode
	}{
		{
			caption: "both peers untouched: both deletions win",
			left:    makeKindedSubtree("x_subtree", "value_a"),
			right:   makeKindedSubtree("y_subtree", "value_b"),
			want:    nil,
		},
		{
			caption: "the right-kept peer changed: one-sided conflict",
			left:    makeKindedSubtree("x_subtree", "value_a"),
			right:   makeKindedSubtree("y_subtree", "value_b2"),
			want: []MergedCSTNode{
				&Conflict{Right: mergedKindedSubtree("y_subtree", "value_b2")},
			},
		},
		{
			caption: "the left-kept peer changed: one-sided conflict",
			left:    makeKindedSubtree("x_subtree", "value_a2"),
			right:   makeKindedSubtree("y_subtree", "value_b"),
			want: []MergedCSTNode{
				&Conflict{Left: mergedKindedSubtree("x_subtree", "value_a2")},
			},
		},
		{
			caption: "both kept peers changed: two-sided conflict",
			left:    makeKindedSubtree("x_subtree", "value_a2"),
			right:   makeKindedSubtree("y_subtree", "value_b2"),
			want: []MergedCSTNode{
				&Conflict{
					Left:  mergedKindedSubtree("x_subtree", "value_a2"),
					Right: mergedKindedSubtree("y_subtree", "value_b2"),
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			base := model.NewNonTerminal("parent",
				makeKindedSubtree("x_subtree", "value_a"),
				makeKindedSubtree("y_subtree", "value_b"),
			)
			left := model.NewNonTerminal("parent", tt.left)
			right := model.NewNonTerminal("parent", tt.right)

			want := &MergedNonTerminal{Kind: "parent", Children: tt.want}
			assertMergeIsCorrectAndCommutative(t, base, left, right, want)
		})
	}
}

func TestAdditionNextToADeletion(t *testing.T) {
	tests := []struct {
		caption string
		right   model.CSTNode
		want    []MergedCSTNode
	}{
		{
			caption: "the deleted peer was untouched on the right",
			right:   makeKindedSubtree("y_subtree", "value_b"),
			want: []MergedCSTNode{
				mergedKindedSubtree("x_subtree", "value_a"),
			},
		},
		{
			caption: "the deleted peer was changed on the right",
			right:   makeKindedSubtree("y_subtree", "value_b2"),
			want: []MergedCSTNode{
				mergedKindedSubtree("x_subtree", "value_a"),
				&Conflict{Right: mergedKindedSubtree("y_subtree", "value_b2")},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			// The left side deleted y_subtree and added x_subtree in its
			// place; the right side kept y_subtree.
			base := model.NewNonTerminal("parent",
				makeKindedSubtree("y_subtree", "value_b"),
			)
			left := model.NewNonTerminal("parent",
				makeKindedSubtree("x_subtree", "value_a"),
			)
			right := model.NewNonTerminal("parent", tt.right)

			want := &MergedNonTerminal{Kind: "parent", Children: tt.want}
			merged := mergeTrees(t, base, left, right)
			if !reflect.DeepEqual(want, merged) {
				t.Fatalf("unexpected merge;\nwant: %v\ngot:  %v", want, merged)
			}
		})
	}
}

func TestInvalidMatchingConfigurationIsReported(t *testing.T) {
	// A left-right matching that pairs the cursors while the bidirectional
	// signal is contradicted cannot be produced by the matcher; forging one
	// must make the merge fail rather than mis-merge.
	base := model.NewNonTerminal("parent", model.NewTerminal("value", "value_a"))
	left := model.NewNonTerminal("parent", model.NewTerminal("value", "value_a"))
	right := model.NewNonTerminal("parent", model.NewTerminal("value", "value_a"))

	forged := calculate(left, right)
	// Base matchings that know the left child but not the right one, paired
	// with a full left-right matching, form the impossible (T, ✓, ✓, ✓, –).
	baseLeft := calculate(base, left)
	baseRight := calculate(base, base)

	_, err := Merge(base, left, right, baseLeft, baseRight, forged)
	var configErr *InvalidMatchingConfigurationError
	if !errors.As(err, &configErr) {
		t.Fatalf("unexpected error; want an InvalidMatchingConfigurationError, got: %v", err)
	}
}
