package merge

import (
	"reflect"
	"testing"

	"github.com/nihei9/smerge/model"
)

// An ordered body of opaque member stubs: the declaration sequence is walked
// positionally.
func makeOrderedBody(members ...string) model.CSTNode {
	children := make([]model.CSTNode, 0, len(members))
	for _, member := range members {
		children = append(children, model.NewTerminal("member", member))
	}
	return model.NewNonTerminal("interface_body", children...)
}

func mergedMember(member string) MergedCSTNode {
	return &MergedTerminal{Kind: "member", Value: member}
}

func TestAdditiveNonOverlappingEditsMergeCleanly(t *testing.T) {
	base := makeOrderedBody("void a();")
	left := makeOrderedBody("void a();", "void b();")
	right := makeOrderedBody("void c();", "void a();")

	// A right-side addition lands ahead of its matched peer; a left-side
	// addition follows its own.
	want := &MergedNonTerminal{Kind: "interface_body", Children: []MergedCSTNode{
		mergedMember("void c();"),
		mergedMember("void a();"),
		mergedMember("void b();"),
	}}

	merged := mergeTrees(t, base, left, right)
	if !reflect.DeepEqual(want, merged) {
		t.Fatalf("unexpected merge;\nwant: %v\ngot:  %v", want, merged)
	}
	if merged.HasConflict() {
		t.Fatalf("additive non-overlapping edits must not conflict")
	}
}

func TestDeletionAgainstModificationConflicts(t *testing.T) {
	makeSubtree := func(value string) model.CSTNode {
		return model.NewNonTerminal("subtree",
			model.NewTerminal("value", value),
		)
	}
	base := model.NewNonTerminal("parent",
		makeSubtree("value_b"),
		model.NewTerminal("value", "value_a"),
	)
	left := model.NewNonTerminal("parent",
		model.NewTerminal("value", "value_a"),
	)
	right := model.NewNonTerminal("parent",
		makeSubtree("value_c"),
		model.NewTerminal("value", "value_a"),
	)

	want := &MergedNonTerminal{Kind: "parent", Children: []MergedCSTNode{
		&Conflict{Right: &MergedNonTerminal{Kind: "subtree", Children: []MergedCSTNode{
			&MergedTerminal{Kind: "value", Value: "value_c"},
		}}},
		&MergedTerminal{Kind: "value", Value: "value_a"},
	}}

	assertMergeIsCorrectAndCommutative(t, base, left, right, want)

	merged := mergeTrees(t, base, left, right)
	if !merged.HasConflict() {
		t.Fatalf("deleting a subtree the other side modified must conflict")
	}
}

func TestDeletionOfAnUntouchedSubtreeWins(t *testing.T) {
	makeSubtree := func(value string) model.CSTNode {
		return model.NewNonTerminal("subtree",
			model.NewTerminal("value", value),
		)
	}
	base := model.NewNonTerminal("parent",
		makeSubtree("value_b"),
		model.NewTerminal("value", "value_a"),
	)
	left := model.NewNonTerminal("parent",
		model.NewTerminal("value", "value_a"),
	)
	right := model.NewNonTerminal("parent",
		makeSubtree("value_b"),
		model.NewTerminal("value", "value_a"),
	)

	want := &MergedNonTerminal{Kind: "parent", Children: []MergedCSTNode{
		&MergedTerminal{Kind: "value", Value: "value_a"},
	}}

	assertMergeIsCorrectAndCommutative(t, base, left, right, want)
}

func TestUnrelatedAdditionsAtTheSamePositionConflict(t *testing.T) {
	base := makeOrderedBody()
	left := makeOrderedBody("void b();")
	right := makeOrderedBody("void c();")

	want := &MergedNonTerminal{Kind: "interface_body", Children: []MergedCSTNode{
		&Conflict{
			Left:  mergedMember("void b();"),
			Right: mergedMember("void c();"),
		},
	}}

	assertMergeIsCorrectAndCommutative(t, base, left, right, want)
}

func TestTrailingAdditionsAreAppendedVerbatim(t *testing.T) {
	base := makeOrderedBody("void a();")
	left := makeOrderedBody("void a();", "void b();", "void d();")
	right := makeOrderedBody("void a();")

	want := &MergedNonTerminal{Kind: "interface_body", Children: []MergedCSTNode{
		mergedMember("void a();"),
		mergedMember("void b();"),
		mergedMember("void d();"),
	}}

	assertMergeIsCorrectAndCommutative(t, base, left, right, want)
}
