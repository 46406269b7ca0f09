// Package matching aligns two CSTs, producing a symmetric mapping from node
// pairs to scores. Nodes with ordered children are aligned by an edit-
// distance-style dynamic program; nodes whose children form a set are aligned
// either through their unique labels or by solving an assignment problem.
package matching

import "github.com/nihei9/smerge/model"

// CalculateMatchings aligns two subtrees and returns the root pair's entry
// together with the matchings of the descendant pairs the chosen alignment
// kept; pairs scored along the way but not selected are dropped. Mixed shapes
// or mismatched kinds yield an empty Matchings: structural misalignment is not
// an error, it is a zero-score alignment.
func CalculateMatchings(left, right model.CSTNode, config *Configuration) *Matchings {
	switch leftNode := left.(type) {
	case *model.Terminal:
		rightNode, ok := right.(*model.Terminal)
		if !ok {
			return NewMatchings()
		}
		if leftNode.Kind() != rightNode.Kind() || leftNode.Value != rightNode.Value {
			return NewMatchings()
		}
		return FromSingle(left, right, NewMatchingEntry(left, right, 1))
	case *model.NonTerminal:
		rightNode, ok := right.(*model.NonTerminal)
		if !ok || leftNode.Kind() != rightNode.Kind() {
			return NewMatchings()
		}
		if leftNode.AreChildrenUnordered && rightNode.AreChildrenUnordered {
			return unorderedTreeMatching(leftNode, rightNode, config)
		}
		return orderedTreeMatching(leftNode, rightNode, config)
	default:
		return NewMatchings()
	}
}
