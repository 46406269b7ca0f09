// Package merge produces a merged tree from three CSTs and their pairwise
// matchings, embedding Conflict nodes where automatic resolution fails.
package merge

import (
	"github.com/nihei9/smerge/matching"
	"github.com/nihei9/smerge/model"
)

// Merge three-way merges base, left and right. The three matchings are the
// pairwise alignments base-left, base-right and left-right. Nodes with
// unordered children on both sides merge as sets; everything else merges
// positionally; terminals merge textually.
func Merge(
	base, left, right model.CSTNode,
	baseLeft, baseRight, leftRight *matching.Matchings,
) (MergedCSTNode, error) {
	switch baseNode := base.(type) {
	case *model.Terminal:
		leftNode, okLeft := left.(*model.Terminal)
		rightNode, okRight := right.(*model.Terminal)
		if !okLeft || !okRight {
			return nil, ErrMergingTerminalWithNonTerminal
		}
		return mergeTerminals(baseNode, leftNode, rightNode), nil
	case *model.NonTerminal:
		leftNode, okLeft := left.(*model.NonTerminal)
		rightNode, okRight := right.(*model.NonTerminal)
		if !okLeft || !okRight {
			return nil, ErrMergingTerminalWithNonTerminal
		}
		if leftNode.AreChildrenUnordered && rightNode.AreChildrenUnordered {
			return unorderedMerge(leftNode, rightNode, baseLeft, baseRight, leftRight)
		}
		return orderedMerge(baseNode, leftNode, rightNode, baseLeft, baseRight, leftRight)
	default:
		return nil, ErrMergingTerminalWithNonTerminal
	}
}
