package merge

import (
	"github.com/nihei9/smerge/matching"
	"github.com/nihei9/smerge/model"
)

// unorderedMerge merges two same-kind non-terminals whose children form a
// set. Phase one walks left's children up to the block-end delimiter; phase
// two walks right's children that phase one did not already consume, which
// also keeps right-side positioning for the closing delimiter. The output
// holds left-added nodes in left's order followed by right-added nodes in
// right's order.
func unorderedMerge(
	left, right *model.NonTerminal,
	baseLeft, baseRight, leftRight *matching.Matchings,
) (MergedCSTNode, error) {
	if left.Kind() != right.Kind() {
		return nil, &DifferentKindsError{KindA: left.Kind(), KindB: right.Kind()}
	}

	var children []MergedCSTNode
	processed := map[string]struct{}{}

	for _, leftChild := range left.Children {
		if terminal, ok := leftChild.(*model.Terminal); ok && terminal.IsBlockEndDelimiter {
			break
		}

		matchingBaseLeft, hasBaseLeft := baseLeft.MatchingFor(leftChild)
		matchingLeftRight, hasLeftRight := leftRight.MatchingFor(leftChild)

		switch {
		case !hasBaseLeft && !hasLeftRight:
			// Added only by left.
			children = append(children, fromCST(leftChild))
			processed[leftChild.ID()] = struct{}{}
		case !hasBaseLeft && hasLeftRight:
			// Added by both sides: unify.
			merged, err := Merge(leftChild, leftChild, matchingLeftRight.MatchingNode, baseLeft, baseRight, leftRight)
			if err != nil {
				return nil, err
			}
			children = append(children, merged)
			processed[leftChild.ID()] = struct{}{}
			processed[matchingLeftRight.MatchingNode.ID()] = struct{}{}
		case hasBaseLeft && !hasLeftRight:
			// Removed by right; a left-side change makes it a conflict.
			if !matchingBaseLeft.IsPerfectMatch {
				children = append(children, &Conflict{Left: fromCST(leftChild)})
			}
			processed[leftChild.ID()] = struct{}{}
		default:
			// Present on all three sides.
			merged, err := Merge(leftChild, leftChild, matchingLeftRight.MatchingNode, baseLeft, baseRight, leftRight)
			if err != nil {
				return nil, err
			}
			children = append(children, merged)
			processed[leftChild.ID()] = struct{}{}
			processed[matchingLeftRight.MatchingNode.ID()] = struct{}{}
		}
	}

	for _, rightChild := range right.Children {
		if _, done := processed[rightChild.ID()]; done {
			continue
		}

		matchingBaseRight, hasBaseRight := baseRight.MatchingFor(rightChild)
		matchingLeftRight, hasLeftRight := leftRight.MatchingFor(rightChild)

		switch {
		case !hasBaseRight && !hasLeftRight:
			// Added only by right.
			children = append(children, fromCST(rightChild))
		case !hasBaseRight && hasLeftRight:
			merged, err := Merge(rightChild, matchingLeftRight.MatchingNode, rightChild, baseLeft, baseRight, leftRight)
			if err != nil {
				return nil, err
			}
			children = append(children, merged)
		case hasBaseRight && !hasLeftRight:
			// Removed by left; a right-side change makes it a conflict.
			if !matchingBaseRight.IsPerfectMatch {
				children = append(children, &Conflict{Right: fromCST(rightChild)})
			}
		default:
			merged, err := Merge(rightChild, matchingLeftRight.MatchingNode, rightChild, baseLeft, baseRight, leftRight)
			if err != nil {
				return nil, err
			}
			children = append(children, merged)
		}
	}

	return &MergedNonTerminal{Kind: left.Kind(), Children: children}, nil
}
