package merge

import (
	"github.com/nihei9/smerge/matching"
	"github.com/nihei9/smerge/model"
)

// orderedMerge walks the left and right child sequences with two cursors and
// decides each step from five signals: whether both cursors have partners in
// the left-right matchings, whether each cursor has any partner there, and
// whether each cursor has a partner in its base matchings. Tuples outside the
// enumerated set mean a matching invariant was broken.
func orderedMerge(
	base, left, right *model.NonTerminal,
	baseLeft, baseRight, leftRight *matching.Matchings,
) (MergedCSTNode, error) {
	var children []MergedCSTNode

	childrenLeft := left.Children
	childrenRight := right.Children
	i, j := 0, 0

	for i < len(childrenLeft) && j < len(childrenRight) {
		curLeft := childrenLeft[i]
		curRight := childrenRight[j]

		matchingBaseLeft, hasBaseLeft := baseLeft.MatchingFor(curLeft)
		matchingBaseRight, hasBaseRight := baseRight.MatchingFor(curRight)
		_, leftInRight := leftRight.MatchingFor(curLeft)
		_, rightInLeft := leftRight.MatchingFor(curRight)
		bidirectional := leftRight.HasBidirectionalMatching(curLeft, curRight)

		switch {
		case bidirectional && leftInRight && hasBaseLeft && rightInLeft && hasBaseRight,
			bidirectional && leftInRight && !hasBaseLeft && rightInLeft && !hasBaseRight:
			// Present on both sides, or added identically by both: unify.
			merged, err := Merge(curLeft, curLeft, curRight, baseLeft, baseRight, leftRight)
			if err != nil {
				return nil, err
			}
			children = append(children, merged)
			i++
			j++
		case !bidirectional && leftInRight && hasBaseLeft && !rightInLeft && hasBaseRight,
			!bidirectional && leftInRight && !hasBaseLeft && !rightInLeft && hasBaseRight:
			// The right cursor's node was deleted on the left. Untouched on
			// the right: drop it silently; changed on the right: conflict.
			if !matchingBaseRight.IsPerfectMatch {
				children = append(children, &Conflict{Right: fromCST(curRight)})
			}
			j++
		case !bidirectional && leftInRight && hasBaseLeft && !rightInLeft && !hasBaseRight,
			!bidirectional && leftInRight && !hasBaseLeft && !rightInLeft && !hasBaseRight:
			// The right side added a node ahead of the left cursor's partner.
			children = append(children, fromCST(curRight))
			j++
		case !bidirectional && !leftInRight && hasBaseLeft && rightInLeft && hasBaseRight,
			!bidirectional && !leftInRight && hasBaseLeft && rightInLeft && !hasBaseRight:
			// Mirror: the left cursor's node was deleted on the right.
			if !matchingBaseLeft.IsPerfectMatch {
				children = append(children, &Conflict{Left: fromCST(curLeft)})
			}
			i++
		case !bidirectional && !leftInRight && hasBaseLeft && !rightInLeft && hasBaseRight:
			// Both cursors lost their peers; conflict per changed side.
			switch {
			case matchingBaseLeft.IsPerfectMatch && matchingBaseRight.IsPerfectMatch:
			case matchingBaseLeft.IsPerfectMatch:
				children = append(children, &Conflict{Right: fromCST(curRight)})
			case matchingBaseRight.IsPerfectMatch:
				children = append(children, &Conflict{Left: fromCST(curLeft)})
			default:
				children = append(children, &Conflict{Left: fromCST(curLeft), Right: fromCST(curRight)})
			}
			i++
			j++
		case !bidirectional && !leftInRight && hasBaseLeft && !rightInLeft && !hasBaseRight:
			// The right side added a node where the left one deleted.
			children = append(children, fromCST(curRight))
			if !matchingBaseLeft.IsPerfectMatch {
				children = append(children, &Conflict{Left: fromCST(curLeft)})
			}
			i++
			j++
		case !bidirectional && !leftInRight && !hasBaseLeft && rightInLeft:
			// The left side added a node ahead of the right cursor's partner.
			children = append(children, fromCST(curLeft))
			i++
		case !bidirectional && !leftInRight && !hasBaseLeft && !rightInLeft && hasBaseRight:
			children = append(children, fromCST(curLeft))
			if !matchingBaseRight.IsPerfectMatch {
				children = append(children, &Conflict{Right: fromCST(curRight)})
			}
			i++
			j++
		case !bidirectional && !leftInRight && !hasBaseLeft && !rightInLeft && !hasBaseRight:
			// Unrelated additions compete for the same position.
			children = append(children, &Conflict{Left: fromCST(curLeft), Right: fromCST(curRight)})
			i++
			j++
		default:
			return nil, &InvalidMatchingConfigurationError{
				Bidirectional: bidirectional,
				LeftToRight:   leftInRight,
				BaseToLeft:    hasBaseLeft,
				RightToLeft:   rightInLeft,
				BaseToRight:   hasBaseRight,
			}
		}
	}

	for ; i < len(childrenLeft); i++ {
		children = append(children, fromCST(childrenLeft[i]))
	}
	for ; j < len(childrenRight); j++ {
		children = append(children, fromCST(childrenRight[j]))
	}

	return &MergedNonTerminal{Kind: base.Kind(), Children: children}, nil
}
