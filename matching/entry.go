package matching

import "github.com/nihei9/smerge/model"

// MatchingEntry records the alignment score of a node pair and whether the
// score covers both subtrees entirely. A pure reorder of unordered children
// is a perfect match even though the lexemes differ in order.
type MatchingEntry struct {
	Score          int
	IsPerfectMatch bool
}

// NewMatchingEntry derives perfection from the scoring invariant: under
// 1-per-node scoring, a matching is perfect iff twice its score covers both
// subtrees entirely.
func NewMatchingEntry(left, right model.CSTNode, score int) MatchingEntry {
	return MatchingEntry{
		Score:          score,
		IsPerfectMatch: 2*score == left.TreeSize()+right.TreeSize(),
	}
}
