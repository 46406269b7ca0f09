package matching

import "github.com/nihei9/smerge/model"

type childMatching struct {
	score     int
	matchings *Matchings
}

// assignmentProblemMatching aligns unordered children without unique labels.
// The recursive root-match score of every (left, right) child pair forms a
// nonnegative weight matrix, padded square; the maximum-weight assignment
// picks the pairing, and the child matchings of every positive assigned pair
// are absorbed.
func assignmentProblemMatching(left, right *model.NonTerminal, config *Configuration) *Matchings {
	m := len(left.Children)
	n := len(right.Children)
	if m == 0 || n == 0 {
		return FromSingle(left, right, NewMatchingEntry(left, right, 1))
	}

	children := make([][]childMatching, m)
	for i, leftChild := range left.Children {
		children[i] = make([]childMatching, n)
		for j, rightChild := range right.Children {
			w := CalculateMatchings(leftChild, rightChild, config)
			entry, _ := w.EntryFor(leftChild, rightChild)
			children[i][j] = childMatching{score: entry.Score, matchings: w}
		}
	}

	size := max(m, n)
	weights := make([][]int, size)
	for i := range weights {
		weights[i] = make([]int, size)
		if i < m {
			for j := 0; j < n; j++ {
				weights[i][j] = children[i][j].score
			}
		}
	}

	total, assignment := kuhnMunkres(weights)

	result := NewMatchings()
	for i, j := range assignment {
		if i < m && j < n && children[i][j].score > 0 {
			result.Extend(children[i][j].matchings)
		}
	}

	result.Put(left, right, NewMatchingEntry(left, right, total+1))
	return result
}
