package matching

import "github.com/nihei9/smerge/model"

// uniqueLabelMatching pairs children whose labels identify the same program
// element. Labels are unique within their scope, so every positive pair is
// recursed into and its matchings absorbed. Children without a registered
// handler (delimiters, mostly) fall back to kind equality.
func uniqueLabelMatching(left, right *model.NonTerminal, config *Configuration) *Matchings {
	rootMatching := 0
	if left.Kind() == right.Kind() {
		rootMatching = 1
	}

	sum := 0
	result := NewMatchings()

	for _, leftChild := range left.Children {
		for _, rightChild := range right.Children {
			score, handled := config.Handlers.ComputeMatchingScore(leftChild, rightChild)
			if !handled {
				if leftChild.Kind() == rightChild.Kind() {
					score = 1
				}
			}
			if score != 1 {
				continue
			}

			childMatchings := CalculateMatchings(leftChild, rightChild, config)
			if entry, ok := childMatchings.EntryFor(leftChild, rightChild); ok && entry.Score >= 1 {
				sum += entry.Score
				result.Extend(childMatchings)
			}
		}
	}

	result.Put(left, right, NewMatchingEntry(left, right, sum+rootMatching))
	return result
}
