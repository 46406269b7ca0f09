package matching

import "github.com/nihei9/smerge/model"

type direction int

const (
	directionTop direction = iota
	directionLeft
	directionDiag
)

type orderedCell struct {
	dir       direction
	matchings *Matchings
}

// orderedTreeMatching aligns two same-kind non-terminals whose child order is
// semantically meaningful. It fills an (m+1)x(n+1) score table where a cell
// either skips a child on one side or pairs the two current children, adding
// their recursive root-match score. Ties prefer DIAG over TOP over LEFT. On
// traceback, the child matchings of every strictly score-increasing diagonal
// step are absorbed into the result.
func orderedTreeMatching(left, right *model.NonTerminal, config *Configuration) *Matchings {
	rootMatching := 0
	if left.Kind() == right.Kind() {
		rootMatching = 1
	}

	m := len(left.Children)
	n := len(right.Children)

	scores := make([][]int, m+1)
	cells := make([][]orderedCell, m+1)
	for i := 0; i <= m; i++ {
		scores[i] = make([]int, n+1)
		cells[i] = make([]orderedCell, n+1)
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			leftChild := left.Children[i-1]
			rightChild := right.Children[j-1]

			w := CalculateMatchings(leftChild, rightChild, config)
			entry, _ := w.EntryFor(leftChild, rightChild)

			diag := scores[i-1][j-1] + entry.Score
			top := scores[i-1][j]
			lft := scores[i][j-1]

			switch {
			case diag >= top && diag >= lft:
				scores[i][j] = diag
				cells[i][j] = orderedCell{dir: directionDiag, matchings: w}
			case top >= lft:
				scores[i][j] = top
				cells[i][j] = orderedCell{dir: directionTop}
			default:
				scores[i][j] = lft
				cells[i][j] = orderedCell{dir: directionLeft}
			}
		}
	}

	result := NewMatchings()
	for i, j := m, n; i >= 1 && j >= 1; {
		switch cells[i][j].dir {
		case directionTop:
			i--
		case directionLeft:
			j--
		case directionDiag:
			if scores[i][j] > scores[i-1][j-1] {
				result.Extend(cells[i][j].matchings)
			}
			i--
			j--
		}
	}

	result.Put(left, right, NewMatchingEntry(left, right, scores[m][n]+rootMatching))
	return result
}
