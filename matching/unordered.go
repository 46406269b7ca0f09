package matching

import (
	"github.com/rs/zerolog/log"

	"github.com/nihei9/smerge/model"
)

// unorderedTreeMatching aligns two same-kind non-terminals whose children
// form a set. When every non-delimiter child on both sides carries a
// language-defined identifying label, the cheap unique-label strategy
// applies; otherwise the children are aligned by solving an assignment
// problem.
func unorderedTreeMatching(left, right *model.NonTerminal, config *Configuration) *Matchings {
	if allChildrenLabeled(left, config) && allChildrenLabeled(right, config) {
		log.Debug().
			Str("left", left.Kind()).
			Str("right", right.Kind()).
			Msg("matching children using the unique label strategy")
		return uniqueLabelMatching(left, right, config)
	}
	log.Debug().
		Str("left", left.Kind()).
		Str("right", right.Kind()).
		Msg("matching children using the assignment problem strategy")
	return assignmentProblemMatching(left, right, config)
}

func allChildrenLabeled(node *model.NonTerminal, config *Configuration) bool {
	for _, child := range node.Children {
		if _, isDelimiter := config.Delimiters[child.Kind()]; isDelimiter {
			continue
		}
		if _, labeled := config.KindsWithLabel[child.Kind()]; !labeled {
			return false
		}
	}
	return true
}
