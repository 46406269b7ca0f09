// Package smerge runs semistructured three-way merges: it parses the base,
// left and right revisions of a file into CSTs, aligns them pairwise, and
// merges the trees, reporting conflicts where automatic resolution fails.
package smerge

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/nihei9/smerge/matching"
	"github.com/nihei9/smerge/merge"
	"github.com/nihei9/smerge/model"
	"github.com/nihei9/smerge/parsing"
)

// ExecutionResult is the outcome of a successful run. A conflicted result is
// not an error: the merged output is still usable, markers included.
type ExecutionResult struct {
	Output       string
	HasConflicts bool
}

// RunMergeScenario merges the left and right revisions against their common
// ancestor. An absent ancestor is passed as the empty string: when the base
// equals either side the other side is returned verbatim, otherwise the empty
// base makes every change an addition.
func RunMergeScenario(language model.Language, base, left, right string) (*ExecutionResult, error) {
	if base == left {
		return &ExecutionResult{Output: right}, nil
	}
	if base == right {
		return &ExecutionResult{Output: left}, nil
	}

	parserConfig, err := parsing.ConfigurationFromLanguage(language)
	if err != nil {
		return nil, fmt.Errorf("parsing error occurred: %w", err)
	}

	baseTree, err := parsing.ParseString(base, parserConfig)
	if err != nil {
		return nil, fmt.Errorf("parsing error occurred: %w", err)
	}
	leftTree, err := parsing.ParseString(left, parserConfig)
	if err != nil {
		return nil, fmt.Errorf("parsing error occurred: %w", err)
	}
	rightTree, err := parsing.ParseString(right, parserConfig)
	if err != nil {
		return nil, fmt.Errorf("parsing error occurred: %w", err)
	}

	matchingConfig := matching.ConfigurationFromLanguage(language)
	log.Debug().Stringer("language", language).Msg("calculating pairwise matchings")
	baseLeft := matching.CalculateMatchings(baseTree, leftTree, matchingConfig)
	baseRight := matching.CalculateMatchings(baseTree, rightTree, matchingConfig)
	leftRight := matching.CalculateMatchings(leftTree, rightTree, matchingConfig)

	log.Debug().
		Int("base_left", baseLeft.Len()).
		Int("base_right", baseRight.Len()).
		Int("left_right", leftRight.Len()).
		Msg("merging the revision trees")
	merged, err := merge.Merge(baseTree, leftTree, rightTree, baseLeft, baseRight, leftRight)
	if err != nil {
		return nil, fmt.Errorf("merge error occurred: %w", err)
	}

	return &ExecutionResult{
		Output:       merged.String(),
		HasConflicts: merged.HasConflict(),
	}, nil
}

// RunDiffScenario parses both revisions and returns the trees. It exists to
// smoke-test the parser on a pair of files.
func RunDiffScenario(language model.Language, left, right string) (model.CSTNode, model.CSTNode, error) {
	parserConfig, err := parsing.ConfigurationFromLanguage(language)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing error occurred: %w", err)
	}
	leftTree, err := parsing.ParseString(left, parserConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing error occurred: %w", err)
	}
	rightTree, err := parsing.ParseString(right, parserConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing error occurred: %w", err)
	}
	return leftTree, rightTree, nil
}
