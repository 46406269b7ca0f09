package merge

import (
	"errors"
	"fmt"
)

// ErrMergingTerminalWithNonTerminal reports an attempt to merge a terminal
// with a non-terminal. It indicates corrupt CSTs; nothing recovers from it.
var ErrMergingTerminalWithNonTerminal = errors.New("merging terminal with non-terminal")

// DifferentKindsError reports an unordered merge over two non-terminals of
// different kinds.
type DifferentKindsError struct {
	KindA string
	KindB string
}

func (e *DifferentKindsError) Error() string {
	return fmt.Sprintf("tried to merge node of kind %q with node of kind %q", e.KindA, e.KindB)
}

// InvalidMatchingConfigurationError reports a five-signal tuple the ordered
// merge's case table deems unreachable. It indicates a broken matching
// invariant.
type InvalidMatchingConfigurationError struct {
	Bidirectional bool
	LeftToRight   bool
	BaseToLeft    bool
	RightToLeft   bool
	BaseToRight   bool
}

func (e *InvalidMatchingConfigurationError) Error() string {
	return fmt.Sprintf("invalid matching configuration: %v, %v, %v, %v, %v",
		e.Bidirectional, e.LeftToRight, e.BaseToLeft, e.RightToLeft, e.BaseToRight)
}
