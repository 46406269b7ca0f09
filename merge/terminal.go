package merge

import "github.com/nihei9/smerge/model"

// mergeTerminals three-way merges three terminal lexemes. Terminals sit below
// the grammar granularity, so a doubly-changed value falls back to a textual
// line merge; a resulting conflict is embedded as markers in the value.
func mergeTerminals(base, left, right *model.Terminal) MergedCSTNode {
	// Unchanged on both sides.
	if left.Value == base.Value && right.Value == base.Value {
		return fromCST(base)
	}
	// Both sides agree, whether or not they changed anything.
	if left.Value == right.Value {
		return &MergedTerminal{Kind: base.Kind(), Value: left.Value}
	}
	// Changed on both sides.
	if left.Value != base.Value && right.Value != base.Value {
		value, conflicted := mergeText(base.Value, left.Value, right.Value)
		return &MergedTerminal{Kind: base.Kind(), Value: value, textualConflict: conflicted}
	}
	// Changed on one side only.
	if left.Value != base.Value {
		return fromCST(left)
	}
	return fromCST(right)
}
