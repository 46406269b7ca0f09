package merge

import (
	"fmt"
	"strings"

	"github.com/nihei9/smerge/model"
)

// MergedCSTNode is a node of the merge result. Unlike model.CSTNode it
// carries only semantic identity — no positions, no ids — and admits a third
// variant, *Conflict, recording an automatic-resolution failure.
type MergedCSTNode interface {
	fmt.Stringer

	// HasConflict reports whether the subtree embeds any conflict.
	HasConflict() bool

	mergedCSTNode()
}

// MergedTerminal is a leaf of the merge result.
type MergedTerminal struct {
	Kind  string
	Value string

	// textualConflict marks a value produced by a conflicting textual merge,
	// with the markers embedded in Value.
	textualConflict bool
}

func (t *MergedTerminal) String() string    { return t.Value }
func (t *MergedTerminal) HasConflict() bool { return t.textualConflict }
func (t *MergedTerminal) mergedCSTNode()    {}

// MergedNonTerminal is an inner node of the merge result.
type MergedNonTerminal struct {
	Kind     string
	Children []MergedCSTNode
}

func (n *MergedNonTerminal) String() string {
	var b strings.Builder
	for _, child := range n.Children {
		b.WriteByte(' ')
		b.WriteString(child.String())
	}
	return b.String()
}

func (n *MergedNonTerminal) HasConflict() bool {
	for _, child := range n.Children {
		if child.HasConflict() {
			return true
		}
	}
	return false
}

func (n *MergedNonTerminal) mergedCSTNode() {}

// Conflict records the two competing subtrees of a failed resolution. At
// least one side is always present.
type Conflict struct {
	Left  MergedCSTNode
	Right MergedCSTNode
}

func (c *Conflict) String() string {
	switch {
	case c.Left != nil && c.Right != nil:
		return fmt.Sprintf("<<<<<<<<< %s ========= %s >>>>>>>>>", c.Left, c.Right)
	case c.Left != nil:
		return fmt.Sprintf("<<<<<<<<< %s ========= >>>>>>>>>", c.Left)
	case c.Right != nil:
		return fmt.Sprintf("<<<<<<<<< ========= %s >>>>>>>>>", c.Right)
	default:
		panic("invalid conflict: both sides are absent")
	}
}

func (c *Conflict) HasConflict() bool { return true }
func (c *Conflict) mergedCSTNode()    {}

// fromCST converts a CST subtree into a merged subtree verbatim.
func fromCST(node model.CSTNode) MergedCSTNode {
	switch n := node.(type) {
	case *model.Terminal:
		return &MergedTerminal{Kind: n.Kind(), Value: n.Value}
	case *model.NonTerminal:
		children := make([]MergedCSTNode, 0, len(n.Children))
		for _, child := range n.Children {
			children = append(children, fromCST(child))
		}
		return &MergedNonTerminal{Kind: n.Kind(), Children: children}
	default:
		panic(fmt.Sprintf("unknown CST node variant %T", node))
	}
}
