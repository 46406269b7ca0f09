package model

import (
	"bytes"
	"strings"

	"github.com/google/uuid"
)

// Point is a position in the source file, zero-based.
type Point struct {
	Row    int
	Column int
}

// CSTNode is a node of the concrete syntax tree produced by parsing. It has
// exactly two variants: *Terminal, carrying a lexeme, and *NonTerminal,
// carrying an ordered child sequence. Consumers dispatch with a type switch.
//
// Every node carries an identity assigned at construction. Matching and merge
// key their lookups by identity, so two structurally equal nodes are still
// distinct endpoints.
type CSTNode interface {
	// ID is the node identity, stable for the lifetime of the tree.
	ID() string
	// Kind is the grammar production or token name.
	Kind() string
	// Contents concatenates the terminal lexemes of the subtree. Each child
	// of a non-terminal contributes a leading space.
	Contents() string
	// TreeSize counts the nodes of the subtree, this node included.
	TreeSize() int
	// StartPosition and EndPosition delimit the subtree's source span.
	StartPosition() Point
	EndPosition() Point

	cstNode()
}

// Terminal is a leaf node holding a verbatim lexeme.
type Terminal struct {
	NodeID              string
	NodeKind            string
	Value               string
	Start               Point
	End                 Point
	IsBlockEndDelimiter bool
}

// NewTerminal constructs a Terminal with a fresh identity and zero positions.
func NewTerminal(kind, value string) *Terminal {
	return &Terminal{
		NodeID:   uuid.NewString(),
		NodeKind: kind,
		Value:    value,
	}
}

func (t *Terminal) ID() string           { return t.NodeID }
func (t *Terminal) Kind() string         { return t.NodeKind }
func (t *Terminal) Contents() string     { return t.Value }
func (t *Terminal) TreeSize() int        { return 1 }
func (t *Terminal) StartPosition() Point { return t.Start }
func (t *Terminal) EndPosition() Point   { return t.End }
func (t *Terminal) cstNode()             {}

// NonTerminal is an inner node whose children are ordered unless the grammar
// treats the production's children as a set.
type NonTerminal struct {
	NodeID               string
	NodeKind             string
	Children             []CSTNode
	Start                Point
	End                  Point
	AreChildrenUnordered bool
}

// NewNonTerminal constructs a NonTerminal with a fresh identity and zero
// positions.
func NewNonTerminal(kind string, children ...CSTNode) *NonTerminal {
	return &NonTerminal{
		NodeID:   uuid.NewString(),
		NodeKind: kind,
		Children: children,
	}
}

func (n *NonTerminal) ID() string   { return n.NodeID }
func (n *NonTerminal) Kind() string { return n.NodeKind }

func (n *NonTerminal) Contents() string {
	var b strings.Builder
	for _, child := range n.Children {
		b.WriteByte(' ')
		b.WriteString(child.Contents())
	}
	return b.String()
}

func (n *NonTerminal) TreeSize() int {
	size := 1
	for _, child := range n.Children {
		size += child.TreeSize()
	}
	return size
}

func (n *NonTerminal) StartPosition() Point { return n.Start }
func (n *NonTerminal) EndPosition() Point   { return n.End }
func (n *NonTerminal) cstNode()             {}

// Format renders the tree one node per line, indented by depth.
func Format(node CSTNode) []byte {
	var b bytes.Buffer
	format(&b, node, 0)
	return b.Bytes()
}

func format(buf *bytes.Buffer, node CSTNode, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString("    ")
	}
	buf.WriteString("(")
	buf.WriteString(node.Kind())
	switch n := node.(type) {
	case *Terminal:
		buf.WriteString(" '")
		buf.WriteString(n.Value)
		buf.WriteString("'")
	case *NonTerminal:
		for _, child := range n.Children {
			buf.WriteString("\n")
			format(buf, child, depth+1)
		}
	}
	buf.WriteString(")")
}
