package parsing

import (
	"errors"

	"github.com/google/uuid"
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/nihei9/smerge/model"
)

var ErrUnparsableSource = errors.New("it was not possible to parse the tree")

// ParseString parses src with the configured grammar and returns the
// normalized CST.
func ParseString(src string, config *ParserConfiguration) (model.CSTNode, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(config.Language); err != nil {
		return nil, err
	}

	source := []byte(src)
	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, ErrUnparsableSource
	}
	defer tree.Close()

	root := exploreNode(tree.RootNode(), source, config)
	return config.Handlers.Run(root), nil
}

func exploreNode(node *sitter.Node, source []byte, config *ParserConfiguration) model.CSTNode {
	kind := node.Kind()
	_, stop := config.StopCompilationAt[kind]
	if node.ChildCount() == 0 || stop {
		_, isBlockEnd := config.BlockEndDelimiters[kind]
		return &model.Terminal{
			NodeID:              uuid.NewString(),
			NodeKind:            kind,
			Value:               string(source[node.StartByte():node.EndByte()]),
			Start:               pointOf(node.StartPosition()),
			End:                 pointOf(node.EndPosition()),
			IsBlockEndDelimiter: isBlockEnd,
		}
	}

	children := make([]model.CSTNode, 0, node.ChildCount())
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		children = append(children, exploreNode(node.Child(i), source, config))
	}
	_, unordered := config.UnorderedKinds[kind]
	return &model.NonTerminal{
		NodeID:               uuid.NewString(),
		NodeKind:             kind,
		Children:             children,
		Start:                pointOf(node.StartPosition()),
		End:                  pointOf(node.EndPosition()),
		AreChildrenUnordered: unordered,
	}
}

func pointOf(p sitter.Point) model.Point {
	return model.Point{Row: int(p.Row), Column: int(p.Column)}
}
