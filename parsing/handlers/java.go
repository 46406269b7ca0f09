package handlers

import (
	"github.com/google/uuid"

	"github.com/nihei9/smerge/model"
)

// TweakImportDeclarations groups a program's import_declaration children
// under a single synthetic import_declarations node whose children are
// unordered, so that import reorderings never conflict. The range from the
// first to the last import is replaced by the synthetic node.
func TweakImportDeclarations(root model.CSTNode) model.CSTNode {
	program, ok := root.(*model.NonTerminal)
	if !ok || program.Kind() != "program" {
		return root
	}

	var imports []model.CSTNode
	firstIndex, lastIndex := -1, -1
	for i, child := range program.Children {
		if child.Kind() != "import_declaration" {
			continue
		}
		imports = append(imports, child)
		if firstIndex < 0 {
			firstIndex = i
		}
		lastIndex = i
	}
	if len(imports) == 0 {
		return root
	}

	importDeclarations := &model.NonTerminal{
		NodeID:               uuid.NewString(),
		NodeKind:             "import_declarations",
		Children:             imports,
		Start:                imports[0].StartPosition(),
		End:                  imports[len(imports)-1].EndPosition(),
		AreChildrenUnordered: true,
	}

	children := make([]model.CSTNode, 0, len(program.Children)-len(imports)+1)
	children = append(children, program.Children[:firstIndex]...)
	children = append(children, importDeclarations)
	children = append(children, program.Children[lastIndex+1:]...)

	return &model.NonTerminal{
		NodeID:               program.NodeID,
		NodeKind:             program.NodeKind,
		Children:             children,
		Start:                program.Start,
		End:                  program.End,
		AreChildrenUnordered: program.AreChildrenUnordered,
	}
}

// RemoveComments strips block_comment and line_comment nodes from every
// non-terminal, recursively.
func RemoveComments(root model.CSTNode) model.CSTNode {
	nonTerminal, ok := root.(*model.NonTerminal)
	if !ok {
		return root
	}

	children := make([]model.CSTNode, 0, len(nonTerminal.Children))
	for _, child := range nonTerminal.Children {
		if child.Kind() == "block_comment" || child.Kind() == "line_comment" {
			continue
		}
		children = append(children, RemoveComments(child))
	}

	return &model.NonTerminal{
		NodeID:               nonTerminal.NodeID,
		NodeKind:             nonTerminal.NodeKind,
		Children:             children,
		Start:                nonTerminal.Start,
		End:                  nonTerminal.End,
		AreChildrenUnordered: nonTerminal.AreChildrenUnordered,
	}
}
