package handlers

import "github.com/nihei9/smerge/model"

func javaMatchingHandlers() *MatchingHandlers {
	h := NewMatchingHandlers()
	h.Register("method_declaration", matchingScoreForMethodDeclaration)
	h.Register("constructor_declaration", matchingScoreForMethodDeclaration)
	h.Register("compact_constructor_declaration", matchingScoreForMethodDeclaration)
	h.Register("field_declaration", matchingScoreForFieldDeclaration)
	h.Register("class_declaration", matchingScoreForClassLikeDeclaration)
	h.Register("interface_declaration", matchingScoreForClassLikeDeclaration)
	h.Register("import_declaration", matchingScoreForImportDeclaration)
	return h
}

// matchingScoreForMethodDeclaration compares the identifier lexemes of two
// method-like declarations.
func matchingScoreForMethodDeclaration(left, right model.CSTNode) int {
	leftID, okLeft := findIdentifier(childrenOf(left))
	rightID, okRight := findIdentifier(childrenOf(right))
	if okLeft && okRight && leftID == rightID {
		return 1
	}
	return 0
}

// matchingScoreForFieldDeclaration locates the identifier inside the
// variable_declarator child of each field.
func matchingScoreForFieldDeclaration(left, right model.CSTNode) int {
	declaratorLeft := findChildOfKind(childrenOf(left), "variable_declarator")
	declaratorRight := findChildOfKind(childrenOf(right), "variable_declarator")
	if declaratorLeft == nil || declaratorRight == nil {
		return 0
	}
	leftID, okLeft := findIdentifier(childrenOf(declaratorLeft))
	rightID, okRight := findIdentifier(childrenOf(declaratorRight))
	if okLeft && okRight && leftID == rightID {
		return 1
	}
	return 0
}

// matchingScoreForClassLikeDeclaration compares the identifier children of
// two class-like declarations.
func matchingScoreForClassLikeDeclaration(left, right model.CSTNode) int {
	idLeft := findChildOfKind(childrenOf(left), "identifier")
	idRight := findChildOfKind(childrenOf(right), "identifier")
	if idLeft != nil && idRight != nil && idLeft.Contents() == idRight.Contents() {
		return 1
	}
	return 0
}

// matchingScoreForImportDeclaration compares the scoped_identifier contents
// of two imports.
func matchingScoreForImportDeclaration(left, right model.CSTNode) int {
	scopedLeft := findChildOfKind(childrenOf(left), "scoped_identifier")
	scopedRight := findChildOfKind(childrenOf(right), "scoped_identifier")
	if scopedLeft != nil && scopedRight != nil && scopedLeft.Contents() == scopedRight.Contents() {
		return 1
	}
	return 0
}

func childrenOf(node model.CSTNode) []model.CSTNode {
	if nt, ok := node.(*model.NonTerminal); ok {
		return nt.Children
	}
	return nil
}

func findChildOfKind(children []model.CSTNode, kind string) model.CSTNode {
	for _, child := range children {
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}

// findIdentifier returns the lexeme of the first identifier terminal.
func findIdentifier(children []model.CSTNode) (string, bool) {
	for _, child := range children {
		if child.Kind() != "identifier" {
			continue
		}
		if terminal, ok := child.(*model.Terminal); ok {
			return terminal.Value, true
		}
		return "", false
	}
	return "", false
}
