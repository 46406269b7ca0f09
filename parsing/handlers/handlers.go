// Package handlers holds the per-language normalization rewrites that run on
// a freshly parsed CST before it reaches matching and merge.
package handlers

import "github.com/nihei9/smerge/model"

// ParsingHandler is a pure tree-to-tree rewrite. Handlers must be idempotent:
// running the chain twice yields a structurally identical tree.
type ParsingHandler func(root model.CSTNode) model.CSTNode

// ParsingHandlers is an ordered rewrite chain.
type ParsingHandlers struct {
	handlers []ParsingHandler
}

func NewParsingHandlers(handlers ...ParsingHandler) *ParsingHandlers {
	return &ParsingHandlers{handlers: handlers}
}

// Run applies the chain left to right.
func (h *ParsingHandlers) Run(root model.CSTNode) model.CSTNode {
	for _, handler := range h.handlers {
		root = handler(root)
	}
	return root
}

// FromLanguage returns the rewrite chain registered for a language.
func FromLanguage(language model.Language) *ParsingHandlers {
	switch language {
	case model.LanguageJava:
		return NewParsingHandlers(TweakImportDeclarations, RemoveComments)
	default:
		return NewParsingHandlers()
	}
}
