// Package handlers computes language-specific matching scores for node kinds
// that carry a uniquely identifying label, such as a method's identifier.
package handlers

import "github.com/nihei9/smerge/model"

// MatchingHandler scores two nodes of the same kind: 1 when their labels
// identify the same program element, 0 otherwise.
type MatchingHandler func(left, right model.CSTNode) int

// MatchingHandlers is a per-kind handler registry.
type MatchingHandlers struct {
	byKind map[string]MatchingHandler
}

func NewMatchingHandlers() *MatchingHandlers {
	return &MatchingHandlers{byKind: map[string]MatchingHandler{}}
}

// Register binds a handler to a node kind.
func (h *MatchingHandlers) Register(kind string, handler MatchingHandler) {
	h.byKind[kind] = handler
}

// ComputeMatchingScore runs the handler registered for the nodes' kind. The
// second return value reports whether a handler was found; nodes of different
// kinds never have one.
func (h *MatchingHandlers) ComputeMatchingScore(left, right model.CSTNode) (int, bool) {
	if left.Kind() != right.Kind() {
		return 0, false
	}
	handler, ok := h.byKind[left.Kind()]
	if !ok {
		return 0, false
	}
	return handler(left, right), true
}

// FromLanguage returns the handler registry for a language.
func FromLanguage(language model.Language) *MatchingHandlers {
	switch language {
	case model.LanguageJava:
		return javaMatchingHandlers()
	default:
		return NewMatchingHandlers()
	}
}
