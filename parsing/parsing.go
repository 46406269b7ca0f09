// Package parsing turns source text into the normalized CST consumed by
// matching and merge, using a tree-sitter grammar as the parsing backend.
package parsing

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	javagrammar "github.com/tree-sitter/tree-sitter-java/bindings/go"

	"github.com/nihei9/smerge/model"
	"github.com/nihei9/smerge/parsing/handlers"
)

// ParserConfiguration binds a grammar to the language-specific tables the CST
// construction needs.
type ParserConfiguration struct {
	Language *sitter.Language

	// StopCompilationAt lists node kinds whose subtrees are flattened into a
	// single Terminal. Edits below that granularity fall through to the
	// textual terminal merge.
	StopCompilationAt map[string]struct{}

	// UnorderedKinds lists non-terminal kinds whose children form a set.
	UnorderedKinds map[string]struct{}

	// BlockEndDelimiters lists terminal kinds that close a block, so the
	// unordered merge can stop iterating at them.
	BlockEndDelimiters map[string]struct{}

	// Handlers is the normalization chain applied to the root after parsing.
	Handlers *handlers.ParsingHandlers
}

// ConfigurationFromLanguage returns the static parser configuration for a
// language.
func ConfigurationFromLanguage(language model.Language) (*ParserConfiguration, error) {
	switch language {
	case model.LanguageJava:
		return &ParserConfiguration{
			Language: sitter.NewLanguage(javagrammar.Language()),
			StopCompilationAt: map[string]struct{}{
				"method_body": {},
			},
			UnorderedKinds: map[string]struct{}{
				"interface_body": {},
				"class_body":     {},
			},
			BlockEndDelimiters: map[string]struct{}{
				"}": {},
			},
			Handlers: handlers.FromLanguage(language),
		}, nil
	default:
		return nil, fmt.Errorf("no parser available for language %v", language)
	}
}
