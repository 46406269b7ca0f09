package matching

import (
	"github.com/nihei9/smerge/matching/handlers"
	"github.com/nihei9/smerge/model"
)

// Configuration carries the static per-language tables matching consults:
// the delimiter kinds excluded from the labeled-children test, the kinds
// whose instances carry a unique label, and the label score handlers.
type Configuration struct {
	Delimiters     map[string]struct{}
	KindsWithLabel map[string]struct{}
	Handlers       *handlers.MatchingHandlers
}

// ConfigurationFromLanguage returns the matching configuration for a
// language.
func ConfigurationFromLanguage(language model.Language) *Configuration {
	switch language {
	case model.LanguageJava:
		return &Configuration{
			Delimiters: map[string]struct{}{
				"{": {},
				"}": {},
			},
			KindsWithLabel: map[string]struct{}{
				"compact_constructor_declaration": {},
				"constructor_declaration":         {},
				"field_declaration":               {},
				"method_declaration":              {},
			},
			Handlers: handlers.FromLanguage(language),
		}
	default:
		return &Configuration{
			Delimiters:     map[string]struct{}{},
			KindsWithLabel: map[string]struct{}{},
			Handlers:       handlers.FromLanguage(language),
		}
	}
}
