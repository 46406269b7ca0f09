package smerge

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nihei9/smerge/model"
)

// LanguageFromName resolves an explicitly requested language name.
func LanguageFromName(name string) (model.Language, error) {
	switch name {
	case "java":
		return model.LanguageJava, nil
	default:
		return 0, fmt.Errorf("invalid language provided: %v", name)
	}
}

// LanguageFromFilePath infers the language from a file's extension.
func LanguageFromFilePath(path string) (model.Language, error) {
	switch strings.TrimPrefix(filepath.Ext(path), ".") {
	case "java":
		return model.LanguageJava, nil
	default:
		return 0, fmt.Errorf("could not detect the language of file %v", path)
	}
}
