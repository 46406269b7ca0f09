package model

import "fmt"

// Language identifies a grammar supported by the merge pipeline.
type Language int

const (
	LanguageJava Language = iota
)

func (l Language) String() string {
	switch l {
	case LanguageJava:
		return "java"
	default:
		return fmt.Sprintf("language(%d)", int(l))
	}
}
