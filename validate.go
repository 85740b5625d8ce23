package classcfg

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var (
	// ErrNoContent is returned when a configuration declares no content patterns.
	ErrNoContent = errors.New("content must declare at least one glob pattern")
	// ErrUnknownPlugin is returned when a plugin reference is not registered.
	ErrUnknownPlugin = errors.New("unknown plugin")
)

// Problem describes a single defect in a configuration record.
type Problem struct {
	Field string `json:"field"` // "content[2]", "plugins[0]"
	Value string `json:"value,omitempty"`
	Text  string `json:"text"`
}

func (p Problem) String() string {
	if p.Value == "" {
		return fmt.Sprintf("%s: %s", p.Field, p.Text)
	}
	return fmt.Sprintf("%s %q: %s", p.Field, p.Value, p.Text)
}

// Problem messages
const (
	ProblemEmptyContent    = "no content patterns; nothing will be scanned"
	ProblemEmptyPattern    = "empty glob pattern"
	ProblemBadPattern      = "invalid glob syntax"
	ProblemAbsolutePattern = "pattern must be relative to the project root"
	ProblemEscapesRoot     = "pattern escapes the project root"
	ProblemEmptyPlugin     = "empty plugin reference"
)

// Validate checks the record and returns every problem found, or nil.
// Duplicate patterns are not problems.
func (c Config) Validate() []Problem {
	var problems []Problem

	if len(c.Content) == 0 {
		problems = append(problems, Problem{Field: "content", Text: ProblemEmptyContent})
	}

	for i, pattern := range c.Content {
		field := fmt.Sprintf("content[%d]", i)
		if text := checkPattern(pattern); text != "" {
			problems = append(problems, Problem{Field: field, Value: pattern, Text: text})
		}
	}

	for i, ref := range c.Plugins {
		if strings.TrimSpace(ref) == "" {
			problems = append(problems, Problem{
				Field: fmt.Sprintf("plugins[%d]", i),
				Text:  ProblemEmptyPlugin,
			})
		}
	}

	return problems
}

// checkPattern returns a problem message for pattern, or "" if it is usable.
func checkPattern(pattern string) string {
	if strings.TrimSpace(pattern) == "" {
		return ProblemEmptyPattern
	}
	if strings.HasPrefix(pattern, "/") {
		return ProblemAbsolutePattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return ProblemBadPattern
	}

	normalized := normalizePattern(pattern)
	if normalized == ".." || strings.HasPrefix(normalized, "../") {
		return ProblemEscapesRoot
	}

	return ""
}

// normalizePattern makes a content pattern usable against an fs.FS rooted at
// the project directory: "./templates/**/*.html" -> "templates/**/*.html".
func normalizePattern(pattern string) string {
	p := pattern
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return path.Clean(p)
}
