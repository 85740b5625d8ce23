package classcfg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/html"
)

// ScanStats tracks file scanning statistics
type ScanStats struct {
	Patterns        int `json:"patterns"`         // Content patterns expanded
	FilesDiscovered int `json:"files_discovered"` // Distinct files matched by any pattern
	FilesScanned    int `json:"files_scanned"`    // Files kept as scan targets
	FilesSkipped    int `json:"files_skipped"`    // Files dropped by .gitignore
}

// ClassUsage records where a candidate class was seen.
type ClassUsage struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Files []string `json:"files"`
}

// ClassSet is the result of harvesting classes from scan targets.
type ClassSet struct {
	Classes      []ClassUsage `json:"classes"` // Sorted by name
	FilesScanned int          `json:"files_scanned"`
	Warnings     []string     `json:"warnings,omitempty"`
}

// Names returns the class names in order.
func (s ClassSet) Names() []string {
	names := make([]string, len(s.Classes))
	for i, c := range s.Classes {
		names[i] = c.Name
	}
	return names
}

var (
	// Django template syntax inside attribute values
	templateTagPattern = regexp.MustCompile(`\{%.*?%\}|\{\{.*?\}\}|\{#.*?#\}`)

	// Utility class candidates: "p-4", "md:flex", "w-1/2", "bg-[#fff]", "!mt-0", "-mx-2"
	classTokenPattern = regexp.MustCompile(`^[!-]?[A-Za-z0-9_\[][A-Za-z0-9_:/.%#\[\]()!-]*$`)
)

// loadGitIgnore compiles the .gitignore at the root of fsys.
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore(fsys fs.FS) *ignore.GitIgnore {
	data, err := fs.ReadFile(fsys, ".gitignore")
	if err != nil {
		return nil
	}
	return ignore.CompileIgnoreLines(strings.Split(string(data), "\n")...)
}

// ScanTargets expands the content patterns of cfg against fsys and returns
// the sorted, deduplicated list of files to scan.
func ScanTargets(fsys fs.FS, cfg Config) ([]string, ScanStats, error) {
	stats := ScanStats{Patterns: len(cfg.Content)}
	if len(cfg.Content) == 0 {
		return nil, stats, ErrNoContent
	}

	gi := loadGitIgnore(fsys)
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range cfg.Content {
		if text := checkPattern(pattern); text != "" {
			return nil, stats, fmt.Errorf("content pattern %q: %s: %w", pattern, text, doublestar.ErrBadPattern)
		}

		matches, err := doublestar.Glob(fsys, normalizePattern(pattern), doublestar.WithFilesOnly())
		if err != nil {
			return nil, stats, fmt.Errorf("expanding %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if gi != nil && gi.MatchesPath(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	sort.Strings(files)
	return files, stats, nil
}

// ExtractClasses reads each target from fsys and collects candidate class
// names from class attributes and from the given plugins.
// Unreadable or malformed files never abort the harvest; they are reported
// in ClassSet.Warnings. A target listed twice is scanned once.
func ExtractClasses(fsys fs.FS, targets []string, plugins []Plugin) ClassSet {
	var set ClassSet
	usage := make(map[string]*ClassUsage)
	seen := make(map[string]bool)

	record := func(name, file string) {
		u, ok := usage[name]
		if !ok {
			u = &ClassUsage{Name: name}
			usage[name] = u
		}
		u.Count++
		if len(u.Files) == 0 || u.Files[len(u.Files)-1] != file {
			u.Files = append(u.Files, file)
		}
	}

	for _, target := range targets {
		if seen[target] {
			continue
		}
		seen[target] = true

		content, err := fs.ReadFile(fsys, target)
		if err != nil {
			// Warn but continue
			set.Warnings = append(set.Warnings, fmt.Sprintf("reading %s: %v", target, err))
			continue
		}

		classes, err := scanHTML(content)
		if err != nil {
			set.Warnings = append(set.Warnings, fmt.Sprintf("tokenizing %s: %v", target, err))
		}
		for _, plugin := range plugins {
			for _, candidate := range plugin.Extract(target, content) {
				if isClassToken(candidate) {
					classes = append(classes, candidate)
				}
			}
		}

		for _, name := range classes {
			record(name, target)
		}
		set.FilesScanned++
	}

	set.Classes = make([]ClassUsage, 0, len(usage))
	for _, u := range usage {
		set.Classes = append(set.Classes, *u)
	}
	sort.Slice(set.Classes, func(i, j int) bool {
		return set.Classes[i].Name < set.Classes[j].Name
	})

	return set
}

// scanHTML returns the class tokens of every class attribute in content,
// in document order. Tokens found before a lexer error are still returned.
func scanHTML(content []byte) ([]string, error) {
	var classes []string
	err := eachAttribute(stripTemplateTags(content), func(name string, value []byte) {
		if name == "class" {
			classes = append(classes, splitClassValue(value)...)
		}
	})
	return classes, err
}

// eachAttribute calls fn for every attribute in an HTML document with the
// lowercased attribute name and its unquoted value.
func eachAttribute(content []byte, fn func(name string, value []byte)) error {
	l := html.NewLexer(parse.NewInputBytes(content))
	for {
		tt, _ := l.Next()
		switch tt {
		case html.ErrorToken:
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		case html.AttributeToken:
			name := strings.ToLower(string(l.Text()))
			fn(name, unquote(l.AttrVal()))
		}
	}
}

// stripTemplateTags blanks out Django tags before the HTML lexer sees them,
// so quotes inside a tag cannot end an attribute value:
// class="nav {% if request.path == "/" %}active{% endif %}".
func stripTemplateTags(content []byte) []byte {
	return templateTagPattern.ReplaceAll(content, []byte(" "))
}

func unquote(val []byte) []byte {
	if len(val) >= 2 && (val[0] == '"' || val[0] == '\'') && val[len(val)-1] == val[0] {
		return val[1 : len(val)-1]
	}
	return val
}

// splitClassValue splits a class attribute value into class tokens.
// Django tags are replaced by spaces so text between them survives:
// `btn {% if on %}active{% endif %}` -> ["btn", "active"].
func splitClassValue(value []byte) []string {
	var tokens []string
	for _, field := range bytes.Fields(stripTemplateTags(value)) {
		token := string(field)
		if isClassToken(token) {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func isClassToken(token string) bool {
	return classTokenPattern.MatchString(token)
}
