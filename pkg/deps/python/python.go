package python

import (
	"fmt"
	"strings"
)

// Parser extracts package names from the raw text of one manifest file.
//
// Parsers never panic out to the caller: malformed input and recovered
// panics are returned as an error with a nil slice, which callers treat as
// an empty extraction.
type Parser func(text string) ([]string, error)

// Interpreter is the runtime name that some manifests list next to real
// dependencies (environment.yml, Pipfile.lock requires, pyproject).
const Interpreter = "python"

// Packaging toolchain names. They show up inside dependency lists as
// build-time requirements and are never reported.
const (
	BuildBackend = "setuptools"
	WheelBuilder = "wheel"
	Installer    = "pip"
)

// versionOperators holds the first byte of every operator a name is cut at:
// ==, >=, <=, !=, ~=, >, <, ~, ^ and *.
const versionOperators = "=<>~^!*"

// StripVersion returns name with everything from the first version operator
// onwards removed, then trimmed of whitespace.
func StripVersion(spec string) string {
	if i := strings.IndexAny(spec, versionOperators); i >= 0 {
		spec = spec[:i]
	}
	return strings.TrimSpace(spec)
}

// cleanToken strips quotes and inline-table braces around a dependency token
// and then cuts its version constraint.
func cleanToken(tok string) string {
	tok = strings.TrimSpace(tok)
	tok = strings.TrimPrefix(tok, "{")
	tok = strings.TrimSuffix(tok, "}")
	tok = strings.Trim(strings.TrimSpace(tok), `"'`)
	return StripVersion(tok)
}

// nameSet collects names in first-seen order, dropping empties, duplicates
// and anything in the exclusion set.
type nameSet struct {
	seen    map[string]bool
	exclude map[string]bool
	names   []string
}

func newNameSet(exclude ...string) *nameSet {
	s := &nameSet{seen: make(map[string]bool), exclude: make(map[string]bool, len(exclude))}
	for _, e := range exclude {
		s.exclude[e] = true
	}
	return s
}

func (s *nameSet) add(name string) {
	if name == "" || s.seen[name] || s.exclude[strings.ToLower(name)] {
		return
	}
	s.seen[name] = true
	s.names = append(s.names, name)
}

func (s *nameSet) list() []string {
	if len(s.names) == 0 {
		return []string{}
	}
	return s.names
}

// guard turns a panic inside a parser into an ordinary error and drops any
// partial result.
func guard(format string, names *[]string, err *error) {
	if r := recover(); r != nil {
		*names = nil
		*err = fmt.Errorf("parse %s: %v", format, r)
	}
}
