package python

import (
	"bufio"
	"regexp"
	"strings"
)

// Section headers whose body lists dependencies.
var pyprojectSections = map[string]bool{
	"[project.dependencies]":          true,
	"[project.optional-dependencies]": true,
	"[tool.poetry.dependencies]":      true,
	"[tool.poetry.dev-dependencies]":  true,
	"[dependency-groups]":             true,
	"[tool.pdm.dev-dependencies]":     true,
}

// Array keys that open a dependency list wherever they appear.
var pyprojectArrayKeys = []string{"dependencies", "dev", "dev-dependencies"}

// Keys that sit next to dependency arrays and are never packages.
var pyprojectStructural = []string{
	"name", "version", "description", "authors", "maintainers", "readme",
	"license", "requires-python", "packages", "include", "exclude",
	"homepage", "repository", "documentation", "keywords", "classifiers",
	"build-backend", "dependencies", "optional", "extras", "markers",
	"source", "develop", "path", "git", "branch", "tag", "rev", "url",
	"platform", "allow-prereleases",
}

var (
	poetryGroupHeader = regexp.MustCompile(`^\[tool\.poetry\.group\.[^\]]+\.dependencies\]$`)
	keyArrayOpen      = regexp.MustCompile(`^("[^"]+"|'[^']+'|[A-Za-z0-9_.-]+)\s*=\s*\[(.*)$`)
	keyAssign         = regexp.MustCompile(`^("[^"]+"|'[^']+'|[A-Za-z0-9_.-]+)\s*=`)
	bareIdent         = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)
	doubleQuoted      = regexp.MustCompile(`"([^"]*)"`)
	singleQuoted      = regexp.MustCompile(`'([^']*)'`)
	anyQuoted         = regexp.MustCompile(`"([^"]*)"|'([^']*)'`)
)

// ParsePyproject extracts dependency names from a pyproject.toml file.
//
// The file is scanned line by line rather than decoded, so PEP 621, Poetry,
// PDM and uv layouts are all handled by one pass and a file that is not
// strictly valid TOML still yields its names. The scanner is "inside" while
// it is in a recognized dependency section or an open dependency array; a
// lone "]" closes the array and scanning of later sections continues.
func ParsePyproject(text string) (names []string, err error) {
	defer guard("pyproject.toml", &names, &err)

	exclude := append([]string{Interpreter, BuildBackend, WheelBuilder, Installer}, pyprojectStructural...)
	set := newNameSet(exclude...)

	var (
		header    string
		inSection bool
		inArray   bool
	)

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		if line == "]" || line == "]," {
			inArray = false
			continue
		}

		if isTableHeader(line) {
			header = line
			inArray = false
			inSection = pyprojectSections[line] || poetryGroupHeader.MatchString(line)
			continue
		}

		if m := keyArrayOpen.FindStringSubmatch(line); m != nil {
			key := unquote(m[1])
			opens := isArrayKey(key) ||
				(header == "[project]" && key == "dependencies") ||
				inSection
			if opens {
				if inSection && strings.HasPrefix(header, "[tool.poetry") && !isArrayKey(key) {
					// name = [ {version = ...}, ... ] is a multiple-constraint dependency
					set.add(key)
				}
				rest := m[2]
				if end := strings.LastIndex(rest, "]"); end >= 0 {
					for _, el := range arrayElements(rest[:end]) {
						set.add(requirementName(el))
					}
					continue
				}
				for _, el := range arrayElements(rest) {
					set.add(requirementName(el))
				}
				inArray = true
				continue
			}
		}

		if inArray {
			if !isInlineTable(line) {
				if m := anyQuoted.FindStringSubmatch(line); m != nil {
					set.add(requirementName(m[1] + m[2]))
				}
			}
			if strings.HasSuffix(strings.TrimSuffix(line, ","), "]") {
				inArray = false
			}
			continue
		}

		if !inSection {
			continue
		}

		if eq := strings.IndexByte(line, '='); eq > 0 && keyAssign.MatchString(line) &&
			!strings.HasPrefix(line[eq:], "==") {
			set.add(unquote(strings.TrimSpace(line[:eq])))
			continue
		}

		if tok := cleanToken(line); bareIdent.MatchString(tok) {
			set.add(tok)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return set.list(), nil
}

func isTableHeader(line string) bool {
	return len(line) > 2 && line[0] == '[' && line[len(line)-1] == ']' &&
		!strings.ContainsAny(line[:2], `"'`)
}

func isArrayKey(key string) bool {
	for _, k := range pyprojectArrayKeys {
		if k == key {
			return true
		}
	}
	return false
}

func isInlineTable(line string) bool {
	return strings.HasPrefix(line, "{") && strings.Contains(line, "=")
}

// arrayElements returns the quoted strings of a one-line array body. Double
// quotes win so that markers like python_version < '3.8' stay inside their
// element.
func arrayElements(body string) []string {
	if strings.Contains(body, "{") {
		return nil
	}
	matches := doubleQuoted.FindAllStringSubmatch(body, -1)
	if len(matches) == 0 {
		matches = singleQuoted.FindAllStringSubmatch(body, -1)
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

func unquote(s string) string {
	return strings.Trim(s, `"'`)
}
