package python

import (
	"bufio"
	"strings"
)

// ParseRequirements reads a requirements.txt file: one requirement per line,
// with comments (#) and pip directives (-r, -e, --index-url, ...) skipped.
// URL and VCS references carry no registry name and are skipped as well, as
// are the interpreter and packaging tools.
func ParseRequirements(text string) (names []string, err error) {
	defer guard("requirements.txt", &names, &err)

	set := newNameSet(Interpreter, BuildBackend, WheelBuilder, Installer)
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == '-' {
			continue
		}
		if isURLLine(line) {
			continue
		}
		set.add(requirementName(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return set.list(), nil
}

// isURLLine reports whether the line is a bare URL or VCS reference. A named
// direct reference ("pkg @ https://...") still carries a name.
func isURLLine(line string) bool {
	if strings.HasPrefix(line, "git+") {
		return true
	}
	i := strings.Index(line, "://")
	return i >= 0 && !strings.Contains(line[:i], "@")
}

// requirementName reduces a PEP 508 requirement line to its distribution
// name: inline comments, environment markers, extras, direct references and
// version constraints are all cut.
func requirementName(line string) string {
	if i := strings.Index(line, " #"); i >= 0 {
		line = line[:i]
	}
	if i := strings.IndexAny(line, ";[@ \t"); i >= 0 {
		line = line[:i]
	}
	return StripVersion(line)
}
