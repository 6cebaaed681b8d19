package python

import (
	"bufio"
	"strings"
)

// ParsePipfile reads the [packages] section of a Pipfile. Each "name = spec"
// line contributes its key; the section ends at the next header. Dev
// packages are not reported, nor are the interpreter and packaging tools.
func ParsePipfile(text string) (names []string, err error) {
	defer guard("Pipfile", &names, &err)

	set := newNameSet(Interpreter, BuildBackend, WheelBuilder, Installer)
	inPackages := false

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if line == "[packages]" {
			inPackages = true
			continue
		}
		if line[0] == '[' {
			inPackages = false
			continue
		}
		if !inPackages {
			continue
		}
		if eq := strings.IndexByte(line, '='); eq > 0 {
			set.add(strings.Trim(strings.TrimSpace(line[:eq]), `"'`))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return set.list(), nil
}
