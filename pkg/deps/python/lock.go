package python

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type lockFile struct {
	Packages []lockPackage `toml:"package"`
}

type lockPackage struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// ParsePoetryLock reads the [[package]] tables of a poetry.lock file.
// Packaging tools pinned in the lock are dropped along with the interpreter.
func ParsePoetryLock(text string) (names []string, err error) {
	defer guard("poetry.lock", &names, &err)
	return lockNames(text, Interpreter, BuildBackend, WheelBuilder, Installer)
}

// ParseUVLock reads the [[package]] tables of a uv.lock file. Only the
// interpreter is excluded; uv locks setuptools and friends only when a
// project really depends on them at run time.
func ParseUVLock(text string) (names []string, err error) {
	defer guard("uv.lock", &names, &err)
	return lockNames(text, Interpreter)
}

func lockNames(text string, exclude ...string) ([]string, error) {
	var lock lockFile
	if _, err := toml.Decode(text, &lock); err != nil {
		return nil, fmt.Errorf("decode lock: %w", err)
	}
	set := newNameSet(exclude...)
	for _, pkg := range lock.Packages {
		set.add(strings.TrimSpace(pkg.Name))
	}
	return set.list(), nil
}

// ParsePipfileLock returns the keys of the "default" section of a
// Pipfile.lock in document order. Development packages under "develop" are
// not reported.
func ParsePipfileLock(text string) (names []string, err error) {
	defer guard("Pipfile.lock", &names, &err)

	if !json.Valid([]byte(text)) {
		return nil, errors.New("decode Pipfile.lock: invalid JSON")
	}
	keys, err := defaultKeys(json.NewDecoder(strings.NewReader(text)))
	if err != nil {
		return nil, fmt.Errorf("decode Pipfile.lock: %w", err)
	}
	set := newNameSet(Interpreter)
	for _, k := range keys {
		set.add(k)
	}
	return set.list(), nil
}

// defaultKeys walks the top-level object token by token and returns the
// keys of its "default" member. A missing or null "default" yields none.
func defaultKeys(dec *json.Decoder) ([]string, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		if tok != "default" || string(raw) == "null" {
			continue
		}
		if keys, err = objectKeys(raw); err != nil {
			return nil, fmt.Errorf("default: %w", err)
		}
	}
	return keys, nil
}

func objectKeys(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		keys = append(keys, tok.(string))
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

var installRequires = regexp.MustCompile(`(?s)install_requires\s*=\s*\[(.*)\]`)

// ParseSetupPy extracts the string literals of the install_requires list in a
// legacy setup.py. The match is greedy and spans the whole file, so the
// region ends at the last closing bracket; every double-quoted token inside
// is treated as a requirement. The interpreter and packaging tools are
// dropped.
func ParseSetupPy(text string) (names []string, err error) {
	defer guard("setup.py", &names, &err)

	m := installRequires.FindStringSubmatch(text)
	if m == nil {
		return []string{}, nil
	}
	set := newNameSet(Interpreter, BuildBackend, WheelBuilder, Installer)
	for _, q := range doubleQuoted.FindAllStringSubmatch(m[1], -1) {
		set.add(requirementName(strings.TrimSpace(q[1])))
	}
	return set.list(), nil
}

type environmentFile struct {
	Dependencies []any `yaml:"dependencies"`
}

// condaOperators is the subset of operators conda specs use; "=" alone is
// the conda pin separator.
const condaOperators = "=<>"

// ParseEnvironment reads the dependencies list of a conda environment.yml.
// Nested mappings such as the pip sub-list are skipped.
func ParseEnvironment(text string) (names []string, err error) {
	defer guard("environment.yml", &names, &err)

	var env environmentFile
	if err := yaml.Unmarshal([]byte(text), &env); err != nil {
		return nil, fmt.Errorf("decode environment.yml: %w", err)
	}
	set := newNameSet(Interpreter)
	for _, dep := range env.Dependencies {
		s, ok := dep.(string)
		if !ok {
			continue
		}
		// Channel-qualified specs look like "conda-forge::scipy".
		if i := strings.LastIndex(s, "::"); i >= 0 {
			s = s[i+2:]
		}
		if i := strings.IndexAny(s, condaOperators); i >= 0 {
			s = s[:i]
		}
		if f := strings.Fields(s); len(f) > 0 {
			set.add(StripVersion(f[0]))
		}
	}
	return set.list(), nil
}
