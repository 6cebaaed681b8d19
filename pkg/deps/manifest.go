package deps

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/licensescan/pkg/deps/python"
)

// FileKind identifies one of the supported manifest formats.
type FileKind int

// Supported manifest formats, in the order they are searched for.
const (
	Requirements FileKind = iota // requirements.txt
	Pyproject                    // pyproject.toml
	Pipfile                      // Pipfile
	PipfileLock                  // Pipfile.lock
	PoetryLock                   // poetry.lock
	UVLock                       // uv.lock
	SetupPy                      // setup.py
	Environment                  // environment.yml

	numKinds
)

var fileNames = [numKinds]string{
	Requirements: "requirements.txt",
	Pyproject:    "pyproject.toml",
	Pipfile:      "Pipfile",
	PipfileLock:  "Pipfile.lock",
	PoetryLock:   "poetry.lock",
	UVLock:       "uv.lock",
	SetupPy:      "setup.py",
	Environment:  "environment.yml",
}

var kinds = [numKinds]string{
	Requirements: "requirements",
	Pyproject:    "pyproject",
	Pipfile:      "pipfile",
	PipfileLock:  "pipfile-lock",
	PoetryLock:   "poetry-lock",
	UVLock:       "uv-lock",
	SetupPy:      "setup-py",
	Environment:  "conda-environment",
}

// parsers maps every kind to its extractor. The array is sized by numKinds,
// so a new kind without a parser leaves a nil slot that TestParsersComplete
// catches.
var parsers = [numKinds]python.Parser{
	Requirements: python.ParseRequirements,
	Pyproject:    python.ParsePyproject,
	Pipfile:      python.ParsePipfile,
	PipfileLock:  python.ParsePipfileLock,
	PoetryLock:   python.ParsePoetryLock,
	UVLock:       python.ParseUVLock,
	SetupPy:      python.ParseSetupPy,
	Environment:  python.ParseEnvironment,
}

// String returns a short identifier such as "poetry-lock".
func (k FileKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("FileKind(%d)", int(k))
	}
	return kinds[k]
}

// FileName returns the manifest file name the kind is recognized by.
func (k FileKind) FileName() string {
	if !k.valid() {
		return ""
	}
	return fileNames[k]
}

func (k FileKind) valid() bool { return k >= 0 && k < numKinds }

// MarshalText encodes the kind by name for JSON output.
func (k FileKind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("invalid file kind %d", int(k))
	}
	return []byte(kinds[k]), nil
}

// KindOf returns the kind recognized by fileName. Matching is exact and
// case-sensitive, like the hosting service's paths.
func KindOf(fileName string) (FileKind, bool) {
	for k, name := range fileNames {
		if name == fileName {
			return FileKind(k), true
		}
	}
	return 0, false
}

// Candidates returns the manifest file names in search priority order.
func Candidates() []string {
	out := make([]string, numKinds)
	copy(out, fileNames[:])
	return out
}

// Dispatcher routes manifest text to the parser for its file name.
// It holds no per-call state and is safe for concurrent use.
type Dispatcher struct {
	logger *log.Logger
}

// NewDispatcher creates a Dispatcher that reports parse failures to logger
// at debug level. A nil logger uses log.Default().
func NewDispatcher(logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Dispatcher{logger: logger}
}

// Dispatch extracts package names from text using the parser registered for
// fileName. Unrecognized names and parser failures both yield an empty,
// non-nil slice.
func (d *Dispatcher) Dispatch(text, fileName string) []string {
	kind, ok := KindOf(fileName)
	if !ok {
		d.logger.Debug("unrecognized manifest", "file", fileName)
		return []string{}
	}
	return d.Parse(kind, text)
}

// Parse runs the parser for kind over text.
func (d *Dispatcher) Parse(kind FileKind, text string) (names []string) {
	if !kind.valid() || parsers[kind] == nil {
		return []string{}
	}
	defer func() {
		if r := recover(); r != nil {
			d.logger.Debug("manifest parser panicked", "kind", kind, "panic", r)
			names = []string{}
		}
	}()

	names, err := parsers[kind](text)
	if err != nil {
		d.logger.Debug("manifest parse failed", "kind", kind, "err", err)
		return []string{}
	}
	if names == nil {
		return []string{}
	}
	return names
}
