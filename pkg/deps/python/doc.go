// Package python extracts package names from Python dependency manifests.
//
// # Supported Formats
//
//   - requirements.txt: [ParseRequirements]
//   - pyproject.toml (PEP 621, Poetry, PDM, uv): [ParsePyproject]
//   - Pipfile: [ParsePipfile]
//   - Pipfile.lock: [ParsePipfileLock]
//   - poetry.lock: [ParsePoetryLock]
//   - uv.lock: [ParseUVLock]
//   - setup.py: [ParseSetupPy]
//   - environment.yml (conda): [ParseEnvironment]
//
// # Name Extraction
//
// Every parser returns bare distribution names: version constraints,
// quoting, extras and environment markers are removed, duplicates are
// dropped and the first-seen order is kept. The interpreter itself
// ("python") is never reported, and most formats also drop the packaging
// toolchain (setuptools, wheel, pip) when it appears as a dependency.
//
// These are name extractors, not full parsers. Lock files and JSON/YAML
// formats are decoded with real decoders; pyproject.toml, Pipfile and
// setup.py are scanned line by line.
package python
