// Package deps recognizes dependency manifests and extracts package names
// from them.
//
// # Overview
//
// A repository declares its third-party packages in one of several manifest
// formats. This package knows the closed set of supported formats as
// [FileKind] values and routes manifest text to the matching parser in
// [python]:
//
//	d := deps.NewDispatcher(logger)
//	names := d.Dispatch(content, "pyproject.toml")
//
// # Search Order
//
// [Candidates] lists the recognized file names in the order a repository is
// searched: plain requirement lists first, then project metadata, then lock
// files, and finally legacy and conda formats.
//
// # Failure Handling
//
// Extraction is best effort. An unrecognized file name, malformed content or
// a parser panic all produce an empty result; the cause is logged at debug
// level and never returned to the caller.
//
// [python]: github.com/matzehuels/licensescan/pkg/deps/python
package deps
