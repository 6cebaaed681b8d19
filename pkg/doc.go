// Package pkg holds the libraries behind licensescan.
//
// A check flows through the packages in one direction:
//
//	repository locator
//	       ↓
//	[integrations/github]  locate and fetch the first supported manifest
//	       ↓
//	[deps]                 extract package names from the manifest text
//	       ↓
//	[integrations/pypi]    look up each package's declared license
//	       ↓
//	[license]              classify the license as free, paid, warning or unknown
//	       ↓
//	[report]               format the grouped result
//
// [resolve] orchestrates the middle steps and [pipeline] wires the real
// collaborators for the CLI and HTTP server. Supporting packages:
//   - [errors]: error codes shared by every entry point
//   - [httputil]: retry helpers for upstream calls
//   - [observability]: hooks for metrics without a backend dependency
//   - [buildinfo]: version information set at build time
package pkg
