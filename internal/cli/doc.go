// Package cli implements the licensescan command-line interface.
//
// # Commands
//
//   - check: report the licenses of a repository's Python dependencies
//   - serve: expose the check operation over HTTP
//   - completion: generate shell completion scripts
//
// # Configuration
//
// Settings are layered with viper: built-in defaults, then an optional
// licensescan.yaml (./ or $HOME/.config/licensescan, or --config), then
// LICENSESCAN_* environment variables, then flags. A .env file in the
// working directory is loaded into the environment first. GITHUB_TOKEN is
// honored as a fallback for LICENSESCAN_GITHUB_TOKEN.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli
