// Package pipeline provides the check operation shared by the CLI and the
// HTTP server.
//
// A check takes one repository locator string and returns a formatted
// report, or an error when the locator is invalid or a manifest could not be
// fetched. By centralizing this logic both entry points behave the same.
//
// # Usage
//
//	runner := pipeline.NewRunner(pipeline.Options{GitHubToken: token}, logger)
//	report, err := runner.Check(ctx, "https://github.com/pallets/flask")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(report)
//
// Callers that need the structured result (JSON output, the interactive
// browser) use [Runner.Resolve] and format it themselves.
package pipeline

import (
	"time"

	"github.com/matzehuels/licensescan/pkg/integrations/github"
	"github.com/matzehuels/licensescan/pkg/integrations/pypi"
	"github.com/matzehuels/licensescan/pkg/resolve"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	DefaultGitHubTimeout = github.DefaultTimeout
	DefaultPyPITimeout   = pypi.DefaultTimeout
)

// Options configures the collaborators of a [Runner]. Zero values fall back
// to the defaults of the packages they configure.
type Options struct {
	GitHubToken   string        // Bearer token for raw content (optional)
	GitHubBaseURL string        // Raw content host (default: raw.githubusercontent.com)
	GitHubTimeout time.Duration // Per-file timeout (default: 10s)

	PyPIBaseURL string        // JSON API root (default: pypi.org/pypi)
	PyPITimeout time.Duration // Per-lookup timeout (default: 5s)

	PrimaryBranch  string        // Default: main
	FallbackBranch string        // Default: master
	BatchSize      int           // Default: 5
	BatchDelay     time.Duration // Default: 200ms
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.GitHubBaseURL == "" {
		opts.GitHubBaseURL = github.DefaultRawBaseURL
	}
	if opts.GitHubTimeout <= 0 {
		opts.GitHubTimeout = DefaultGitHubTimeout
	}
	if opts.PyPIBaseURL == "" {
		opts.PyPIBaseURL = pypi.DefaultBaseURL
	}
	if opts.PyPITimeout <= 0 {
		opts.PyPITimeout = DefaultPyPITimeout
	}
	if opts.PrimaryBranch == "" {
		opts.PrimaryBranch = resolve.DefaultPrimaryBranch
	}
	if opts.FallbackBranch == "" {
		opts.FallbackBranch = resolve.DefaultFallbackBranch
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = resolve.DefaultBatchSize
	}
	if opts.BatchDelay <= 0 {
		opts.BatchDelay = resolve.DefaultBatchDelay
	}
	return opts
}
