package pipeline

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/licensescan/pkg/integrations/github"
	"github.com/matzehuels/licensescan/pkg/integrations/pypi"
	"github.com/matzehuels/licensescan/pkg/license"
	"github.com/matzehuels/licensescan/pkg/report"
	"github.com/matzehuels/licensescan/pkg/resolve"
)

// Runner executes checks. It is stateless apart from its collaborators, so
// one Runner serves concurrent checks.
type Runner struct {
	Resolver *resolve.Resolver
	Logger   *log.Logger
}

// NewRunner creates a runner that reads manifests from GitHub and licenses
// from PyPI. If logger is nil, log.Default() is used.
func NewRunner(opts Options, logger *log.Logger) *Runner {
	opts = opts.WithDefaults()
	files := github.NewRawClient(opts.GitHubToken, opts.GitHubBaseURL, opts.GitHubTimeout)
	licenses := pypi.NewClient(opts.PyPIBaseURL, opts.PyPITimeout)
	return NewRunnerWith(files, licenses, opts, logger)
}

// NewRunnerWith creates a runner over the given collaborators.
func NewRunnerWith(files resolve.FileFetcher, licenses resolve.LicenseFetcher, opts Options, logger *log.Logger) *Runner {
	opts = opts.WithDefaults()
	if logger == nil {
		logger = log.Default()
	}
	res := resolve.New(files, licenses, license.NewClassifier(license.DefaultTables()), resolve.Options{
		PrimaryBranch:  opts.PrimaryBranch,
		FallbackBranch: opts.FallbackBranch,
		BatchSize:      opts.BatchSize,
		BatchDelay:     opts.BatchDelay,
		Logger:         logger,
	})
	return &Runner{Resolver: res, Logger: logger}
}

// Resolve parses locator and checks the repository it names. An unparsable
// locator fails with INVALID_LOCATOR before any request is made.
func (r *Runner) Resolve(ctx context.Context, locator string) (*resolve.Result, error) {
	owner, repo, err := github.ParseLocator(locator)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("checking repository", "repo", owner+"/"+repo)

	res, err := r.Resolver.Resolve(ctx, resolve.Locator{Owner: owner, Repo: repo})
	if err != nil {
		return nil, fmt.Errorf("check %s/%s: %w", owner, repo, err)
	}
	r.Logger.Info("check complete",
		"repo", res.Repository,
		"outcome", res.Outcome,
		"dependencies", len(res.Records),
		"duration", res.Duration)
	return res, nil
}

// Check runs [Runner.Resolve] and formats the result as a text report.
func (r *Runner) Check(ctx context.Context, locator string) (string, error) {
	res, err := r.Resolve(ctx, locator)
	if err != nil {
		return "", err
	}
	return report.Text(res), nil
}
