package resolve

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/licensescan/pkg/deps"
	lserrors "github.com/matzehuels/licensescan/pkg/errors"
	"github.com/matzehuels/licensescan/pkg/integrations"
	"github.com/matzehuels/licensescan/pkg/license"
	"github.com/matzehuels/licensescan/pkg/observability"
)

const (
	DefaultPrimaryBranch  = "main"
	DefaultFallbackBranch = "master"
	DefaultBatchSize      = 5
	DefaultBatchDelay     = 200 * time.Millisecond
)

// FileFetcher reads one file from the root of a repository branch. A missing
// file must be reported with an error wrapping [integrations.ErrNotFound];
// any other error aborts the check.
type FileFetcher interface {
	FetchFile(ctx context.Context, owner, repo, fileName, branch string) (string, error)
}

// LicenseFetcher looks up the declared license of a package. An empty string
// means none is declared; [integrations.ErrNotFound] means the package is
// unknown to the registry.
type LicenseFetcher interface {
	FetchLicense(ctx context.Context, pkg string) (string, error)
}

// Options configures a [Resolver].
type Options struct {
	PrimaryBranch  string        // Branch tried first (default: main)
	FallbackBranch string        // Branch tried when a file is missing on the primary (default: master)
	BatchSize      int           // Concurrent license lookups per batch (default: 5)
	BatchDelay     time.Duration // Pause between batches (default: 200ms)
	Logger         *log.Logger   // Defaults to log.Default()
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.PrimaryBranch == "" {
		opts.PrimaryBranch = DefaultPrimaryBranch
	}
	if opts.FallbackBranch == "" {
		opts.FallbackBranch = DefaultFallbackBranch
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.BatchDelay <= 0 {
		opts.BatchDelay = DefaultBatchDelay
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return opts
}

// Resolver runs a license check for one repository: find a manifest,
// extract package names, look up and classify each license.
//
// A Resolver keeps no state between calls and is safe for concurrent use.
type Resolver struct {
	files      FileFetcher
	licenses   LicenseFetcher
	dispatcher *deps.Dispatcher
	classifier *license.Classifier
	opts       Options

	sleep func(context.Context, time.Duration)
}

// New creates a Resolver. A nil classifier uses the default tables.
func New(files FileFetcher, licenses LicenseFetcher, classifier *license.Classifier, opts Options) *Resolver {
	opts = opts.WithDefaults()
	if classifier == nil {
		classifier = license.NewClassifier(nil)
	}
	return &Resolver{
		files:      files,
		licenses:   licenses,
		dispatcher: deps.NewDispatcher(opts.Logger),
		classifier: classifier,
		opts:       opts,
		sleep:      sleepCtx,
	}
}

// Resolve checks the repository at loc.
//
// A missing or empty manifest is a normal result with the matching
// [Outcome]. The only error is a manifest fetch that failed for a reason
// other than not-found; it carries the MANIFEST_FETCH_FAILED code. Failed
// license lookups degrade the affected records and never fail the check.
func (r *Resolver) Resolve(ctx context.Context, loc Locator) (*Result, error) {
	start := time.Now()
	repo := loc.String()
	hooks := observability.Resolve()
	hooks.OnResolveStart(ctx, repo)

	res := &Result{
		ID:         uuid.NewString(),
		Repository: loc,
		Records:    []DependencyRecord{},
	}

	text, err := r.findManifest(ctx, loc, res)
	if err != nil {
		hooks.OnResolveComplete(ctx, repo, "", 0, time.Since(start), err)
		return nil, err
	}

	switch {
	case res.FileName == "":
		res.Outcome = OutcomeNoManifest
		r.opts.Logger.Info("no manifest found", "repo", repo, "searched", len(res.Searched))
	default:
		names := r.dispatcher.Parse(res.FileKind, text)
		if len(names) == 0 {
			res.Outcome = OutcomeEmptyManifest
			r.opts.Logger.Info("manifest lists no packages", "repo", repo, "file", res.FileName)
			break
		}
		r.opts.Logger.Info("extracted dependencies", "repo", repo, "file", res.FileName, "count", len(names))
		res.Records = r.lookupAll(ctx, names)
		res.Outcome = OutcomeReport
	}

	res.Duration = time.Since(start)
	hooks.OnResolveComplete(ctx, repo, string(res.Outcome), len(res.Records), res.Duration, nil)
	return res, nil
}

// findManifest returns the text of the first candidate present on the
// primary or fallback branch and records the choice in res. Not finding any
// candidate leaves res.FileName empty.
func (r *Resolver) findManifest(ctx context.Context, loc Locator, res *Result) (string, error) {
	branches := []string{r.opts.PrimaryBranch}
	if r.opts.FallbackBranch != r.opts.PrimaryBranch {
		branches = append(branches, r.opts.FallbackBranch)
	}

	for _, name := range deps.Candidates() {
		res.Searched = append(res.Searched, name)
		for _, branch := range branches {
			text, err := r.files.FetchFile(ctx, loc.Owner, loc.Repo, name, branch)
			if errors.Is(err, integrations.ErrNotFound) {
				r.opts.Logger.Debug("manifest not found", "repo", loc, "file", name, "branch", branch)
				continue
			}
			if err != nil {
				return "", lserrors.Wrap(lserrors.ErrCodeManifestFetch, err, "fetch %s from %s@%s", name, loc, branch)
			}

			kind, _ := deps.KindOf(name)
			res.FileKind, res.Format, res.FileName, res.Branch = kind, kind.String(), name, branch
			observability.Resolve().OnManifestFound(ctx, loc.String(), name, branch)
			r.opts.Logger.Debug("manifest found", "repo", loc, "file", name, "branch", branch)
			return text, nil
		}
	}
	return "", nil
}

// lookupAll classifies names in sequential batches. Every lookup in a batch
// runs concurrently and settles on its own record, so one failure never
// cancels its siblings. Records come back ordered by category, then by
// extraction order.
func (r *Resolver) lookupAll(ctx context.Context, names []string) []DependencyRecord {
	records := make([]DependencyRecord, len(names))
	size := r.opts.BatchSize

	for start := 0; start < len(names); start += size {
		if start > 0 {
			r.sleep(ctx, r.opts.BatchDelay)
		}
		end := min(start+size, len(names))

		var g errgroup.Group
		for i := start; i < end; i++ {
			g.Go(func() error {
				records[i] = r.lookup(ctx, names[i])
				return nil
			})
		}
		_ = g.Wait()
	}

	sort.SliceStable(records, func(i, j int) bool {
		return categoryRank(records[i].Category) < categoryRank(records[j].Category)
	})
	return records
}

// lookup fetches and classifies one package. A panic inside the fetcher is
// recovered into an unavailable record.
func (r *Resolver) lookup(ctx context.Context, name string) (rec DependencyRecord) {
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			r.opts.Logger.Warn("license lookup panicked", "package", name, "panic", p)
			rec = r.record(name, "", StatusUnavailable)
		}
		observability.Resolve().OnLookup(ctx, name, string(rec.Status), string(rec.Category), time.Since(start))
	}()

	lic, err := r.licenses.FetchLicense(ctx, name)
	switch {
	case err == nil && strings.TrimSpace(lic) != "":
		return r.record(name, lic, StatusDeclared)
	case err == nil, errors.Is(err, integrations.ErrNotFound):
		return r.record(name, "", StatusAbsent)
	default:
		r.opts.Logger.Warn("license lookup failed", "package", name, "err", err)
		return r.record(name, "", StatusUnavailable)
	}
}

func (r *Resolver) record(name, lic string, status LicenseStatus) DependencyRecord {
	c := r.classifier.Classify(lic)
	return DependencyRecord{
		Name:     name,
		License:  lic,
		Status:   status,
		Category: c.Category,
		Note:     c.Note,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
