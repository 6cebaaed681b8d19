package cli

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	lserrors "github.com/matzehuels/licensescan/pkg/errors"
	"github.com/matzehuels/licensescan/pkg/resolve"
)

func TestRenderReport(t *testing.T) {
	var buf bytes.Buffer
	renderReport(&buf, sampleResult())
	out := buf.String()

	for _, s := range []string{
		"License report for o/r",
		"requirements.txt (branch main)",
		"Free for commercial use",
		"May require a paid license",
		"Unknown license",
		"no license declared",
		"Total: 4 dependencies (2 free, 1 paid, 0 warning, 1 unknown)",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q\n%s", s, out)
		}
	}
	if strings.Contains(out, "Review before commercial use") {
		t.Error("empty category should not be printed")
	}
}

func TestRenderReportNoManifest(t *testing.T) {
	var buf bytes.Buffer
	renderReport(&buf, &resolve.Result{
		Repository: resolve.Locator{Owner: "o", Repo: "r"},
		Outcome:    resolve.OutcomeNoManifest,
		Searched:   []string{"requirements.txt", "pyproject.toml"},
	})
	out := buf.String()

	if !strings.Contains(out, "No supported dependency manifest found.") {
		t.Errorf("missing no-manifest line:\n%s", out)
	}
	if !strings.Contains(out, "requirements.txt, pyproject.toml") {
		t.Errorf("missing searched list:\n%s", out)
	}
}

func TestRenderReportEmptyManifest(t *testing.T) {
	var buf bytes.Buffer
	renderReport(&buf, &resolve.Result{
		Repository: resolve.Locator{Owner: "o", Repo: "r"},
		Outcome:    resolve.OutcomeEmptyManifest,
		FileName:   "Pipfile",
		Branch:     "master",
	})
	if !strings.Contains(buf.String(), "The manifest lists no packages.") {
		t.Errorf("missing empty-manifest line:\n%s", buf.String())
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"untyped", errors.New("boom"), 1},
		{"locator", lserrors.New(lserrors.ErrCodeInvalidLocator, "bad"), 2},
		{"wrapped locator", fmt.Errorf("check: %w", lserrors.New(lserrors.ErrCodeInvalidLocator, "bad")), 2},
		{"manifest", lserrors.New(lserrors.ErrCodeManifestFetch, "403"), 3},
		{"internal", lserrors.New(lserrors.ErrCodeInternal, "oops"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
