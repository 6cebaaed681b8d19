// Package report formats a resolve.Result for people and for machines.
//
// [Text] produces the plain report returned by the check operation: a
// header, one section per category with its count, and a closing summary.
// [JSON] encodes the structured result.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/matzehuels/licensescan/pkg/license"
	"github.com/matzehuels/licensescan/pkg/resolve"
)

var headings = map[license.Category]string{
	license.Free:    "Free for commercial use",
	license.Paid:    "May require a paid license",
	license.Warning: "Review before commercial use",
	license.Unknown: "Unknown license",
}

// Heading returns the section title for a category.
func Heading(c license.Category) string {
	if h, ok := headings[c]; ok {
		return h
	}
	return string(c)
}

// Text renders res as a plain-text report.
func Text(res *resolve.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "License report for %s\n", res.Repository)

	switch res.Outcome {
	case resolve.OutcomeNoManifest:
		fmt.Fprintf(&b, "\nNo supported dependency manifest found.\nSearched: %s\n", strings.Join(res.Searched, ", "))
		return b.String()
	case resolve.OutcomeEmptyManifest:
		fmt.Fprintf(&b, "Manifest: %s (branch %s)\n\nThe manifest lists no packages.\n", res.FileName, res.Branch)
		return b.String()
	}

	fmt.Fprintf(&b, "Manifest: %s (branch %s)\n", res.FileName, res.Branch)

	grouped := res.Grouped()
	for _, cat := range license.Categories() {
		recs := grouped[cat]
		if len(recs) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s [%s] (%d)\n", Heading(cat), cat, len(recs))
		for _, rec := range recs {
			fmt.Fprintf(&b, "  - %s: %s. %s\n", rec.Name, LicenseLabel(rec), rec.Note)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", Summary(res))
	return b.String()
}

// LicenseLabel returns the license string of rec, or a short explanation
// when there is none.
func LicenseLabel(rec resolve.DependencyRecord) string {
	switch {
	case rec.License != "":
		return rec.License
	case rec.Status == resolve.StatusUnavailable:
		return "lookup failed"
	default:
		return "no license declared"
	}
}

// Summary returns the one-line totals, e.g.
// "Total: 5 dependencies (2 free, 1 paid, 1 warning, 1 unknown)".
func Summary(res *resolve.Result) string {
	counts := res.Counts()
	parts := make([]string, 0, len(license.Categories()))
	for _, cat := range license.Categories() {
		parts = append(parts, fmt.Sprintf("%d %s", counts[cat], cat))
	}
	noun := "dependencies"
	if len(res.Records) == 1 {
		noun = "dependency"
	}
	return fmt.Sprintf("Total: %d %s (%s)", len(res.Records), noun, strings.Join(parts, ", "))
}

// JSON encodes res with indentation.
func JSON(res *resolve.Result) ([]byte, error) {
	return json.MarshalIndent(res, "", "  ")
}
