package resolve

import (
	"time"

	"github.com/matzehuels/licensescan/pkg/deps"
	"github.com/matzehuels/licensescan/pkg/license"
)

// Locator identifies a GitHub repository.
type Locator struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

// String returns "owner/repo".
func (l Locator) String() string { return l.Owner + "/" + l.Repo }

// Outcome says which kind of report a check produced.
type Outcome string

const (
	OutcomeReport        Outcome = "report"         // manifest found, dependencies classified
	OutcomeNoManifest    Outcome = "no_manifest"    // no candidate file on either branch
	OutcomeEmptyManifest Outcome = "empty_manifest" // manifest found, no package names extracted
)

// LicenseStatus records how a dependency's license string was obtained.
// Absent and Unavailable both classify as unknown; they are kept apart for
// diagnostics.
type LicenseStatus string

const (
	StatusDeclared    LicenseStatus = "declared"    // registry returned a license
	StatusAbsent      LicenseStatus = "absent"      // package not found, or no license declared
	StatusUnavailable LicenseStatus = "unavailable" // lookup failed
)

// DependencyRecord is the classification of one dependency.
type DependencyRecord struct {
	Name     string           `json:"name"`
	License  string           `json:"license,omitempty"`
	Status   LicenseStatus    `json:"status"`
	Category license.Category `json:"category"`
	Note     string           `json:"note"`
}

// Result is everything one check found.
type Result struct {
	ID         string             `json:"id"`
	Repository Locator            `json:"repository"`
	Outcome    Outcome            `json:"outcome"`
	FileKind   deps.FileKind      `json:"-"`
	Format     string             `json:"format,omitempty"` // FileKind.String(), set with FileName
	FileName   string             `json:"manifest,omitempty"`
	Branch     string             `json:"branch,omitempty"`
	Searched   []string           `json:"searched,omitempty"`
	Records    []DependencyRecord `json:"dependencies"`
	Duration   time.Duration      `json:"duration_ns"`
}

// Grouped returns the records of each category, keeping report order within
// a category.
func (r *Result) Grouped() map[license.Category][]DependencyRecord {
	out := make(map[license.Category][]DependencyRecord, len(license.Categories()))
	for _, rec := range r.Records {
		out[rec.Category] = append(out[rec.Category], rec)
	}
	return out
}

// Counts returns the number of records per category. Every category is
// present, with zero when it has no records.
func (r *Result) Counts() map[license.Category]int {
	out := make(map[license.Category]int, len(license.Categories()))
	for _, c := range license.Categories() {
		out[c] = 0
	}
	for _, rec := range r.Records {
		out[rec.Category]++
	}
	return out
}

func categoryRank(c license.Category) int {
	for i, cat := range license.Categories() {
		if cat == c {
			return i
		}
	}
	return len(license.Categories())
}
