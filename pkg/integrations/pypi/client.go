package pypi

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	lserrors "github.com/matzehuels/licensescan/pkg/errors"
	"github.com/matzehuels/licensescan/pkg/integrations"
)

// Defaults for [NewClient].
const (
	DefaultBaseURL = "https://pypi.org/pypi"
	DefaultTimeout = 5 * time.Second
)

// MaxLicenseLength is the number of runes kept from a license string. Longer
// values (usually a full license text pasted into the metadata) are cut and
// marked with "...".
const MaxLicenseLength = 100

// Client provides access to the PyPI JSON API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a PyPI client. An empty baseURL uses [DefaultBaseURL]
// and a zero timeout uses [DefaultTimeout].
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		Client:  integrations.NewClient(map[string]string{"Accept": "application/json"}, timeout),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// FetchLicense returns the declared license of a package as one short string.
//
// The license is read from license_expression, then license, then the
// "License ::" trove classifiers. An empty string with a nil error means the
// package exists but declares no license.
//
// Returns:
//   - [integrations.ErrNotFound] if the package doesn't exist
//   - [integrations.ErrNetwork] for HTTP failures (timeout, 5xx, etc.)
//   - an INVALID_PACKAGE error for names that cannot be a PyPI project
func (c *Client) FetchLicense(ctx context.Context, pkg string) (string, error) {
	if err := lserrors.ValidatePythonPackageName(pkg); err != nil {
		return "", err
	}
	name := integrations.NormalizePkgName(pkg)

	var data apiResponse
	if err := c.Get(ctx, fmt.Sprintf("%s/%s/json", c.baseURL, name), &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return "", fmt.Errorf("%w: pypi package %s", err, name)
		}
		return "", err
	}
	return extractLicense(data.Info), nil
}

type apiResponse struct {
	Info apiInfo `json:"info"`
}

type apiInfo struct {
	Name              string   `json:"name"`
	Version           string   `json:"version"`
	License           string   `json:"license"`
	LicenseExpression string   `json:"license_expression"`
	Classifiers       []string `json:"classifiers"`
}

// extractLicense picks the first usable license field and shortens it.
func extractLicense(info apiInfo) string {
	for _, field := range []string{info.LicenseExpression, info.License} {
		if l := firstLine(field); l != "" && !strings.EqualFold(l, "UNKNOWN") {
			return truncate(l)
		}
	}
	return truncate(fromClassifiers(info.Classifiers))
}

// fromClassifiers joins the last segment of every license classifier, e.g.
// "License :: OSI Approved :: MIT License" -> "MIT License".
func fromClassifiers(classifiers []string) string {
	var names []string
	seen := make(map[string]bool)
	for _, c := range classifiers {
		if !strings.HasPrefix(c, "License :: ") {
			continue
		}
		parts := strings.Split(c, " :: ")
		name := strings.TrimSpace(parts[len(parts)-1])
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return strings.Join(names, " OR ")
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= MaxLicenseLength {
		return s
	}
	return string(r[:MaxLicenseLength]) + "..."
}
