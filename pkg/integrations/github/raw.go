package github

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	lserrors "github.com/matzehuels/licensescan/pkg/errors"
	"github.com/matzehuels/licensescan/pkg/integrations"
)

// Defaults for [NewRawClient].
const (
	DefaultRawBaseURL = "https://raw.githubusercontent.com"
	DefaultTimeout    = 10 * time.Second
)

// RawClient fetches file contents from public GitHub repositories through
// the raw-content host. It needs no API quota; a token is only required for
// private repositories.
//
// RawClient is safe for concurrent use.
type RawClient struct {
	*integrations.Client
	baseURL string
}

// NewRawClient creates a raw-content client. Pass an empty token for
// unauthenticated requests, an empty baseURL for [DefaultRawBaseURL] and a
// zero timeout for [DefaultTimeout].
func NewRawClient(token, baseURL string, timeout time.Duration) *RawClient {
	if baseURL == "" {
		baseURL = DefaultRawBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	headers := map[string]string{"Accept": "text/plain"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return &RawClient{
		Client:  integrations.NewClient(headers, timeout),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// FetchFile returns the text of fileName at the root of owner/repo on branch.
//
// A missing file, branch or repository returns an error wrapping
// [integrations.ErrNotFound]. Any other failure wraps
// [integrations.ErrNetwork] or is a validation error for the arguments.
func (c *RawClient) FetchFile(ctx context.Context, owner, repo, fileName, branch string) (string, error) {
	if err := ValidateRepoRef(owner, repo); err != nil {
		return "", lserrors.Wrap(lserrors.ErrCodeInvalidInput, err, "invalid repository %s/%s", owner, repo)
	}
	if err := ValidateBranch(branch); err != nil {
		return "", lserrors.Wrap(lserrors.ErrCodeInvalidInput, err, "invalid branch %q", branch)
	}
	if err := lserrors.ValidateManifestFilename(fileName); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s/%s/%s/%s", c.baseURL, owner, repo, branch, fileName)
	text, err := c.GetText(ctx, url)
	if err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return "", fmt.Errorf("%w: %s/%s@%s:%s", err, owner, repo, branch, fileName)
		}
		return "", err
	}
	return text, nil
}
