package github

import (
	"strings"

	lserrors "github.com/matzehuels/licensescan/pkg/errors"
)

var locatorPrefixes = []string{
	"https://", "http://", "ssh://git@", "git://",
}

// ParseLocator extracts owner and repository from the common ways a GitHub
// repository is written:
//
//	https://github.com/owner/repo
//	http://www.github.com/owner/repo.git
//	github.com/owner/repo/tree/main/src
//	git@github.com:owner/repo.git
//	owner/repo
//
// Anything after the repository segment of a URL (tree/blob paths, query,
// fragment) is ignored. Failures carry the INVALID_LOCATOR code.
func ParseLocator(s string) (owner, repo string, err error) {
	input := s
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "git+")
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}

	hosted := false
	if rest, ok := cutPrefixFold(s, "git@github.com:"); ok {
		s, hosted = rest, true
	} else {
		for _, p := range locatorPrefixes {
			if rest, ok := cutPrefixFold(s, p); ok {
				s, hosted = rest, true
				break
			}
		}
		if rest, ok := cutPrefixFold(s, "www.github.com/"); ok {
			s, hosted = rest, true
		} else if rest, ok := cutPrefixFold(s, "github.com/"); ok {
			s, hosted = rest, true
		} else if hosted {
			return "", "", lserrors.New(lserrors.ErrCodeInvalidLocator, "not a GitHub repository URL: %q", input)
		}
	}

	parts := strings.Split(strings.Trim(s, "/"), "/")
	if len(parts) < 2 || (!hosted && len(parts) != 2) {
		return "", "", lserrors.New(lserrors.ErrCodeInvalidLocator, "expected owner/repo or a GitHub URL, got %q", input)
	}
	owner, repo = parts[0], strings.TrimSuffix(parts[1], ".git")

	if err := ValidateRepoRef(owner, repo); err != nil {
		return "", "", lserrors.Wrap(lserrors.ErrCodeInvalidLocator, err, "invalid repository %q", input)
	}
	return owner, repo, nil
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}
	return s, false
}
