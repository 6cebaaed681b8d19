// Package github reads manifest files from GitHub repositories.
//
// # Usage
//
//	owner, repo, err := github.ParseLocator("https://github.com/pallets/flask")
//	if err != nil {
//	    return err // INVALID_LOCATOR
//	}
//
//	client := github.NewRawClient(token, "", 0)
//	text, err := client.FetchFile(ctx, owner, repo, "pyproject.toml", "main")
//	if errors.Is(err, integrations.ErrNotFound) {
//	    // try the next candidate or branch
//	}
//
// # Authentication
//
// Public repositories need no token. A token, when set, is sent as a bearer
// credential and allows reading private repositories.
//
// # Validation
//
// Owner, repository, branch and file names are validated before any request
// is built, so user input never shapes the request path beyond one segment
// each.
package github
