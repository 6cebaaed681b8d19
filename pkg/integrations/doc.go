// Package integrations provides HTTP clients for the services a license check
// talks to.
//
// # Overview
//
// Each upstream has its own subpackage:
//
//   - [github]: raw manifest files from GitHub repositories, and locator parsing
//   - [pypi]: license metadata from the Python Package Index
//
// # Shared Infrastructure
//
// The [Client] type provides the HTTP plumbing both use: default headers, a
// per-client timeout, retries for transient failures via [httputil.Retry],
// and status mapping. A 404 becomes [ErrNotFound]; every other failure wraps
// [ErrNetwork]. Callers tell "absent" from "broken" with errors.Is.
//
// Responses are never cached. Each check sees upstream state as it is.
//
// [github]: github.com/matzehuels/licensescan/pkg/integrations/github
// [pypi]: github.com/matzehuels/licensescan/pkg/integrations/pypi
// [httputil.Retry]: github.com/matzehuels/licensescan/pkg/httputil.Retry
package integrations
