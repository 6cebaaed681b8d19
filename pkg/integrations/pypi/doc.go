// Package pypi fetches license metadata from the Python Package Index.
//
// # Usage
//
//	client := pypi.NewClient("", 0) // pypi.org, 5s timeout
//	license, err := client.FetchLicense(ctx, "fastapi")
//	switch {
//	case errors.Is(err, integrations.ErrNotFound):
//	    // no such project
//	case err != nil:
//	    // lookup failed
//	case license == "":
//	    // project declares no license
//	}
//
// # License Extraction
//
// PyPI exposes a license in three places. [Client.FetchLicense] uses the
// first that is set:
//
//   - license_expression (PEP 639 SPDX expression)
//   - license (free text, often the full license file; the first non-blank
//     line is used and "UNKNOWN" is ignored)
//   - "License :: ..." trove classifiers (last segment; several are joined
//     with " OR ")
//
// The result is cut to [MaxLicenseLength] runes. Package names are normalized
// following PEP 503 before the request.
package pypi
