// Package resolve runs a license check for one repository.
//
// A [Resolver] ties the pieces together:
//
//  1. Probe the candidate manifests in priority order (see
//     [deps.Candidates]), each on the primary branch and then the fallback
//     branch. The first file found wins.
//  2. Extract package names with the [deps.Dispatcher].
//  3. Look up every package's license in batches. Lookups in a batch run
//     concurrently and each settles on its own record; batches are separated
//     by a short pause so the registry is not flooded.
//  4. Classify each license and order the records by category.
//
// Collaborators are interfaces ([FileFetcher], [LicenseFetcher]) so tests can
// run the whole flow without a network.
//
// # Outcomes
//
// Resolve returns an error only when a manifest fetch fails for a reason
// other than not-found. Every other situation is a [Result]:
// [OutcomeNoManifest] lists the searched file names, [OutcomeEmptyManifest]
// names the file that listed nothing, and [OutcomeReport] carries one
// [DependencyRecord] per extracted name. A record whose lookup failed keeps
// [StatusUnavailable] and the unknown category.
package resolve
