// Package license classifies package licenses by commercial-use risk.
//
// A [Classifier] maps a free-text license string, as reported by a package
// registry, to one of four categories:
//
//   - [Free]: permissive licenses (MIT, Apache, BSD, ISC, ...)
//   - [Paid]: copyleft families and vendor licenses that may require a paid
//     agreement (GPL, AGPL, LGPL, commercial, proprietary, trial)
//   - [Warning]: other copyleft-style licenses (MPL, EPL, EUPL, ...)
//   - [Unknown]: no license, or one the tables do not recognize
//
// The lookup data lives in [Tables], built once with [DefaultTables] and
// handed to [NewClassifier]. Matching is case-insensitive: exact matches
// first, then substring matches over the free table and then the paid
// table, then the copyleft and vendor markers.
package license
