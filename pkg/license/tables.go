package license

// Rule maps a lower-case license key to the note shown for it.
type Rule struct {
	Key  string
	Note string
}

// Tables holds the lookup data the [Classifier] evaluates. Tables are plain
// data: build them once with [DefaultTables] (or by hand) and share them
// read-only.
//
// Free and Paid are ordered; substring matching walks Free before Paid and
// stops at the first hit.
type Tables struct {
	Free     []Rule
	Paid     []Rule
	Copyleft []string // markers that earn a warning when no table matched
	Vendor   []string // markers for non-open licenses outside the Paid table
}

const (
	notePermissive   = "Permissive license; free for commercial use with attribution."
	notePublicDomain = "Public domain dedication; free for commercial use."
	noteOSI          = "OSI-approved open source license; commercial use generally allowed."
	noteGPL          = "Strong copyleft; distributing derived software requires releasing its source. Commercial licensing may be needed."
	noteAGPL         = "Network copyleft; offering it as a service requires releasing source. Commercial licensing may be needed."
	noteLGPL         = "Weak copyleft; dynamic linking is usually fine, modifications must be shared. Review before commercial use."
	noteCommercial   = "Commercial license; a paid agreement is required."
	noteProprietary  = "Proprietary license; usage rights must be obtained from the vendor."
	noteTrial        = "Trial or evaluation license; not licensed for production use."
)

// DefaultTables returns the built-in classification data.
func DefaultTables() *Tables {
	return &Tables{
		Free: []Rule{
			{"mit", notePermissive},
			{"mit license", notePermissive},
			{"apache", notePermissive},
			{"apache 2.0", notePermissive},
			{"apache-2.0", notePermissive},
			{"apache license 2.0", notePermissive},
			{"apache software license", notePermissive},
			{"apache license, version 2.0", notePermissive},
			{"bsd", notePermissive},
			{"bsd license", notePermissive},
			{"bsd-2-clause", notePermissive},
			{"bsd-3-clause", notePermissive},
			{"new bsd license", notePermissive},
			{"isc", notePermissive},
			{"isc license", notePermissive},
			{"isc license (iscl)", notePermissive},
			{"psf", notePermissive},
			{"psf-2.0", notePermissive},
			{"python software foundation license", notePermissive},
			{"zlib", notePermissive},
			{"unlicense", notePublicDomain},
			{"the unlicense (unlicense)", notePublicDomain},
			{"cc0-1.0", notePublicDomain},
			{"public domain", notePublicDomain},
			{"0bsd", notePublicDomain},
			{"osi approved", noteOSI},
		},
		Paid: []Rule{
			{"lgpl", noteLGPL},
			{"lgpl-2.1", noteLGPL},
			{"lgpl-3.0", noteLGPL},
			{"lgplv3", noteLGPL},
			{"gnu lesser general public license", noteLGPL},
			{"agpl", noteAGPL},
			{"agpl-3.0", noteAGPL},
			{"agplv3", noteAGPL},
			{"gnu affero general public license v3", noteAGPL},
			{"gpl", noteGPL},
			{"gplv2", noteGPL},
			{"gplv3", noteGPL},
			{"gpl-2.0", noteGPL},
			{"gpl-3.0", noteGPL},
			{"gpl-2.0-only", noteGPL},
			{"gpl-3.0-only", noteGPL},
			{"gpl-3.0-or-later", noteGPL},
			{"gnu general public license v2 (gplv2)", noteGPL},
			{"gnu general public license v3 (gplv3)", noteGPL},
			{"gnu general public license", noteGPL},
			{"commercial", noteCommercial},
			{"commercial license", noteCommercial},
			{"proprietary", noteProprietary},
			{"other/proprietary license", noteProprietary},
			{"trial", noteTrial},
			{"evaluation", noteTrial},
		},
		Copyleft: []string{
			"copyleft", "mpl", "mozilla public license", "epl", "eclipse public license",
			"cddl", "eupl", "osl", "cc-by-sa", "sharealike", "share-alike",
		},
		Vendor: []string{"commercial", "proprietary"},
	}
}
