package license

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Category is the commercial-use classification of a license.
type Category string

const (
	Free    Category = "free"    // permissive, usable commercially
	Paid    Category = "paid"    // copyleft or vendor license; may need a paid agreement
	Warning Category = "warning" // copyleft family outside the known tables
	Unknown Category = "unknown" // missing or unrecognized
)

// Categories returns every category in report order.
func Categories() []Category {
	return []Category{Free, Paid, Warning, Unknown}
}

// Fallback notes for results that did not come from a table rule.
const (
	NoteUnavailable = "License information unavailable."
	NoteCopyleft    = "Copyleft-style license; review obligations before commercial use."
	NoteVendor      = "Appears to be a commercial or proprietary license; confirm terms with the vendor."
	NoteUnknown     = "Unrecognized license; verify terms manually."
)

// Classification is the outcome of classifying one license string.
type Classification struct {
	Category Category `json:"category"`
	Note     string   `json:"note"`
}

// Classifier assigns a [Category] to license strings.
//
// The zero value is not usable; create one with [NewClassifier]. A
// Classifier never mutates its tables and is safe for concurrent use.
type Classifier struct {
	tables *Tables
	free   map[string]string
	paid   map[string]string
}

// NewClassifier creates a Classifier over tables. A nil tables uses
// [DefaultTables].
func NewClassifier(tables *Tables) *Classifier {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Classifier{
		tables: tables,
		free:   index(tables.Free),
		paid:   index(tables.Paid),
	}
}

func index(rules []Rule) map[string]string {
	m := make(map[string]string, len(rules))
	for _, r := range rules {
		if _, dup := m[r.Key]; !dup {
			m[r.Key] = r.Note
		}
	}
	return m
}

// Classify returns the category and note for license. Rules are tried in
// order: exact free match, exact paid match, substring match over the free
// then the paid table, copyleft markers, vendor markers. An empty license
// is Unknown.
//
// Exact matches run first so that a short key inside a longer license name
// (for example "gpl" inside "lgpl-3.0") never shadows the precise entry.
// Substring rules only match where a word starts, so "mit" does not hit
// "limited" and "trial" does not hit "industrial".
func (c *Classifier) Classify(license string) Classification {
	s := strings.ToLower(strings.TrimSpace(license))
	if s == "" {
		return Classification{Unknown, NoteUnavailable}
	}

	if note, ok := c.free[s]; ok {
		return Classification{Free, note}
	}
	if note, ok := c.paid[s]; ok {
		return Classification{Paid, note}
	}

	for _, r := range c.tables.Free {
		if containsWord(s, r.Key) {
			return Classification{Free, r.Note}
		}
	}
	for _, r := range c.tables.Paid {
		if containsWord(s, r.Key) {
			return Classification{Paid, r.Note}
		}
	}

	for _, m := range c.tables.Copyleft {
		if containsWord(s, m) {
			return Classification{Warning, NoteCopyleft}
		}
	}
	for _, m := range c.tables.Vendor {
		if strings.Contains(s, m) {
			return Classification{Paid, NoteVendor}
		}
	}

	return Classification{Unknown, NoteUnknown}
}

// containsWord reports whether key occurs in s at the start of a word: at
// the beginning of s or after a rune that is not a letter or digit.
func containsWord(s, key string) bool {
	for from := 0; from <= len(s); {
		i := strings.Index(s[from:], key)
		if i < 0 {
			return false
		}
		i += from
		prev, _ := utf8.DecodeLastRuneInString(s[:i])
		if i == 0 || !(unicode.IsLetter(prev) || unicode.IsDigit(prev)) {
			return true
		}
		from = i + 1
	}
	return false
}
