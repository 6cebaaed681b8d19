package license

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(nil)

	tests := []struct {
		license string
		want    Category
	}{
		{"", Unknown},
		{"   ", Unknown},
		{"MIT", Free},
		{"mit", Free},
		{"Apache-2.0", Free},
		{"Apache Software License", Free},
		{"BSD-3-Clause", Free},
		{"ISC License (ISCL)", Free},
		{"OSI Approved", Free},
		{"The MIT License (MIT)", Free},
		{"Apache License, Version 2.0 (see LICENSE)", Free},
		{"GPL", Paid},
		{"GPL-3.0-only", Paid},
		{"GNU General Public License v3 (GPLv3)", Paid},
		{"GNU General Public License", Paid},
		{"AGPL-3.0", Paid},
		{"LGPL-2.1", Paid},
		{"GNU Lesser General Public License v3 or later (LGPLv3+)", Paid},
		{"Commercial", Paid},
		{"Proprietary", Paid},
		{"Other/Proprietary License", Paid},
		{"30-day trial", Paid},
		{"MPL-2.0", Warning},
		{"Mozilla Public License 2.0 (MPL 2.0)", Warning},
		{"EUPL 1.2", Warning},
		{"Eclipse Public License 2.0", Warning},
		{"Proprietary, limited use", Paid},
		{"Industrial Use Only", Unknown},
		{"Submittal terms", Unknown},
		{"Dual License", Unknown},
		{"See LICENSE file", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.license, func(t *testing.T) {
			got := c.Classify(tt.license)
			assert.Equal(t, tt.want, got.Category)
			assert.NotEmpty(t, got.Note)
		})
	}
}

func TestClassify_Notes(t *testing.T) {
	c := NewClassifier(nil)

	assert.Equal(t, NoteUnavailable, c.Classify("").Note)
	assert.Equal(t, NoteUnknown, c.Classify("WTFPL-ish").Note)
	assert.Equal(t, NoteCopyleft, c.Classify("MPL-2.0").Note)
	assert.Equal(t, noteLGPL, c.Classify("LGPL-3.0").Note)
	assert.Equal(t, noteGPL, c.Classify("gpl-3.0").Note)
}

func TestClassify_Idempotent(t *testing.T) {
	c := NewClassifier(nil)
	inputs := []string{"", "MIT", "GPL", "MPL-2.0", "??", "Proprietary", "zzz commercial zzz"}
	for _, in := range inputs {
		first := c.Classify(in)
		second := c.Classify(in)
		assert.Equal(t, first, second, "Classify(%q) not stable", in)
		assert.Contains(t, Categories(), first.Category)
	}
}

func TestClassify_ExactMatchWins(t *testing.T) {
	// The first input also contains the free key by substring; the exact
	// paid entry has to decide.
	tables := &Tables{
		Free: []Rule{{"gpl-friendly", "free note"}},
		Paid: []Rule{{"gpl", "generic"}, {"gpl-friendly-strict", "exact paid"}},
	}
	c := NewClassifier(tables)

	got := c.Classify("GPL-Friendly-Strict")
	assert.Equal(t, Paid, got.Category)
	assert.Equal(t, "exact paid", got.Note)

	got = c.Classify("gpl-friendly")
	assert.Equal(t, Free, got.Category)
	assert.Equal(t, "free note", got.Note)
}

func TestClassify_SubstringPrefersFreeTable(t *testing.T) {
	tables := &Tables{
		Free: []Rule{{"open", "free note"}},
		Paid: []Rule{{"source", "paid note"}},
	}
	c := NewClassifier(tables)

	got := c.Classify("Open Source Something")
	assert.Equal(t, Free, got.Category)
	assert.Equal(t, "free note", got.Note)
}

func TestClassify_VendorMarkersOutsideTables(t *testing.T) {
	c := NewClassifier(&Tables{Vendor: []string{"commercial", "proprietary"}})

	got := c.Classify("Acme Commercial EULA")
	assert.Equal(t, Paid, got.Category)
	assert.Equal(t, NoteVendor, got.Note)
}

func TestClassify_KeysMatchAtWordStart(t *testing.T) {
	c := NewClassifier(nil)

	got := c.Classify("Proprietary, limited use")
	assert.Equal(t, Paid, got.Category)
	assert.Equal(t, noteProprietary, got.Note)

	got = c.Classify("MIT-style, see LICENSE")
	assert.Equal(t, Free, got.Category)

	got = c.Classify("Industrial Use Only")
	assert.Equal(t, Unknown, got.Category)
	assert.Equal(t, NoteUnknown, got.Note)
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		s, key string
		want   bool
	}{
		{"mit", "mit", true},
		{"the mit license", "mit", true},
		{"(mit)", "mit", true},
		{"limited", "mit", false},
		{"limited mit", "mit", true},
		{"industrial", "trial", false},
		{"lgplv3", "gpl", false},
		{"(lgplv3+)", "lgpl", true},
		{"", "mit", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, containsWord(tt.s, tt.key), "containsWord(%q, %q)", tt.s, tt.key)
	}
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []Category{Free, Paid, Warning, Unknown}, Categories())
}
