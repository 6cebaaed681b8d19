package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/licensescan/pkg/license"
	"github.com/matzehuels/licensescan/pkg/resolve"
)

func sampleResult() *resolve.Result {
	return &resolve.Result{
		Repository: resolve.Locator{Owner: "o", Repo: "r"},
		Outcome:    resolve.OutcomeReport,
		FileName:   "requirements.txt",
		Branch:     "main",
		Records: []resolve.DependencyRecord{
			{Name: "requests", License: "Apache-2.0", Category: license.Free, Note: "free note"},
			{Name: "urllib3", License: "MIT", Category: license.Free, Note: "free note"},
			{Name: "pyqt5", License: "GPL v3", Category: license.Paid, Note: "paid note"},
			{Name: "mystery", Status: resolve.StatusAbsent, Category: license.Unknown, Note: "unknown note"},
		},
	}
}

func press(m tea.Model, key tea.KeyMsg) ReportModel {
	next, _ := m.Update(key)
	return next.(ReportModel)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestReportModelTabs(t *testing.T) {
	m := NewReportModel(sampleResult())

	want := []license.Category{license.Free, license.Paid, license.Unknown}
	if len(m.Tabs) != len(want) {
		t.Fatalf("Tabs = %v, want %v", m.Tabs, want)
	}
	for i := range want {
		if m.Tabs[i] != want[i] {
			t.Errorf("Tabs[%d] = %v, want %v", i, m.Tabs[i], want[i])
		}
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Tab != 1 {
		t.Errorf("after tab, Tab = %d, want 1", m.Tab)
	}
	m = press(m, runes("l"))
	m = press(m, runes("l"))
	if m.Tab != 0 {
		t.Errorf("tab should wrap around, got %d", m.Tab)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Tab != 2 {
		t.Errorf("shift+tab from first should wrap to last, got %d", m.Tab)
	}
}

func TestReportModelCursor(t *testing.T) {
	m := NewReportModel(sampleResult())

	m = press(m, runes("k"))
	if m.Cursor != 0 {
		t.Errorf("cursor moved above first row: %d", m.Cursor)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor != 1 {
		t.Errorf("cursor = %d, want 1 (two free records)", m.Cursor)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Cursor != 0 {
		t.Errorf("switching tabs should reset the cursor, got %d", m.Cursor)
	}
}

func TestReportModelQuit(t *testing.T) {
	m := NewReportModel(sampleResult())
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestReportModelView(t *testing.T) {
	m := NewReportModel(sampleResult())

	view := m.View()
	for _, s := range []string{"License report for o/r", "requests", "urllib3", "Apache-2.0", "free note"} {
		if !strings.Contains(view, s) {
			t.Errorf("view missing %q", s)
		}
	}
	if strings.Contains(view, "pyqt5") {
		t.Error("paid record shown on the free tab")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "pyqt5") {
		t.Error("paid tab should list pyqt5")
	}
}

func TestReportModelEmpty(t *testing.T) {
	res := sampleResult()
	res.Records = nil
	m := NewReportModel(res)
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "No dependencies to show.") {
		t.Error("empty report should say so")
	}
}
