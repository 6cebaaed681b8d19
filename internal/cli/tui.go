package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/licensescan/pkg/license"
	"github.com/matzehuels/licensescan/pkg/report"
	"github.com/matzehuels/licensescan/pkg/resolve"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	tabActiveStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	tabIdleStyle    = lipgloss.NewStyle().Foreground(colorGray)
	noteDetailStyle = lipgloss.NewStyle().Foreground(colorGray).Italic(true)
)

// =============================================================================
// ReportModel - Interactive report browser
// =============================================================================

// ReportModel is the bubbletea model for browsing a report one category at
// a time. Only categories with at least one dependency get a tab.
type ReportModel struct {
	Result *resolve.Result
	Tabs   []license.Category
	Tab    int
	Cursor int
	Offset int
	Height int

	groups map[license.Category][]resolve.DependencyRecord
}

// NewReportModel creates a report browser for res.
func NewReportModel(res *resolve.Result) ReportModel {
	groups := res.Grouped()
	var tabs []license.Category
	for _, cat := range license.Categories() {
		if len(groups[cat]) > 0 {
			tabs = append(tabs, cat)
		}
	}
	return ReportModel{
		Result: res,
		Tabs:   tabs,
		Height: 15,
		groups: groups,
	}
}

func (m ReportModel) Init() tea.Cmd {
	return nil
}

// current returns the records on the active tab.
func (m ReportModel) current() []resolve.DependencyRecord {
	if len(m.Tabs) == 0 {
		return nil
	}
	return m.groups[m.Tabs[m.Tab]]
}

func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			if len(m.Tabs) > 0 {
				m.Tab = (m.Tab + 1) % len(m.Tabs)
				m.Cursor, m.Offset = 0, 0
			}
		case "shift+tab", "left", "h":
			if len(m.Tabs) > 0 {
				m.Tab = (m.Tab - 1 + len(m.Tabs)) % len(m.Tabs)
				m.Cursor, m.Offset = 0, 0
			}
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.current())-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-10, 5)
	}
	return m, nil
}

func (m ReportModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("License report for " + m.Result.Repository.String()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%s (branch %s)", m.Result.FileName, m.Result.Branch)))
	b.WriteString("\n\n")

	if len(m.Tabs) == 0 {
		b.WriteString(listDimStyle.Render("No dependencies to show."))
		b.WriteString("\n")
		return b.String()
	}

	tabs := make([]string, len(m.Tabs))
	for i, cat := range m.Tabs {
		label := fmt.Sprintf("%s (%d)", report.Heading(cat), len(m.groups[cat]))
		if i == m.Tab {
			tabs[i] = tabActiveStyle.Foreground(categoryColors[cat]).Render(label)
		} else {
			tabs[i] = tabIdleStyle.Render(label)
		}
	}
	b.WriteString(strings.Join(tabs, listDimStyle.Render("  │  ")))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("⇥ next category  ↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	recs := m.current()
	end := min(m.Offset+m.Height, len(recs))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, recs[i].Name, report.LicenseLabel(recs[i])})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	accent := categoryStyle(m.Tabs[m.Tab])

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Package", "License").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return accent.Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	if m.Cursor < len(recs) {
		b.WriteString(noteDetailStyle.Render(recs[m.Cursor].Note))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  %s", m.Cursor+1, len(recs), report.Summary(m.Result))))

	return b.String()
}

// runInteractive opens the report browser and blocks until the user quits.
func runInteractive(res *resolve.Result) error {
	_, err := tea.NewProgram(NewReportModel(res), tea.WithAltScreen()).Run()
	return err
}
