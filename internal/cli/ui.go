package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/licensescan/pkg/license"
	"github.com/matzehuels/licensescan/pkg/report"
	"github.com/matzehuels/licensescan/pkg/resolve"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

// categoryColors gives each license category its accent.
var categoryColors = map[license.Category]lipgloss.Color{
	license.Free:    colorGreen,
	license.Paid:    colorRed,
	license.Warning: colorYellow,
	license.Unknown: colorGray,
}

func categoryStyle(c license.Category) lipgloss.Style {
	color, ok := categoryColors[c]
	if !ok {
		color = colorGray
	}
	return lipgloss.NewStyle().Foreground(color)
}

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconBullet  = "•"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printError prints an error message.
func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+StyleDim.Render(msg))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Report Output
// =============================================================================

// renderReport prints res with the terminal palette. The content matches
// report.Text; only the decoration differs.
func renderReport(w io.Writer, res *resolve.Result) {
	fmt.Fprintln(w, StyleTitle.Render("License report for "+res.Repository.String()))

	switch res.Outcome {
	case resolve.OutcomeNoManifest:
		printWarning(w, "No supported dependency manifest found.")
		printDetail(w, "Searched: %s", strings.Join(res.Searched, ", "))
		return
	case resolve.OutcomeEmptyManifest:
		printKeyValue(w, "Manifest", fmt.Sprintf("%s (branch %s)", res.FileName, res.Branch))
		printInfo(w, "The manifest lists no packages.")
		return
	}

	printKeyValue(w, "Manifest", fmt.Sprintf("%s (branch %s)", res.FileName, res.Branch))

	grouped := res.Grouped()
	for _, cat := range license.Categories() {
		recs := grouped[cat]
		if len(recs) == 0 {
			continue
		}
		style := categoryStyle(cat)
		fmt.Fprintln(w)
		fmt.Fprintln(w, style.Bold(true).Render(report.Heading(cat))+" "+StyleDim.Render(fmt.Sprintf("[%s]", cat))+" "+StyleNumber.Render(fmt.Sprintf("(%d)", len(recs))))
		for _, rec := range recs {
			fmt.Fprintf(w, "  %s %s %s\n", style.Render(iconBullet), StyleValue.Render(rec.Name), StyleDim.Render(report.LicenseLabel(rec)))
			printDetail(w, "  %s", rec.Note)
		}
	}

	fmt.Fprintln(w)
	summary := report.Summary(res)
	counts := res.Counts()
	switch {
	case counts[license.Paid] > 0:
		printError(w, "%s", summary)
	case counts[license.Warning] > 0 || counts[license.Unknown] > 0:
		printWarning(w, "%s", summary)
	default:
		printSuccess(w, "%s", summary)
	}
}
