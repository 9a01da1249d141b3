package formatter

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/perfviz/netcompare/internal/chart"
	"github.com/perfviz/netcompare/internal/util"
)

type TableFormatter struct {
	headers []string
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{"Facet", "Breakdown", "Status", "Members", "Series", "Samples"},
	}
}

func (f *TableFormatter) Format(report *Report) error {
	fmt.Printf("Combined type: %s\n", orDash(report.CombinedType))
	fmt.Printf("Metric:        %s (%s)\n", report.Metric.Label, report.Metric.Unit)
	fmt.Printf("Aggregation:   %s\n", report.Aggregation)
	fmt.Printf("Combinations:  %d expanded, %d joined\n\n", report.Combinations, report.Joined)

	if len(report.Groups) == 0 {
		fmt.Println("No grouped data for this selection.")
	} else {
		f.printGroups(report.Groups)
	}

	f.printExtents("Time-series extents", report.Extents)
	f.printExtents("Hourly extents", report.HourlyExt)

	for _, top := range report.TopFilters {
		fmt.Printf("\nTop %s filters (%s):\n", top.FilterType, top.Status)
		for _, candidate := range top.Candidates {
			label := candidate.Label
			if label == "" {
				label = candidate.ID
			}
			fmt.Printf("  %2d. %s (%s samples)\n", candidate.Rank, label, util.FormatCount(candidate.Count))
		}
	}

	return nil
}

func (f *TableFormatter) printGroups(groups []GroupSummary) {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		facet := g.FacetID
		if g.FacetLabel != "" {
			facet = fmt.Sprintf("%s (%s)", g.FacetLabel, g.FacetID)
		}
		rows = append(rows, []string{
			facet,
			orDash(g.BreakdownID),
			string(g.Status),
			fmt.Sprintf("%d", g.Members),
			fmt.Sprintf("%d", g.Series),
			util.FormatCount(g.Samples),
		})
	}

	widths := f.columnWidths(rows)
	f.printRow(f.headers, widths)
	f.printSeparator(widths)
	for _, row := range rows {
		f.printRow(row, widths)
	}
}

// columnWidths sizes each column to its widest cell, capped so the full row
// fits the terminal when one is attached.
func (f *TableFormatter) columnWidths(rows [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, h := range f.headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	if termWidth, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && termWidth > 0 {
		total := 0
		for _, w := range widths {
			total += w + 2
		}
		// Shrink the widest column until the row fits.
		for total > termWidth {
			widest := 0
			for i := range widths {
				if widths[i] > widths[widest] {
					widest = i
				}
			}
			if widths[widest] <= 8 {
				break
			}
			widths[widest]--
			total--
		}
	}

	return widths
}

func (f *TableFormatter) printRow(cells []string, widths []int) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		truncated := runewidth.Truncate(cell, widths[i], "…")
		parts[i] = runewidth.FillRight(truncated, widths[i])
	}
	fmt.Println(strings.TrimRight(strings.Join(parts, "  "), " "))
}

func (f *TableFormatter) printSeparator(widths []int) {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w)
	}
	fmt.Println(strings.Join(parts, "  "))
}

func (f *TableFormatter) printExtents(title string, extents map[string]chart.Extent) {
	if len(extents) == 0 {
		return
	}

	keys := make([]string, 0, len(extents))
	for k := range extents {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("\n%s:\n", title)
	for _, k := range keys {
		extent := extents[k]
		fmt.Printf("  %-12s %s\n", k, util.FormatExtent(extent.Min(), extent.Max()))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
