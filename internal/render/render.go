// Package render draws pipeline outputs for the terminal: the ranked table,
// the side-by-side comparison, a bar chart of the top entries and a histogram
// of the filtered distribution.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/KaramelBytes/statlens-cli/internal/analysis"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
)

// DefaultWidth is the bar area width used when none is given.
const DefaultWidth = 40

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numStyle    = cellStyle.Align(lipgloss.Right)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func grid(headers []string, rows [][]string, numeric func(col int) bool) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case numeric != nil && numeric(col):
				return numStyle
			default:
				return cellStyle
			}
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

// Ranking renders ranked entries with a leading Rank column.
func Ranking(entries []analysis.RankedEntry) string {
	if len(entries) == 0 {
		return mutedStyle.Render("(no rows match the current filters)")
	}
	cols := entries[0].Columns
	headers := append([]string{"Rank"}, cols...)
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rec := make([]string, 0, len(headers))
		rec = append(rec, fmt.Sprintf("%d", e.Rank))
		for _, v := range e.Values {
			rec = append(rec, v.String())
		}
		rows[i] = rec
	}
	numeric := func(col int) bool {
		if col == 0 {
			return true
		}
		return entries[0].Values[col-1].IsNumeric()
	}
	return grid(headers, rows, numeric)
}

// Preview renders the leading rows of a table as-is.
func Preview(t *analysis.Table, n int) string {
	head := t.Head(n)
	rows := make([][]string, len(head.Rows))
	for i, r := range head.Rows {
		rec := make([]string, len(r))
		for j, v := range r {
			rec[j] = v.String()
		}
		rows[i] = rec
	}
	return grid(t.Columns, rows, nil)
}

// Comparison renders two subjects side by side with the metric name in the
// middle column. Values show two decimals; missing values show N/A.
func Comparison(res *analysis.ComparisonResult, nameA, nameB string) string {
	rows := make([][]string, len(res.PerMetric))
	for i, p := range res.PerMetric {
		rows[i] = []string{stat(p.A), p.Column, stat(p.B)}
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s vs %s", nameA, nameB)))
	b.WriteString("\n")
	b.WriteString(grid([]string{nameA, "Stat", nameB}, rows, func(col int) bool { return col != 1 }))
	return b.String()
}

func stat(v analysis.Value) string {
	x, ok := v.Number()
	if !ok {
		if s, isText := v.Text(); isText {
			return s
		}
		return "N/A"
	}
	return fmt.Sprintf("%.2f", x)
}

// Bars renders a horizontal bar per ranked entry for the given metric, scaled
// to the largest value. Labels are the identity column values.
func Bars(entries []analysis.RankedEntry, identity, metric string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	labels := make([]string, len(entries))
	vals := make([]float64, len(entries))
	labelW := 0
	hi := 0.0
	for i, e := range entries {
		labels[i] = e.Value(identity).String()
		if w := runewidth.StringWidth(labels[i]); w > labelW {
			labelW = w
		}
		if x, ok := e.Value(metric).Number(); ok && !math.IsNaN(x) {
			vals[i] = x
			hi = math.Max(hi, x)
		}
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Visual Comparison: " + metric))
	b.WriteString("\n")
	for i := range entries {
		n := 0
		if hi > 0 && vals[i] > 0 {
			n = int(math.Round(vals[i] / hi * float64(width)))
		}
		b.WriteString(runewidth.FillRight(labels[i], labelW))
		b.WriteString(" │")
		b.WriteString(barStyle.Render(strings.Repeat("█", n)))
		b.WriteString(" ")
		b.WriteString(entries[i].Value(metric).String())
		b.WriteString("\n")
	}
	return b.String()
}

// Histogram renders bins as horizontal bars, one line per bin.
func Histogram(bins []analysis.Bin, metric string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	most := 0
	for _, bin := range bins {
		if bin.Count > most {
			most = bin.Count
		}
	}
	labels := make([]string, len(bins))
	labelW := 0
	for i, bin := range bins {
		labels[i] = fmt.Sprintf("%.2f – %.2f", bin.Lo, bin.Hi)
		if w := runewidth.StringWidth(labels[i]); w > labelW {
			labelW = w
		}
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Distribution of " + metric))
	b.WriteString("\n")
	for i, bin := range bins {
		n := 0
		if most > 0 {
			n = int(math.Round(float64(bin.Count) / float64(most) * float64(width)))
		}
		b.WriteString(runewidth.FillLeft(labels[i], labelW))
		b.WriteString(" │")
		b.WriteString(barStyle.Render(strings.Repeat("█", n)))
		b.WriteString(fmt.Sprintf(" %d\n", bin.Count))
	}
	return b.String()
}
