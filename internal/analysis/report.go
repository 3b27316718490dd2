package analysis

import (
	"errors"
	"fmt"
	"strings"
)

// View is the rendered state of one ranking request: the dataset shape, the
// active filters, the summary of the filtered rows and the ranked entries.
type View struct {
	Name     string
	Rows     int
	Columns  int
	Criteria FilterCriteria
	Params   RankParams
	Filtered *Table
	Summary  Summary
	Ranked   []RankedEntry
	Warnings []string
}

// BuildView filters and ranks a cleaned table in one pass.
func BuildView(name string, t *Table, cls *Classification, crit FilterCriteria, p RankParams) (*View, error) {
	filtered := Filter(t, cls, crit)
	ranked, err := Rank(filtered, cls, p)
	if err != nil {
		return nil, err
	}
	sum, err := Summarize(filtered, cls, p.Metric)
	if err != nil {
		return nil, err
	}
	v := &View{
		Name:     name,
		Rows:     t.Len(),
		Columns:  len(t.Columns),
		Criteria: crit,
		Params:   p,
		Filtered: filtered,
		Summary:  sum,
		Ranked:   ranked,
	}
	if filtered.Len() == 0 {
		v.Warnings = append(v.Warnings, "no rows match the current filters")
	} else if len(ranked) < p.TopN {
		v.Warnings = append(v.Warnings, fmt.Sprintf("only %d rows qualified for top %d", len(ranked), p.TopN))
	}
	return v, nil
}

// FormatStat renders a statistic with two decimals, or N/A when there is no
// data behind it or it is indeterminate. Other errors are returned unchanged.
func FormatStat(x float64, err error) (string, error) {
	var nd *NoDataError
	var ind *IndeterminateError
	if errors.As(err, &nd) || errors.As(err, &ind) {
		return "N/A", nil
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%.2f", x), nil
}

// Markdown renders a compact report of the view.
func (v *View) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if v.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", v.Name))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", v.Rows))
	b.WriteString(fmt.Sprintf("Columns: %d\n\n", v.Columns))

	b.WriteString("[FILTERS]\n")
	b.WriteString(fmt.Sprintf("- Minimum games: %d\n", v.Criteria.MinGames))
	b.WriteString(fmt.Sprintf("- Team: %s\n", orAll(v.Criteria.Team, AllTeams)))
	b.WriteString(fmt.Sprintf("- Position: %s\n", orAll(v.Criteria.Position, AllPositions)))

	b.WriteString("\n[SUMMARY]\n")
	mean, _ := FormatStat(v.Summary.Mean())
	hi, _ := FormatStat(v.Summary.Max())
	b.WriteString(fmt.Sprintf("- Players analyzed: %d\n", v.Summary.Count))
	b.WriteString(fmt.Sprintf("- Average %s: %s\n", v.Params.Metric, mean))
	b.WriteString(fmt.Sprintf("- Highest %s: %s\n", v.Params.Metric, hi))

	if len(v.Ranked) > 0 {
		cols := v.Ranked[0].Columns
		b.WriteString(fmt.Sprintf("\n[TOP %d BY %s]\n", v.Params.TopN, strings.ToUpper(safeName(v.Params.Metric))))
		b.WriteString("| Rank")
		for _, c := range cols {
			b.WriteString(" | ")
			b.WriteString(safeName(c))
		}
		b.WriteString(" |\n|---")
		for range cols {
			b.WriteString("|---")
		}
		b.WriteString("|\n")
		for _, e := range v.Ranked {
			b.WriteString(fmt.Sprintf("| %d", e.Rank))
			for _, val := range e.Values {
				b.WriteString(" | ")
				b.WriteString(safeVal(val.String()))
			}
			b.WriteString(" |\n")
		}
	}
	if len(v.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range v.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func orAll(s, sentinel string) string {
	if isSentinel(s) {
		return sentinel
	}
	return s
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
