package analysis

import (
	"sort"
)

// RankParams selects the ranking metric, the cut-off and any extra display
// columns.
type RankParams struct {
	Metric     string
	TopN       int
	Additional []string
}

// RankedEntry is one row of a ranked view. Values is aligned with Columns.
type RankedEntry struct {
	Rank    int
	Row     Row
	Columns []string
	Values  []Value
}

// Value returns the displayed value for column, Missing if not displayed.
func (e RankedEntry) Value(column string) Value {
	for i, c := range e.Columns {
		if c == column {
			return e.Values[i]
		}
	}
	return MissingValue()
}

// DisplayColumns returns identity, position, team and count, then the
// additional columns in the order given, then the metric if not yet listed.
// Duplicates are dropped.
func DisplayColumns(cls *Classification, additional []string, metric string) []string {
	cols := []string{cls.Identity, cls.Position, cls.Team, cls.Count}
	seen := map[string]bool{}
	for _, c := range cols {
		seen[c] = true
	}
	for _, c := range additional {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		cols = append(cols, c)
	}
	if !seen[metric] {
		cols = append(cols, metric)
	}
	return cols
}

// Rank sorts a filtered table by the metric in descending order, keeping
// missing values last and ties in input order, and returns the first TopN
// rows ranked 1..N. TopN below 1 is treated as 1.
func Rank(t *Table, cls *Classification, p RankParams) ([]RankedEntry, error) {
	if !cls.IsMetric(p.Metric) {
		return nil, &UnknownMetricError{Column: p.Metric}
	}
	cols := DisplayColumns(cls, p.Additional, p.Metric)
	idx := make([]int, len(cols))
	for i, c := range cols {
		idx[i] = t.Index(c)
		if idx[i] < 0 {
			return nil, &UnknownColumnError{Column: c}
		}
	}
	mi := t.Index(p.Metric)

	sorted := make([]Row, len(t.Rows))
	copy(sorted, t.Rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, aok := number(sorted[i][mi])
		b, bok := number(sorted[j][mi])
		switch {
		case !aok:
			return false
		case !bok:
			return true
		default:
			return a > b
		}
	})

	n := p.TopN
	if n < 1 {
		n = 1
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	out := make([]RankedEntry, n)
	for i := 0; i < n; i++ {
		r := sorted[i]
		vals := make([]Value, len(cols))
		for j, ci := range idx {
			vals[j] = r[ci]
		}
		out[i] = RankedEntry{Rank: i + 1, Row: r, Columns: cols, Values: vals}
	}
	return out, nil
}
