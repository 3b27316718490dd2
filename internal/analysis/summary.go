package analysis

import (
	"math"
)

// Summary aggregates one metric over a filtered table.
type Summary struct {
	Column string
	// Count is the number of rows considered, missing values included.
	Count int
	// Valid is the number of non-missing values.
	Valid int
	mean  float64
	max   float64
	// infinite values are kept out of the running mean.
	posInf, negInf int
}

// Mean returns the arithmetic mean of the non-missing values. It is +Inf or
// -Inf when only one kind of infinity is present, and indeterminate when both
// are.
func (s Summary) Mean() (float64, error) {
	switch {
	case s.Valid == 0:
		return 0, &NoDataError{Column: s.Column}
	case s.posInf > 0 && s.negInf > 0:
		return 0, &IndeterminateError{Column: s.Column}
	case s.posInf > 0:
		return math.Inf(1), nil
	case s.negInf > 0:
		return math.Inf(-1), nil
	}
	return s.mean, nil
}

// Max returns the largest non-missing value.
func (s Summary) Max() (float64, error) {
	if s.Valid == 0 {
		return 0, &NoDataError{Column: s.Column}
	}
	return s.max, nil
}

// Summarize computes row count, mean and max of a metric column.
func Summarize(t *Table, cls *Classification, metric string) (Summary, error) {
	if !cls.IsMetric(metric) {
		return Summary{}, &UnknownMetricError{Column: metric}
	}
	s := Summary{Column: metric, Count: t.Len(), max: math.Inf(-1)}
	mi := t.Index(metric)
	if mi < 0 {
		return Summary{}, &UnknownMetricError{Column: metric}
	}
	// Welford keeps the running mean stable for long columns.
	finite := 0
	for _, r := range t.Rows {
		x, ok := number(r[mi])
		if !ok {
			continue
		}
		s.Valid++
		if x > s.max {
			s.max = x
		}
		switch {
		case math.IsInf(x, 1):
			s.posInf++
		case math.IsInf(x, -1):
			s.negInf++
		default:
			finite++
			s.mean += (x - s.mean) / float64(finite)
		}
	}
	return s, nil
}

// number returns the numeric content of a cell; NaN counts as missing.
func number(v Value) (float64, bool) {
	x, ok := v.Number()
	if !ok || math.IsNaN(x) {
		return 0, false
	}
	return x, true
}
