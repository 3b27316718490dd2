package analysis

import (
	"math"
)

// DefaultBins is the bin count used when none is requested.
const DefaultBins = 20

// Bin is a half-open interval [Lo, Hi) with its value count; the last bin of
// a histogram is closed on both ends.
type Bin struct {
	Lo, Hi float64
	Count  int
}

// Histogram splits the non-missing values of a metric into equal-width bins
// between their minimum and maximum. When all values are equal the range is
// widened by half a unit on each side.
func Histogram(t *Table, cls *Classification, metric string, bins int) ([]Bin, error) {
	if !cls.IsMetric(metric) {
		return nil, &UnknownMetricError{Column: metric}
	}
	if bins <= 0 {
		bins = DefaultBins
	}
	mi := t.Index(metric)
	if mi < 0 {
		return nil, &UnknownMetricError{Column: metric}
	}
	var vals []float64
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, r := range t.Rows {
		x, ok := number(r[mi])
		if !ok || math.IsInf(x, 0) {
			continue
		}
		vals = append(vals, x)
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	if len(vals) == 0 {
		return nil, &NoDataError{Column: metric}
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	width := (hi - lo) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].Lo = lo + float64(i)*width
		out[i].Hi = lo + float64(i+1)*width
	}
	out[bins-1].Hi = hi
	for _, x := range vals {
		i := int((x - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		if i < 0 {
			i = 0
		}
		out[i].Count++
	}
	return out, nil
}
