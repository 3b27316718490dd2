package analysis

// MetricPair is one line of a side-by-side comparison.
type MetricPair struct {
	Column string
	A, B   Value
}

// ComparisonResult holds two subjects and their metric values.
type ComparisonResult struct {
	SubjectA  Row
	SubjectB  Row
	PerMetric []MetricPair
}

// Compare looks up the first row for each identity value in the cleaned,
// unfiltered table and pairs their metric values in the order requested.
// An empty metrics list compares every metric column. Comparing a subject
// with itself is allowed.
func Compare(t *Table, cls *Classification, a, b string, metrics []string) (*ComparisonResult, error) {
	if len(metrics) == 0 {
		metrics = cls.Metrics()
	}
	idx := make([]int, len(metrics))
	for i, m := range metrics {
		if !cls.IsMetric(m) {
			return nil, &UnknownMetricError{Column: m}
		}
		idx[i] = t.Index(m)
		if idx[i] < 0 {
			return nil, &UnknownMetricError{Column: m}
		}
	}
	ra, err := lookup(t, cls, a)
	if err != nil {
		return nil, err
	}
	rb, err := lookup(t, cls, b)
	if err != nil {
		return nil, err
	}
	res := &ComparisonResult{SubjectA: ra, SubjectB: rb, PerMetric: make([]MetricPair, len(metrics))}
	for i, m := range metrics {
		res.PerMetric[i] = MetricPair{Column: m, A: ra[idx[i]], B: rb[idx[i]]}
	}
	return res, nil
}

func lookup(t *Table, cls *Classification, id string) (Row, error) {
	ii := t.Index(cls.Identity)
	if ii >= 0 {
		for _, r := range t.Rows {
			if !r[ii].IsMissing() && r[ii].String() == id {
				return r, nil
			}
		}
	}
	return nil, &SubjectNotFoundError{Identity: id}
}
