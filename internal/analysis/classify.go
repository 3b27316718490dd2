package analysis

import (
	"strings"
)

// ColumnKind is the role a column plays in filtering and ranking.
type ColumnKind uint8

const (
	Identity ColumnKind = iota
	Categorical
	Count
	Metric
)

func (k ColumnKind) String() string {
	switch k {
	case Identity:
		return "identity"
	case Categorical:
		return "categorical"
	case Count:
		return "count"
	case Metric:
		return "metric"
	default:
		return "unknown"
	}
}

// ClassifierOptions names the well-known columns. Names match
// case-insensitively against the cleaned header.
type ClassifierOptions struct {
	Identity string
	Team     string
	Position string
	Count    string
	// Extra lists further categorical columns beyond Team and Position.
	Extra []string
}

// DefaultClassifierOptions returns the basketball box-score naming.
func DefaultClassifierOptions() ClassifierOptions {
	return ClassifierOptions{
		Identity: "Player",
		Team:     "Tm",
		Position: "Pos",
		Count:    "G",
	}
}

// Classification partitions a table's columns by kind and records the
// resolved names of the columns the filters use.
type Classification struct {
	Identity string
	Team     string
	Position string
	Count    string

	order []string
	kinds map[string]ColumnKind
}

// Kind returns the classification of a column.
func (c *Classification) Kind(column string) (ColumnKind, bool) {
	k, ok := c.kinds[column]
	return k, ok
}

// IsMetric reports whether column is eligible for ranking and summaries.
func (c *Classification) IsMetric(column string) bool {
	k, ok := c.kinds[column]
	return ok && k == Metric
}

// Columns returns the columns of the given kind in table order.
func (c *Classification) Columns(kind ColumnKind) []string {
	var out []string
	for _, name := range c.order {
		if c.kinds[name] == kind {
			out = append(out, name)
		}
	}
	return out
}

// Metrics is shorthand for Columns(Metric).
func (c *Classification) Metrics() []string { return c.Columns(Metric) }

// Partition returns every kind mapped to its columns in table order.
func (c *Classification) Partition() map[ColumnKind][]string {
	out := map[ColumnKind][]string{}
	for _, name := range c.order {
		k := c.kinds[name]
		out[k] = append(out[k], name)
	}
	return out
}

// Classify tags every column of a cleaned table. Named columns win over type
// detection; any other column is Metric when all of its present values are
// numeric and at least one is present, otherwise Categorical.
func Classify(t *Table, opt ClassifierOptions) (*Classification, error) {
	if t == nil || len(t.Columns) == 0 {
		return nil, &EmptyInputError{}
	}
	def := DefaultClassifierOptions()
	if opt.Identity == "" {
		opt.Identity = def.Identity
	}
	if opt.Team == "" {
		opt.Team = def.Team
	}
	if opt.Position == "" {
		opt.Position = def.Position
	}
	if opt.Count == "" {
		opt.Count = def.Count
	}
	categorical := map[string]bool{
		strings.ToLower(opt.Team):     true,
		strings.ToLower(opt.Position): true,
	}
	for _, e := range opt.Extra {
		categorical[strings.ToLower(strings.TrimSpace(e))] = true
	}

	c := &Classification{kinds: make(map[string]ColumnKind, len(t.Columns))}
	for idx, name := range t.Columns {
		if _, dup := c.kinds[name]; dup {
			continue
		}
		lower := strings.ToLower(name)
		var kind ColumnKind
		switch {
		case lower == strings.ToLower(opt.Identity):
			kind = Identity
			if c.Identity == "" {
				c.Identity = name
			}
		case categorical[lower]:
			kind = Categorical
			if c.Team == "" && strings.EqualFold(name, opt.Team) {
				c.Team = name
			}
			if c.Position == "" && strings.EqualFold(name, opt.Position) {
				c.Position = name
			}
		case lower == strings.ToLower(opt.Count):
			kind = Count
			if c.Count == "" {
				c.Count = name
			}
		case numericColumn(t, idx):
			kind = Metric
		default:
			kind = Categorical
		}
		c.order = append(c.order, name)
		c.kinds[name] = kind
	}

	switch {
	case c.Identity == "":
		return nil, &MissingRequiredColumnError{Role: "identity", Name: opt.Identity}
	case c.Count == "":
		return nil, &MissingRequiredColumnError{Role: "count", Name: opt.Count}
	case c.Team == "":
		return nil, &MissingRequiredColumnError{Role: "team", Name: opt.Team}
	case c.Position == "":
		return nil, &MissingRequiredColumnError{Role: "position", Name: opt.Position}
	}
	return c, nil
}

func numericColumn(t *Table, idx int) bool {
	present := 0
	for _, r := range t.Rows {
		if idx >= len(r) {
			continue
		}
		v := r[idx]
		if v.IsMissing() {
			continue
		}
		if !v.IsNumeric() {
			return false
		}
		present++
	}
	return present > 0
}
