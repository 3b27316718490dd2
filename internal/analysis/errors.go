package analysis

import "fmt"

// EmptyInputError indicates a table with no columns at all.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string { return "empty input: table has no columns" }

// MissingRequiredColumnError indicates that a column the filters depend on
// (identity, count, team or position) is absent.
type MissingRequiredColumnError struct {
	Role string // identity|count|team|position
	Name string
}

func (e *MissingRequiredColumnError) Error() string {
	return fmt.Sprintf("missing required %s column %q", e.Role, e.Name)
}

// UnknownMetricError indicates a column that is not classified as Metric was
// used where a metric is required.
type UnknownMetricError struct {
	Column string
}

func (e *UnknownMetricError) Error() string {
	return fmt.Sprintf("unknown metric %q: not a numeric metric column", e.Column)
}

// UnknownColumnError indicates a requested display column that the table does
// not have.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q", e.Column)
}

// SubjectNotFoundError indicates no row carries the given identity value.
type SubjectNotFoundError struct {
	Identity string
}

func (e *SubjectNotFoundError) Error() string {
	return fmt.Sprintf("subject not found: %q", e.Identity)
}

// NoDataError indicates a statistic was requested over zero non-missing values.
type NoDataError struct {
	Column string
}

func (e *NoDataError) Error() string {
	if e == nil || e.Column == "" {
		return "no data"
	}
	return fmt.Sprintf("no data for %q", e.Column)
}

// IndeterminateError indicates a statistic with no defined value, such as the
// mean of a column holding both +Inf and -Inf.
type IndeterminateError struct {
	Column string
}

func (e *IndeterminateError) Error() string {
	return fmt.Sprintf("mean of %q is indeterminate: column holds both +Inf and -Inf", e.Column)
}
