package analysis

import (
	"strings"
)

// Row is one record; cells are aligned with the owning Table's Columns.
type Row []Value

// Table is an ordered set of named columns and rows. Tables are treated as
// immutable: every pipeline step returns a new Table and never writes to the
// Rows of its input.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable builds a Table from already-typed rows. Rows shorter than the
// header are padded with Missing; longer rows are truncated.
func NewTable(columns []string, rows []Row) *Table {
	cols := append([]string(nil), columns...)
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, normalizeRow(r, len(cols)))
	}
	return &Table{Columns: cols, Rows: out}
}

// FromRecords builds a raw Table from string records, parsing every cell
// with ParseValue.
func FromRecords(header []string, records [][]string) *Table {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		r := make(Row, len(rec))
		for i, raw := range rec {
			r[i] = ParseValue(raw)
		}
		rows = append(rows, r)
	}
	return NewTable(header, rows)
}

func normalizeRow(r Row, n int) Row {
	out := make(Row, n)
	copy(out, r)
	return out
}

// Len returns the row count.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Index returns the position of the named column, or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the value of column name in row r, Missing if absent.
func (t *Table) Cell(r Row, name string) Value {
	i := t.Index(name)
	if i < 0 || i >= len(r) {
		return MissingValue()
	}
	return r[i]
}

// Head returns a new Table holding at most n leading rows.
func (t *Table) Head(n int) *Table {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	if n < 0 {
		n = 0
	}
	return &Table{Columns: t.Columns, Rows: t.Rows[:n:n]}
}

// with returns a Table sharing t's columns and holding rows.
func (t *Table) with(rows []Row) *Table {
	return &Table{Columns: t.Columns, Rows: rows}
}

// Clean removes fully-missing rows, then exact duplicate rows keeping the
// first occurrence, then trims whitespace from column names. Cell values are
// left as-is. The input is not modified.
func Clean(raw *Table) (*Table, error) {
	if raw == nil || len(raw.Columns) == 0 {
		return nil, &EmptyInputError{}
	}
	seen := make(map[string]struct{}, len(raw.Rows))
	rows := make([]Row, 0, len(raw.Rows))
	for _, r := range raw.Rows {
		r = normalizeRow(r, len(raw.Columns))
		if allMissing(r) {
			continue
		}
		k := rowKey(r)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		rows = append(rows, r)
	}
	cols := make([]string, len(raw.Columns))
	for i, c := range raw.Columns {
		cols[i] = strings.TrimSpace(c)
	}
	return &Table{Columns: cols, Rows: rows}, nil
}

func allMissing(r Row) bool {
	for _, v := range r {
		if !v.IsMissing() {
			return false
		}
	}
	return true
}

func rowKey(r Row) string {
	var b strings.Builder
	for i, v := range r {
		if i > 0 {
			b.WriteByte(0x1f)
		}
		b.WriteString(v.key())
	}
	return b.String()
}
