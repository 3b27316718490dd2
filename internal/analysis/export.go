package analysis

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ExportFileName is the default download name for a ranked view.
func ExportFileName(topN int, metric string) string {
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, metric)
	return fmt.Sprintf("top_%d_players_by_%s.csv", topN, safe)
}

// WriteCSV writes the ranked view with a leading Rank column. columns is the
// display order; when nil it is taken from the first entry.
func WriteCSV(w io.Writer, entries []RankedEntry, columns []string) error {
	if columns == nil && len(entries) > 0 {
		columns = entries[0].Columns
	}
	cw := csv.NewWriter(w)
	header := append([]string{"Rank"}, columns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range entries {
		rec := make([]string, 0, len(columns)+1)
		rec = append(rec, fmt.Sprintf("%d", e.Rank))
		for _, c := range columns {
			rec = append(rec, e.Value(c).String())
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write rank %d: %w", e.Rank, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
