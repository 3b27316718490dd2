package analysis

import (
	"sort"
)

// Sentinels accepted by the team and position filters to mean "no filter".
const (
	AllTeams     = "All Teams"
	AllPositions = "All Positions"
	All          = "All"
)

// FilterCriteria selects rows by participation, team and position.
type FilterCriteria struct {
	MinGames int
	Team     string
	Position string
}

func isSentinel(s string) bool {
	switch s {
	case "", All, AllTeams, AllPositions:
		return true
	}
	return false
}

// Filter keeps rows whose count column is at least MinGames and, unless the
// sentinel is given, whose team and position equal the requested values
// exactly. Rows with a missing or non-numeric count are dropped. Row order is
// preserved; an empty result is not an error.
func Filter(t *Table, cls *Classification, crit FilterCriteria) *Table {
	minGames := crit.MinGames
	if minGames < 0 {
		minGames = 0
	}
	gi := t.Index(cls.Count)
	ti := t.Index(cls.Team)
	pi := t.Index(cls.Position)
	byTeam := !isSentinel(crit.Team)
	byPos := !isSentinel(crit.Position)

	// cls describes another table's header; nothing can match.
	if gi < 0 || ti < 0 || pi < 0 {
		return t.with(nil)
	}
	rows := make([]Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		g, ok := r[gi].Number()
		if !ok || g < float64(minGames) {
			continue
		}
		if byTeam && !matches(r[ti], crit.Team) {
			continue
		}
		if byPos && !matches(r[pi], crit.Position) {
			continue
		}
		rows = append(rows, r)
	}
	return t.with(rows)
}

func matches(v Value, want string) bool {
	if v.IsMissing() {
		return false
	}
	return v.String() == want
}

// FilterChoices lists the selectable team and position values, each sorted and
// led by its "All" sentinel.
func FilterChoices(t *Table, cls *Classification) (teams, positions []string) {
	teams = append([]string{AllTeams}, distinctSorted(t, cls.Team)...)
	positions = append([]string{AllPositions}, distinctSorted(t, cls.Position)...)
	return teams, positions
}

func distinctSorted(t *Table, column string) []string {
	idx := t.Index(column)
	if idx < 0 {
		return nil
	}
	seen := map[string]struct{}{}
	var out []string
	for _, r := range t.Rows {
		v := r[idx]
		if v.IsMissing() {
			continue
		}
		s := v.String()
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Subjects lists the distinct identity values in first-appearance order.
func Subjects(t *Table, cls *Classification) []string {
	idx := t.Index(cls.Identity)
	if idx < 0 {
		return nil
	}
	seen := map[string]struct{}{}
	var out []string
	for _, r := range t.Rows {
		if r[idx].IsMissing() {
			continue
		}
		s := r[idx].String()
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
