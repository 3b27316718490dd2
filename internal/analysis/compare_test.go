package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	tbl, cls := leagueTable(t)
	res, err := Compare(tbl, cls, "A", "C", []string{"AST", "PTS"})
	require.NoError(t, err)
	require.Len(t, res.PerMetric, 2)
	assert.Equal(t, "AST", res.PerMetric[0].Column)
	assert.Equal(t, "6.0", res.PerMetric[0].A.String())
	assert.Equal(t, "8.1", res.PerMetric[0].B.String())
	assert.Equal(t, "PTS", res.PerMetric[1].Column)
	assert.Equal(t, "A", tbl.Cell(res.SubjectA, "Player").String())
	assert.Equal(t, "C", tbl.Cell(res.SubjectB, "Player").String())
}

func TestCompareDefaultsToAllMetrics(t *testing.T) {
	tbl, cls := leagueTable(t)
	res, err := Compare(tbl, cls, "A", "E", nil)
	require.NoError(t, err)
	var cols []string
	for _, p := range res.PerMetric {
		cols = append(cols, p.Column)
	}
	assert.Equal(t, []string{"PTS", "AST"}, cols)
	assert.True(t, res.PerMetric[0].B.IsMissing())
}

func TestCompareSelf(t *testing.T) {
	tbl, cls := leagueTable(t)
	res, err := Compare(tbl, cls, "B", "B", nil)
	require.NoError(t, err)
	assert.Equal(t, res.SubjectA, res.SubjectB)
	for _, p := range res.PerMetric {
		assert.True(t, p.A.Equal(p.B), p.Column)
	}
}

func TestCompareFirstMatchWins(t *testing.T) {
	tbl, cls := statsTable(t,
		[]string{"A", "G", "BOS", "30", "20", "1"},
		[]string{"A", "G", "TOT", "60", "22", "2"},
	)
	res, err := Compare(tbl, cls, "A", "A", []string{"PTS"})
	require.NoError(t, err)
	assert.Equal(t, "20", res.PerMetric[0].A.String())
}

func TestCompareErrors(t *testing.T) {
	tbl, cls := leagueTable(t)

	_, err := Compare(tbl, cls, "A", "Nobody", nil)
	var nf *SubjectNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Nobody", nf.Identity)

	_, err = Compare(tbl, cls, "Ghost", "A", nil)
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Ghost", nf.Identity)

	_, err = Compare(tbl, cls, "a", "A", nil)
	require.True(t, errors.As(err, &nf), "identity match is exact")

	_, err = Compare(tbl, cls, "A", "B", []string{"Tm"})
	var um *UnknownMetricError
	require.True(t, errors.As(err, &um))
}
