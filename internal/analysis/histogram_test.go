package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogram(t *testing.T) {
	tbl, cls := statsTable(t,
		[]string{"A", "G", "X", "30", "0", "1"},
		[]string{"B", "G", "X", "30", "1", "1"},
		[]string{"C", "G", "X", "30", "2", "1"},
		[]string{"D", "G", "X", "30", "3", "1"},
		[]string{"E", "G", "X", "30", "4", "1"},
		[]string{"F", "G", "X", "30", "", "1"},
	)
	bins, err := Histogram(tbl, cls, "PTS", 4)
	require.NoError(t, err)
	require.Len(t, bins, 4)
	counts := []int{}
	for _, b := range bins {
		counts = append(counts, b.Count)
	}
	assert.Equal(t, []int{1, 1, 1, 2}, counts)
	assert.Equal(t, 0.0, bins[0].Lo)
	assert.Equal(t, 4.0, bins[3].Hi)
}

func TestHistogramSingleValue(t *testing.T) {
	tbl, cls := statsTable(t,
		[]string{"A", "G", "X", "30", "7", "1"},
		[]string{"B", "G", "X", "30", "7", "2"},
	)
	bins, err := Histogram(tbl, cls, "PTS", 0)
	require.NoError(t, err)
	require.Len(t, bins, DefaultBins)
	assert.Equal(t, 6.5, bins[0].Lo)
	assert.Equal(t, 7.5, bins[DefaultBins-1].Hi)
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, 2, total)
}

func TestHistogramNoData(t *testing.T) {
	tbl, cls := leagueTable(t)
	empty := Filter(tbl, cls, FilterCriteria{Team: "Z"})
	_, err := Histogram(empty, cls, "PTS", 10)
	var nd *NoDataError
	assert.True(t, errors.As(err, &nd))
}
