package parser_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KaramelBytes/statlens-cli/internal/analysis"
	"github.com/KaramelBytes/statlens-cli/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseFileCSV(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "nba.csv")
	content := "\xEF\xBB\xBFPlayer, Pos,Tm,G,PTS\n" +
		"A,G,X,30,20.5\n" +
		"B,F,X,10\n" +
		",,,,\n"
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))

	tbl, err := parser.ParseFile(p, parser.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Player", " Pos", "Tm", "G", "PTS"}, tbl.Columns)
	require.Equal(t, 3, tbl.Len())
	assert.Equal(t, analysis.Float, tbl.Rows[0][4].Kind())
	assert.Equal(t, analysis.Int, tbl.Rows[0][3].Kind())
	assert.True(t, tbl.Rows[1][4].IsMissing(), "short rows are padded")

	cleaned, err := analysis.Clean(tbl)
	require.NoError(t, err)
	assert.Equal(t, 2, cleaned.Len())
	assert.Equal(t, "Pos", cleaned.Columns[1])
}

func TestParseTSVAndExplicitDelimiter(t *testing.T) {
	tbl, err := parser.Parse(strings.NewReader("Player\tG\nA\t3\n"), "stats.tsv", parser.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Player", "G"}, tbl.Columns)

	tbl, err = parser.Parse(strings.NewReader("Player;G\nA;3\n"), "stats.csv", parser.Options{Delimiter: ';'})
	require.NoError(t, err)
	assert.Equal(t, "3", tbl.Rows[0][1].String())
}

func TestParseEmptyCSV(t *testing.T) {
	tbl, err := parser.Parse(strings.NewReader(""), "empty.csv", parser.Options{})
	require.NoError(t, err)
	_, err = analysis.Clean(tbl)
	var ee *analysis.EmptyInputError
	assert.True(t, errors.As(err, &ee))
}

func TestParseUnsupported(t *testing.T) {
	_, err := parser.Parse(strings.NewReader("x"), "notes.docx", parser.Options{})
	assert.ErrorIs(t, err, parser.ErrUnsupported)
}

func writeWorkbook(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"ignored"}))
	_, err := f.NewSheet("Stats")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Stats", "A2", &[]interface{}{"Player", "Pos", "Tm", "G", "PTS"}))
	require.NoError(t, f.SetSheetRow("Stats", "A3", &[]interface{}{"A", "G", "X", 30, 20.5}))
	require.NoError(t, f.SetSheetRow("Stats", "A4", &[]interface{}{"B", "F", "X", 10, 15}))
	require.NoError(t, f.SaveAs(path))
}

func TestParseXLSXSheetSelection(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nba.xlsx")
	writeWorkbook(t, p)

	tbl, err := parser.ParseFile(p, parser.Options{SheetName: "stats"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Player", "Pos", "Tm", "G", "PTS"}, tbl.Columns)
	require.Equal(t, 2, tbl.Len())
	n, ok := tbl.Rows[0][4].Number()
	require.True(t, ok)
	assert.Equal(t, 20.5, n)

	tbl, err = parser.ParseFile(p, parser.Options{SheetIndex: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())

	tbl, err = parser.ParseFile(p, parser.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"ignored"}, tbl.Columns)

	_, err = parser.ParseFile(p, parser.Options{SheetName: "Nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Available sheets: Sheet1, Stats")

	_, err = parser.ParseFile(p, parser.Options{SheetIndex: 5})
	assert.Error(t, err)
}

func TestParseXLSXFormattedNumbersStayNumeric(t *testing.T) {
	p := filepath.Join(t.TempDir(), "formatted.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Player", "Pos", "Tm", "G", "MP", "FG%"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"A", "C", "DEN", 79, 2345, 0.512}))
	thousands, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	require.NoError(t, err)
	percent, err := f.NewStyle(&excelize.Style{NumFmt: 10})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Sheet1", "E2", "E2", thousands))
	require.NoError(t, f.SetCellStyle("Sheet1", "F2", "F2", percent))
	require.NoError(t, f.SaveAs(p))
	require.NoError(t, f.Close())

	tbl, err := parser.ParseFile(p, parser.Options{})
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())

	mp := tbl.Cell(tbl.Rows[0], "MP")
	assert.Equal(t, analysis.Int, mp.Kind(), "MP parsed as %q", mp.String())
	n, _ := mp.Number()
	assert.Equal(t, 2345.0, n)

	fg := tbl.Cell(tbl.Rows[0], "FG%")
	assert.Equal(t, analysis.Float, fg.Kind(), "FG%% parsed as %q", fg.String())
	n, _ = fg.Number()
	assert.InDelta(t, 0.512, n, 1e-12)
}
