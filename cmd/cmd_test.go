package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KaramelBytes/statlens-cli/internal/analysis"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const leagueCSV = "Player,Pos,Tm,G,PTS,AST\n" +
	"A,PG,BOS,70,25.1,6.0\n" +
	"B,C,BOS,19,12.0,1.2\n" +
	"C,PG,LAL,20,18.4,8.1\n" +
	"D,SF,LAL,,30.2,5.5\n" +
	"E,C,MIA,82,,2.0\n" +
	"F,pg,BOS,45,9.9,4.4\n" +
	"A,PG,BOS,70,25.1,6.0\n"

// resetFlags restores every flag to its default so state does not leak
// between invocations of the shared root command.
func resetFlags(c *cobra.Command) {
	reset := func(fl *pflag.Flag) {
		if sv, ok := fl.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = fl.Value.Set(fl.DefValue)
		}
		fl.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// runCmd executes the root command with args inside a temp HOME and returns
// what it wrote to stdout.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runCmdStreams(t, args...)
	return out, err
}

// runCmdStreams is runCmd that also returns stderr.
func runCmdStreams(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	cfg = nil
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeLeague(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	p := filepath.Join(home, "league.csv")
	require.NoError(t, os.WriteFile(p, []byte(leagueCSV), 0o644))
	return p
}

func TestRankTable(t *testing.T) {
	p := writeLeague(t)
	out, err := runCmd(t, "rank", p, "--metric", "PTS", "--top", "5", "--chart")
	require.NoError(t, err)
	assert.Contains(t, out, "Top 5 Players by PTS")
	assert.Contains(t, out, "(Filtered: Minimum 20 games played)")
	assert.Contains(t, out, "Players analyzed: 4")
	assert.Contains(t, out, "Average PTS: 17.80")
	assert.Contains(t, out, "Highest PTS: 25.10")
	assert.Contains(t, out, "only 4 rows qualified for top 5")
	assert.Contains(t, out, "Visual Comparison: PTS")
	assert.NotContains(t, out, "30.2")
}

func TestRankCSV(t *testing.T) {
	p := writeLeague(t)
	out, err := runCmd(t, "rank", p, "--metric", "PTS", "--top", "5", "--format", "csv")
	require.NoError(t, err)
	want := "Rank,Player,Pos,Tm,G,PTS\n" +
		"1,A,PG,BOS,70,25.1\n" +
		"2,C,PG,LAL,20,18.4\n" +
		"3,F,pg,BOS,45,9.9\n" +
		"4,E,C,MIA,82,\n"
	assert.Equal(t, want, out)
}

func TestRankCSVNoMatchesKeepsHeader(t *testing.T) {
	p := writeLeague(t)
	out, err := runCmd(t, "rank", p, "--metric", "PTS", "--top", "5", "--team", "NYK", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "Rank,Player,Pos,Tm,G,PTS\n", out)

	out, err = runCmd(t, "rank", p, "--metric", "AST", "--top", "5", "--team", "NYK",
		"--columns", "PTS", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "Rank,Player,Pos,Tm,G,PTS,AST\n", out)
}

func TestRankFiltersAndColumns(t *testing.T) {
	p := writeLeague(t)
	out, err := runCmd(t, "rank", p, "--metric", "AST", "--top", "5", "--min-games", "0",
		"--team", "BOS", "--columns", "PTS", "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Rank,Player,Pos,Tm,G,PTS,AST", lines[0])
	assert.Equal(t, "1,A,PG,BOS,70,25.1,6.0", lines[1])
	assert.Equal(t, "3,B,C,BOS,19,12.0,1.2", lines[3])
}

func TestRankMarkdownNoMatches(t *testing.T) {
	p := writeLeague(t)
	out, err := runCmd(t, "rank", p, "--metric", "PTS", "--top", "5", "--team", "NYK", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "- Players analyzed: 0")
	assert.Contains(t, out, "- Average PTS: N/A")
	assert.Contains(t, out, "no rows match the current filters")
}

func TestRankExportToDirectory(t *testing.T) {
	p := writeLeague(t)
	dir := filepath.Join(filepath.Dir(p), "exports")
	require.NoError(t, os.Mkdir(dir, 0o755))
	_, err := runCmd(t, "rank", p, "--metric", "PTS", "--top", "5", "--output", dir)
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dir, "top_5_players_by_PTS.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "Rank,Player,Pos,Tm,G,PTS\n1,A,"))
}

func TestRankExportReportsOnce(t *testing.T) {
	p := writeLeague(t)
	dest := filepath.Join(filepath.Dir(p), "top.csv")
	_, stderr, err := runCmdStreams(t, "rank", p, "--metric", "PTS", "--top", "5", "--output", dest)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(stderr, dest), "stderr: %s", stderr)
	assert.Contains(t, stderr, "✓ Wrote 4 rows to "+dest)
	assert.NotContains(t, stderr, "ranking exported")
}

func TestRankRejectsOutOfRange(t *testing.T) {
	p := writeLeague(t)
	_, err := runCmd(t, "rank", p, "--top", "3", "--min-games", "90")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--top must be at least 5")
	assert.Contains(t, err.Error(), "--min-games must be at most 82")

	_, err = runCmd(t, "rank", p, "--metric", "Tm", "--top", "5")
	var um *analysis.UnknownMetricError
	assert.True(t, errors.As(err, &um), "got %v", err)
}

func TestCompare(t *testing.T) {
	p := writeLeague(t)
	out, err := runCmd(t, "compare", p, "A", "C", "--metrics", "PTS,AST")
	require.NoError(t, err)
	assert.Contains(t, out, "A vs C")
	assert.Contains(t, out, "25.10")
	assert.Contains(t, out, "8.10")

	_, err = runCmd(t, "compare", p, "A", "Z")
	var nf *analysis.SubjectNotFoundError
	require.True(t, errors.As(err, &nf), "got %v", err)
	assert.Equal(t, "Z", nf.Identity)
}

func TestInfo(t *testing.T) {
	p := writeLeague(t)
	out, err := runCmd(t, "info", p, "--preview", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Rows: 6")
	assert.Contains(t, out, "Columns: 6")
	assert.Contains(t, out, "PTS, AST")
	assert.Contains(t, out, "Teams: All Teams, BOS, LAL, MIA")
}

func TestMissingRequiredColumn(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	p := filepath.Join(home, "bad.csv")
	require.NoError(t, os.WriteFile(p, []byte("Name,Pos,Tm,G,PTS\nA,PG,BOS,70,25.1\n"), 0o644))
	_, err := runCmd(t, "info", p)
	var mc *analysis.MissingRequiredColumnError
	require.True(t, errors.As(err, &mc), "got %v", err)
	assert.Equal(t, "Player", mc.Name)
}

func TestConfigSetAndShow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, err := runCmd(t, "config", "set", "top_n", "25")
	require.NoError(t, err)
	_, err = runCmd(t, "config", "set", "top_n", "99")
	require.Error(t, err)
	_, err = runCmd(t, "config", "set", "nope", "1")
	require.Error(t, err)

	// show reads the saved file through Load, as Execute would.
	loadConfig()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "show"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "top_n: 25")
	assert.Contains(t, out.String(), "identity_column: Player")
}
