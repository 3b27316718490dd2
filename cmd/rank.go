package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/statlens-cli/internal/analysis"
	cfgpkg "github.com/KaramelBytes/statlens-cli/internal/config"
	"github.com/KaramelBytes/statlens-cli/internal/render"
	"github.com/KaramelBytes/statlens-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	rkSource    sourceFlags
	rkMetric    string
	rkTopN      int
	rkMinGames  int
	rkTeam      string
	rkPosition  string
	rkColumns   []string
	rkFormat    string
	rkOutput    string
	rkExport    bool
	rkChart     bool
	rkHistogram bool
	rkBins      int
)

// rankRequest carries the user-facing parameters that have bounded ranges.
type rankRequest struct {
	TopN     int    `flag:"top" validate:"gte=5,lte=50"`
	MinGames int    `flag:"min-games" validate:"gte=0,lte=82"`
	Bins     int    `flag:"bins" validate:"gte=1,lte=200"`
	Format   string `flag:"format" validate:"oneof=table markdown csv"`
}

var rankCmd = &cobra.Command{
	Use:   "rank <file>",
	Short: "Filter players and rank them by a metric",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := settings()
		req := rankRequest{TopN: s.TopN, MinGames: s.MinGames, Bins: s.Bins, Format: strings.ToLower(rkFormat)}
		if cmd.Flags().Changed("top") {
			req.TopN = rkTopN
		}
		if cmd.Flags().Changed("min-games") {
			req.MinGames = rkMinGames
		}
		if cmd.Flags().Changed("bins") {
			req.Bins = rkBins
		}
		if err := cfgpkg.Check(req); err != nil {
			return err
		}

		ds, err := loadDataset(args[0], &rkSource)
		if err != nil {
			return err
		}
		metric := rkMetric
		if metric == "" {
			metrics := ds.cls.Metrics()
			if len(metrics) == 0 {
				return fmt.Errorf("%s has no numeric metric columns", ds.name)
			}
			metric = metrics[0]
		}
		crit := analysis.FilterCriteria{MinGames: req.MinGames, Team: rkTeam, Position: rkPosition}
		params := analysis.RankParams{Metric: metric, TopN: req.TopN, Additional: rkColumns}
		view, err := analysis.BuildView(ds.name, ds.table, ds.cls, crit, params)
		if err != nil {
			return err
		}
		logger.Debug("ranking built",
			slog.String("metric", metric),
			slog.Int("filtered", view.Filtered.Len()),
			slog.Int("ranked", len(view.Ranked)))

		// Empty rankings still carry the full header.
		columns := analysis.DisplayColumns(ds.cls, params.Additional, metric)
		out := cmd.OutOrStdout()
		switch req.Format {
		case "markdown":
			fmt.Fprintln(out, view.Markdown())
		case "csv":
			if err := analysis.WriteCSV(out, view.Ranked, columns); err != nil {
				return fmt.Errorf("write csv: %w", err)
			}
		default:
			if err := printRanking(out, view, ds.cls, req, s.ChartWidth); err != nil {
				return err
			}
		}

		if path := exportPath(s.OutputDir, req.TopN, metric); path != "" {
			if len(view.Ranked) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "⚠ Warning: nothing to export, no rows match the current filters")
				return nil
			}
			err := utils.WriteFileFunc(path, func(w io.Writer) error {
				return analysis.WriteCSV(w, view.Ranked, columns)
			})
			if err != nil {
				return fmt.Errorf("export csv: %w", err)
			}
			logger.Debug("ranking exported", slog.String("path", path), slog.Int("rows", len(view.Ranked)))
			fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote %d rows to %s\n", len(view.Ranked), path)
		}
		return nil
	},
}

func printRanking(w io.Writer, v *analysis.View, cls *analysis.Classification, req rankRequest, width int) error {
	metric := v.Params.Metric
	fmt.Fprintf(w, "Top %d Players by %s\n", req.TopN, metric)
	fmt.Fprintf(w, "(Filtered: Minimum %d games played)\n\n", v.Criteria.MinGames)

	avg, err := analysis.FormatStat(v.Summary.Mean())
	if err != nil {
		return err
	}
	hi, err := analysis.FormatStat(v.Summary.Max())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Players analyzed: %d\n", v.Summary.Count)
	fmt.Fprintf(w, "Average %s: %s\n", metric, avg)
	fmt.Fprintf(w, "Highest %s: %s\n\n", metric, hi)

	fmt.Fprintln(w, render.Ranking(v.Ranked))
	for _, warn := range v.Warnings {
		fmt.Fprintf(w, "⚠ %s\n", warn)
	}
	if rkChart && len(v.Ranked) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, render.Bars(v.Ranked, cls.Identity, metric, width))
	}
	if rkHistogram {
		bins, err := analysis.Histogram(v.Filtered, cls, metric, req.Bins)
		var nd *analysis.NoDataError
		switch {
		case errors.As(err, &nd):
			fmt.Fprintf(w, "\nDistribution of %s: N/A\n", metric)
		case err != nil:
			return err
		default:
			fmt.Fprintln(w)
			fmt.Fprintln(w, render.Histogram(bins, metric, width))
		}
	}
	return nil
}

// exportPath resolves where the CSV export goes. An existing directory or a
// trailing separator in --output receives the default file name; --export
// alone writes into the configured output directory.
func exportPath(outputDir string, topN int, metric string) string {
	name := analysis.ExportFileName(topN, metric)
	if rkOutput == "" {
		if !rkExport {
			return ""
		}
		if outputDir == "" {
			outputDir = "."
		}
		return filepath.Join(outputDir, name)
	}
	if strings.HasSuffix(rkOutput, string(os.PathSeparator)) {
		return filepath.Join(rkOutput, name)
	}
	if fi, err := os.Stat(rkOutput); err == nil && fi.IsDir() {
		return filepath.Join(rkOutput, name)
	}
	return rkOutput
}

func init() {
	rootCmd.AddCommand(rankCmd)
	rkSource.register(rankCmd)
	rankCmd.Flags().StringVarP(&rkMetric, "metric", "m", "", "metric column to rank by (default: first numeric column)")
	rankCmd.Flags().IntVarP(&rkTopN, "top", "n", 10, "number of players to show (5-50)")
	rankCmd.Flags().IntVar(&rkMinGames, "min-games", 20, "minimum games played (0-82)")
	rankCmd.Flags().StringVar(&rkTeam, "team", analysis.AllTeams, "team filter")
	rankCmd.Flags().StringVar(&rkPosition, "position", analysis.AllPositions, "position filter")
	rankCmd.Flags().StringSliceVar(&rkColumns, "columns", nil, "additional columns to display (repeatable)")
	rankCmd.Flags().StringVar(&rkFormat, "format", "table", "output format: table|markdown|csv")
	rankCmd.Flags().StringVarP(&rkOutput, "output", "o", "", "write the ranking as CSV to this file or directory")
	rankCmd.Flags().BoolVar(&rkExport, "export", false, "write the ranking as CSV into output_dir with the default file name")
	rankCmd.Flags().BoolVar(&rkChart, "chart", false, "draw a bar chart of the ranked players")
	rankCmd.Flags().BoolVar(&rkHistogram, "histogram", false, "draw the distribution of the metric over the filtered players")
	rankCmd.Flags().IntVar(&rkBins, "bins", 20, "histogram bins")
}
