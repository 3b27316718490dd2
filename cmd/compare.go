package cmd

import (
	"fmt"
	"log/slog"

	"github.com/KaramelBytes/statlens-cli/internal/analysis"
	"github.com/KaramelBytes/statlens-cli/internal/render"
	"github.com/spf13/cobra"
)

var (
	cmpSource  sourceFlags
	cmpMetrics []string
)

var compareCmd = &cobra.Command{
	Use:   "compare <file> <playerA> <playerB>",
	Short: "Compare two players side by side",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0], &cmpSource)
		if err != nil {
			return err
		}
		a, b := args[1], args[2]
		res, err := analysis.Compare(ds.table, ds.cls, a, b, cmpMetrics)
		if err != nil {
			return err
		}
		logger.Debug("players compared",
			slog.String("a", a),
			slog.String("b", b),
			slog.Int("metrics", len(res.PerMetric)))
		fmt.Fprintln(cmd.OutOrStdout(), render.Comparison(res, a, b))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	cmpSource.register(compareCmd)
	compareCmd.Flags().StringSliceVar(&cmpMetrics, "metrics", nil, "metric columns to compare (default: all metrics)")
}
