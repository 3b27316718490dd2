package cmd

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/statlens-cli/internal/analysis"
	"github.com/KaramelBytes/statlens-cli/internal/render"
	"github.com/spf13/cobra"
)

var (
	infoSource  sourceFlags
	infoPreview int
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Describe a statistics file: shape, column roles and filter choices",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0], &infoSource)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "File: %s\n", ds.name)
		fmt.Fprintf(out, "Rows: %d\n", ds.table.Len())
		fmt.Fprintf(out, "Columns: %d\n\n", len(ds.table.Columns))

		parts := ds.cls.Partition()
		for _, k := range []analysis.ColumnKind{analysis.Identity, analysis.Count, analysis.Categorical, analysis.Metric} {
			cols := parts[k]
			if len(cols) == 0 {
				continue
			}
			fmt.Fprintf(out, "%-12s %s\n", k.String()+":", strings.Join(cols, ", "))
		}

		teams, positions := analysis.FilterChoices(ds.table, ds.cls)
		fmt.Fprintf(out, "\nTeams: %s\n", strings.Join(teams, ", "))
		fmt.Fprintf(out, "Positions: %s\n", strings.Join(positions, ", "))

		if infoPreview > 0 && ds.table.Len() > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, render.Preview(ds.table, infoPreview))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoSource.register(infoCmd)
	infoCmd.Flags().IntVar(&infoPreview, "preview", 5, "number of leading rows to show (0 = none)")
}
