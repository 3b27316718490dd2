package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/KaramelBytes/statlens-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set StatLens configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := settings()
		out := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(out, "# no config loaded, showing defaults")
		}
		fmt.Fprintf(out, "min_games: %d\n", c.MinGames)
		fmt.Fprintf(out, "top_n: %d\n", c.TopN)
		fmt.Fprintf(out, "histogram_bins: %d\n", c.Bins)
		fmt.Fprintf(out, "identity_column: %s\n", c.IdentityColumn)
		fmt.Fprintf(out, "team_column: %s\n", c.TeamColumn)
		fmt.Fprintf(out, "position_column: %s\n", c.PositionColumn)
		fmt.Fprintf(out, "count_column: %s\n", c.CountColumn)
		if len(c.CategoricalExtras) > 0 {
			fmt.Fprintf(out, "categorical_columns: %s\n", strings.Join(c.CategoricalExtras, ","))
		}
		if c.OutputDir != "" {
			fmt.Fprintf(out, "output_dir: %s\n", c.OutputDir)
		}
		fmt.Fprintf(out, "chart_width: %d\n", c.ChartWidth)
		fmt.Fprintf(out, "log_level: %s\n", c.LogLevel)
		fmt.Fprintf(out, "log_format: %s\n", c.LogFormat)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		next := *cfg
		switch key {
		case "min_games", "top_n", "histogram_bins", "chart_width":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for %s: %v", key, val)
			}
			switch key {
			case "min_games":
				next.MinGames = i
			case "top_n":
				next.TopN = i
			case "histogram_bins":
				next.Bins = i
			default:
				next.ChartWidth = i
			}
		case "identity_column":
			next.IdentityColumn = val
		case "team_column":
			next.TeamColumn = val
		case "position_column":
			next.PositionColumn = val
		case "count_column":
			next.CountColumn = val
		case "categorical_columns":
			next.CategoricalExtras = splitList(val)
		case "output_dir":
			next.OutputDir = val
		case "log_level":
			next.LogLevel = strings.ToLower(val)
		case "log_format":
			next.LogFormat = strings.ToLower(val)
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(&next, cfgFile); err != nil {
			return err
		}
		cfg = &next
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
