package cmd

import (
	"fmt"
	"log/slog"
	"os"

	cfgpkg "github.com/KaramelBytes/statlens-cli/internal/config"
	"github.com/KaramelBytes/statlens-cli/internal/logging"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile   string
	debug     bool
	logFormat string

	// Loaded configuration
	cfg *cfgpkg.Global
	// Process logger; set by the root pre-run hook.
	logger = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "statlens",
	Short: "StatLens CLI: rank, filter and compare players from a stats file",
	Long: `StatLens loads a player statistics file (CSV, TSV or XLSX), cleans it, and lets you
filter by games played, team and position, rank by any numeric metric, summarize the
filtered set and compare two players side by side.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s := settings()
		opt := logging.Options{Level: s.LogLevel, Format: s.LogFormat}
		if debug {
			opt.Level = "debug"
		}
		if logFormat != "" {
			opt.Format = logFormat
		}
		l, session := logging.New(cmd.ErrOrStderr(), opt)
		logger = l
		logger.Debug("session started", slog.String("command", cmd.CommandPath()), slog.String("session", session))
		return nil
	},
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.statlens/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text|json (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// settings returns the loaded configuration, or the defaults when none was
// loaded.
func settings() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	return cfgpkg.Defaults()
}
