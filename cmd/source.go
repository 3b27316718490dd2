package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/KaramelBytes/statlens-cli/internal/analysis"
	cfgpkg "github.com/KaramelBytes/statlens-cli/internal/config"
	"github.com/KaramelBytes/statlens-cli/internal/parser"
	"github.com/spf13/cobra"
)

// sourceFlags select how the statistics file is read.
type sourceFlags struct {
	delimiter  string
	sheetName  string
	sheetIndex int
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.delimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (default by extension)")
	cmd.Flags().StringVar(&s.sheetName, "sheet-name", "", "XLSX: sheet name to read")
	cmd.Flags().IntVar(&s.sheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
}

func (s *sourceFlags) options() (parser.Options, error) {
	opt := parser.Options{SheetName: s.sheetName, SheetIndex: s.sheetIndex}
	switch s.delimiter {
	case "":
	case ",":
		opt.Delimiter = ','
	case "\t", "tab":
		opt.Delimiter = '\t'
	case ";":
		opt.Delimiter = ';'
	default:
		return opt, fmt.Errorf("unsupported --delimiter: %s", s.delimiter)
	}
	return opt, nil
}

// dataset is a cleaned and classified statistics file.
type dataset struct {
	name  string
	table *analysis.Table
	cls   *analysis.Classification
}

func classifierOptions(c *cfgpkg.Global) analysis.ClassifierOptions {
	return analysis.ClassifierOptions{
		Identity: c.IdentityColumn,
		Team:     c.TeamColumn,
		Position: c.PositionColumn,
		Count:    c.CountColumn,
		Extra:    c.CategoricalExtras,
	}
}

func loadDataset(path string, src *sourceFlags) (*dataset, error) {
	opt, err := src.options()
	if err != nil {
		return nil, err
	}
	name := filepath.Base(path)
	raw, err := parser.ParseFile(path, opt)
	if err != nil {
		return nil, err
	}
	cleaned, err := analysis.Clean(raw)
	if err != nil {
		return nil, fmt.Errorf("clean %s: %w", name, err)
	}
	logger.Debug("table cleaned",
		slog.String("file", name),
		slog.Int("raw_rows", raw.Len()),
		slog.Int("rows", cleaned.Len()),
		slog.Int("columns", len(cleaned.Columns)))
	cls, err := analysis.Classify(cleaned, classifierOptions(settings()))
	if err != nil {
		return nil, fmt.Errorf("classify %s: %w", name, err)
	}
	logger.Debug("columns classified",
		slog.Any("metrics", cls.Metrics()),
		slog.String("identity", cls.Identity),
		slog.String("count", cls.Count))
	return &dataset{name: name, table: cleaned, cls: cls}, nil
}
